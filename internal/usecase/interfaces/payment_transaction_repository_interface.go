package interfaces

import (
	"context"
	"madinah_tours/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts DynamoDB persistence for
// PaymentTransaction.
//
// UpdateStatusIfNotPaid is the reconciliation commit point: a single atomic
// conditional write that sets the status only while the stored status is not
// yet paid. It returns the post-write entity and matched=true when the
// condition held, or matched=false (no error) when another writer already
// landed paid. Plain overwrites of status are deliberately not exposed.

type IPaymentTransactionRepository interface {
	Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.PaymentTransaction, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentTransaction, error)
	UpdateStatusIfNotPaid(ctx context.Context, id string, status entities.TransactionStatus) (entities.PaymentTransaction, bool, error)
}
