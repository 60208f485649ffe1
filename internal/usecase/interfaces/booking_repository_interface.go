package interfaces

import (
	"context"
	"madinah_tours/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// UpdateStatusIfPending is the only status mutation: it applies the new status
// with a conditional write (current status must still be pending) and reports
// whether the condition held. Confirmed and cancelled bookings are never
// rewritten through this interface.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string, limit int) ([]entities.Booking, error)
	ListAll(ctx context.Context, limit int) ([]entities.Booking, error)
	UpdateStatusIfPending(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, bool, error)
}
