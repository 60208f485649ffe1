package entities

import "time"

// TransactionStatus represents the outcome of one checkout attempt.
//
// paid is absorbing: once a transaction lands on paid, later observations of
// failed/expired must not overwrite it. The repository enforces this with a
// conditional write (status <> paid), so the rule holds across process
// instances, not just within one.

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusFailed  TransactionStatus = "failed"
	TransactionStatusExpired TransactionStatus = "expired"
)

// IsValidTransactionStatus reports whether s is a status the gateway can emit.
func IsValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusPaid, TransactionStatusFailed, TransactionStatusExpired:
		return true
	}
	return false
}

// PaymentTransaction is one checkout attempt for a booking, keyed by the
// provider session id on the secondary index.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//   - GSI2 (booking_id-index): booking_id
//
// A booking may accumulate several transactions (retried attempts), but the
// checkout usecase refuses to open a new session while one is still pending.

type PaymentTransaction struct {
	ID         string            `json:"id"`
	SessionID  string            `json:"session_id"`
	BookingID  string            `json:"booking_id"`
	Amount     float64           `json:"amount"`
	Currency   string            `json:"currency"`
	PayerEmail string            `json:"payer_email"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Status     TransactionStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
