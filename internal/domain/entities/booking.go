package entities

import "time"

// BookingStatus represents the reservation lifecycle.
//
// Domain notes:
//   - pending is the only mutable state; confirmed and cancelled are absorbing.
//   - Transitions out of pending happen either through an administrative
//     action or through the payment reconciliation engine, never both for
//     the same booking (the engine's booking write is conditional on pending).

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingType distinguishes contact-only reservations from ones that go
// through online checkout.

type BookingType string

const (
	BookingTypeContact BookingType = "contact"
	BookingTypePayment BookingType = "payment"
)

// Booking is the tour reservation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// TotalPrice is computed at booking time from the site price and group size;
// it is the amount a checkout session is opened for.

type Booking struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	SiteID          string        `json:"site_id"`
	SiteName        string        `json:"site_name"`
	GroupSize       int           `json:"group_size"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	TotalPrice      float64       `json:"total_price"`
	BookingType     BookingType   `json:"booking_type"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsValidBookingStatus reports whether s is one of the known lifecycle states.
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
