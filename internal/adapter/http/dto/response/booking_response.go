package response

import (
	"time"

	"madinah_tours/internal/domain/entities"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SiteID          string    `json:"site_id"`
	SiteName        string    `json:"site_name"`
	GroupSize       int       `json:"group_size"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	TotalPrice      float64   `json:"total_price"`
	BookingType     string    `json:"booking_type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		SiteID:          b.SiteID,
		SiteName:        b.SiteName,
		GroupSize:       b.GroupSize,
		Date:            b.Date,
		Time:            b.Time,
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      b.TotalPrice,
		BookingType:     string(b.BookingType),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
