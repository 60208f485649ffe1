package request

import (
	"strings"

	"madinah_tours/internal/domain/entities"
)

// BookingCreateRequest is the public payload for creating a reservation.
// The computed total arrives from the client and is validated server-side
// against group size bounds; the price itself is snapshotted as sent.
type BookingCreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required"`
	SiteID          string  `json:"site_id" binding:"required"`
	SiteName        string  `json:"site_name" binding:"required"`
	GroupSize       int     `json:"group_size" binding:"required,gte=1,lte=10"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	SpecialRequests string  `json:"special_requests"`
	TotalPrice      float64 `json:"total_price" binding:"required,gt=0"`
	BookingType     string  `json:"booking_type" binding:"required,oneof=contact payment"`
}

func (r BookingCreateRequest) ToEntity() entities.Booking {
	return entities.Booking{
		Name:            strings.TrimSpace(r.Name),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		SiteID:          strings.TrimSpace(r.SiteID),
		SiteName:        strings.TrimSpace(r.SiteName),
		GroupSize:       r.GroupSize,
		Date:            r.Date,
		Time:            r.Time,
		SpecialRequests: r.SpecialRequests,
		TotalPrice:      r.TotalPrice,
		BookingType:     entities.BookingType(r.BookingType),
	}
}

// BookingStatusUpdateRequest carries an administrative confirm/cancel.
type BookingStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
