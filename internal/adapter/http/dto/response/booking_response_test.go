package response

import (
	"testing"
	"time"

	"madinah_tours/internal/domain/entities"
)

func TestFromBooking(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Booking{
		ID:          "bk-1",
		Name:        "Ahmed",
		Email:       "ahmed@example.com",
		SiteID:      "site-1",
		SiteName:    "Quba Mosque",
		GroupSize:   3,
		TotalPrice:  150,
		BookingType: entities.BookingTypePayment,
		Status:      entities.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	got := FromBooking(b)
	if got.ID != "bk-1" || got.Status != "confirmed" || got.BookingType != "payment" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.TotalPrice != 150 {
		t.Fatalf("expected total price 150, got %.2f", got.TotalPrice)
	}
}

func TestFromBookings(t *testing.T) {
	got := FromBookings([]entities.Booking{{ID: "a"}, {ID: "b"}})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected responses: %+v", got)
	}

	if empty := FromBookings(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", empty)
	}
}
