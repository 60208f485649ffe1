package request

import (
	"testing"

	"madinah_tours/internal/domain/entities"
)

func TestBookingCreateRequest_ToEntity(t *testing.T) {
	req := BookingCreateRequest{
		Name:        "  Ahmed  ",
		Email:       " ahmed@example.com ",
		Phone:       " +9665500000 ",
		SiteID:      " site-1 ",
		SiteName:    " Quba Mosque ",
		GroupSize:   3,
		Date:        "2026-09-10",
		Time:        "09:00",
		TotalPrice:  150,
		BookingType: "payment",
	}

	got := req.ToEntity()
	if got.Name != "Ahmed" || got.Email != "ahmed@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
	if got.BookingType != entities.BookingTypePayment {
		t.Fatalf("expected payment booking type, got %s", got.BookingType)
	}
	if got.ID != "" || got.Status != "" {
		t.Fatalf("id and status are assigned by the use case, got %+v", got)
	}
}
