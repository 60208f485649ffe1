package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"madinah_tours/internal/domain/entities"
	mock_interfaces "madinah_tours/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func bookingInputFixture() entities.Booking {
	return entities.Booking{
		Name:        "Ahmed",
		Email:       "ahmed@example.com",
		Phone:       "+9665500000",
		SiteID:      "site-1",
		SiteName:    "Quba Mosque",
		GroupSize:   3,
		Date:        "2026-09-10",
		Time:        "09:00",
		TotalPrice:  150,
		BookingType: entities.BookingTypePayment,
	}
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		b := bookingInputFixture()
		b.Email = "  "
		_, err := uc.CreateBooking(context.Background(), b)
		if !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})

	t.Run("group size out of bounds", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		b := bookingInputFixture()
		b.GroupSize = 11
		_, err := uc.CreateBooking(context.Background(), b)
		if !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})

	t.Run("invalid booking type", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		b := bookingInputFixture()
		b.BookingType = entities.BookingType("walkin")
		_, err := uc.CreateBooking(context.Background(), b)
		if !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})

	t.Run("success assigns id and pending status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		var stored entities.Booking
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				stored = b
				return b, nil
			})

		created, err := uc.CreateBooking(context.Background(), bookingInputFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if created.Status != entities.BookingStatusPending {
			t.Fatalf("expected pending status, got %s", created.Status)
		}
		if stored.ID != created.ID {
			t.Fatalf("stored and returned bookings differ")
		}
	})
}

func TestBookingUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "bk-missing").Return(entities.Booking{}, nil)

		_, err := uc.GetByID(context.Background(), "bk-missing")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_List(t *testing.T) {
	t.Run("sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		older := entities.Booking{ID: "bk-old", CreatedAt: time.Now().Add(-time.Hour)}
		newer := entities.Booking{ID: "bk-new", CreatedAt: time.Now()}
		repo.EXPECT().ListAll(gomock.Any(), 100).Return([]entities.Booking{older, newer}, nil)

		got, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "bk-new" {
			t.Fatalf("expected newest first, got %+v", got)
		}
	})

	t.Run("email filter queries by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().ListByEmail(gomock.Any(), "ahmed@example.com", 100).Return(nil, nil)

		if _, err := uc.List(context.Background(), " ahmed@example.com "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatus("done"))
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("settled booking is not mutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		confirmed := entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(confirmed, nil)
		repo.EXPECT().UpdateStatusIfPending(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(entities.Booking{}, false, nil)

		_, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCancelled)
		if !errors.Is(err, ErrBookingNotMutable) {
			t.Fatalf("expected ErrBookingNotMutable, got %v", err)
		}
	})

	t.Run("pending booking can be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		pending := entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}
		cancelled := entities.Booking{ID: "bk-1", Status: entities.BookingStatusCancelled}
		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(pending, nil)
		repo.EXPECT().UpdateStatusIfPending(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(cancelled, true, nil)

		got, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %s", got.Status)
		}
	})
}

func TestBookingUseCase_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	uc := NewBookingUseCase(repo)

	repo.EXPECT().ListAll(gomock.Any(), 0).Return([]entities.Booking{
		{ID: "1", SiteName: "Quba Mosque", TotalPrice: 100, Status: entities.BookingStatusConfirmed},
		{ID: "2", SiteName: "Quba Mosque", TotalPrice: 100, Status: entities.BookingStatusPending},
		{ID: "3", SiteName: "Mount Uhud", TotalPrice: 80, Status: entities.BookingStatusCancelled},
	}, nil)

	got, err := uc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalBookings != 3 || got.PendingBookings != 1 || got.ConfirmedBookings != 1 {
		t.Fatalf("unexpected counters: %+v", got)
	}
	if len(got.PopularSites) != 2 {
		t.Fatalf("expected 2 sites, got %d", len(got.PopularSites))
	}
	top := got.PopularSites[0]
	if top.SiteName != "Quba Mosque" || top.Count != 2 || top.TotalRevenue != 200 {
		t.Fatalf("unexpected top site: %+v", top)
	}
}
