package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingInput  = errors.New("invalid booking input")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrBookingNotMutable    = errors.New("booking is not pending")
)

const (
	maxGroupSize       = 10
	bookingListLimit   = 100
	analyticsSiteLimit = 5
)

// BookingAnalytics aggregates reservation counters for the dashboard.

type BookingAnalytics struct {
	TotalBookings     int                `json:"total_bookings"`
	PendingBookings   int                `json:"pending_bookings"`
	ConfirmedBookings int                `json:"confirmed_bookings"`
	PopularSites      []SiteBookingStats `json:"popular_sites"`
}

type SiteBookingStats struct {
	SiteName     string  `json:"site_name"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// IBookingUseCase exposes reservation operations. Status changes go through a
// conditional write: once a booking is confirmed or cancelled it stays there,
// whether the trigger was an administrator or the reconciliation engine.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, email string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	Analytics(ctx context.Context) (BookingAnalytics, error)
}

type BookingUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	if b.Name == "" || b.Email == "" || strings.TrimSpace(b.SiteID) == "" {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	if b.GroupSize < 1 || b.GroupSize > maxGroupSize {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	if b.TotalPrice <= 0 {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	if b.BookingType != entities.BookingTypeContact && b.BookingType != entities.BookingTypePayment {
		return entities.Booking{}, ErrInvalidBookingInput
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Status = entities.BookingStatusPending
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s site=%s type=%s total=%.2f", created.ID, created.SiteName, created.BookingType, created.TotalPrice)
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// List returns bookings newest first, optionally filtered by visitor email.
func (u *BookingUseCase) List(ctx context.Context, email string) ([]entities.Booking, error) {
	email = strings.TrimSpace(email)

	var (
		bookings []entities.Booking
		err      error
	)
	if email != "" {
		bookings, err = u.repo.ListByEmail(ctx, email, bookingListLimit)
	} else {
		bookings, err = u.repo.ListAll(ctx, bookingListLimit)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// UpdateStatus applies an administrative confirm/cancel. The write is
// conditional on the booking still being pending; trying to move a settled
// booking reports a conflict instead of overwriting it.
func (u *BookingUseCase) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if !entities.IsValidBookingStatus(status) {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if existing.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	updated, matched, err := u.repo.UpdateStatusIfPending(ctx, id, status)
	if err != nil {
		return entities.Booking{}, err
	}
	if !matched {
		log.Printf("[booking][usecase] status update rejected booking_id=%s current=%s requested=%s", id, existing.Status, status)
		return entities.Booking{}, ErrBookingNotMutable
	}
	log.Printf("[booking][usecase] status updated booking_id=%s status=%s", id, status)
	return updated, nil
}

func (u *BookingUseCase) Analytics(ctx context.Context) (BookingAnalytics, error) {
	bookings, err := u.repo.ListAll(ctx, 0)
	if err != nil {
		return BookingAnalytics{}, err
	}

	out := BookingAnalytics{TotalBookings: len(bookings)}
	bySite := map[string]*SiteBookingStats{}
	for _, b := range bookings {
		switch b.Status {
		case entities.BookingStatusPending:
			out.PendingBookings++
		case entities.BookingStatusConfirmed:
			out.ConfirmedBookings++
		}

		s, ok := bySite[b.SiteName]
		if !ok {
			s = &SiteBookingStats{SiteName: b.SiteName}
			bySite[b.SiteName] = s
		}
		s.Count++
		s.TotalRevenue += b.TotalPrice
	}

	stats := make([]SiteBookingStats, 0, len(bySite))
	for _, s := range bySite {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].SiteName < stats[j].SiteName
	})
	if len(stats) > analyticsSiteLimit {
		stats = stats[:analyticsSiteLimit]
	}
	out.PopularSites = stats
	return out, nil
}
