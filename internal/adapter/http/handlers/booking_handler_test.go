package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"madinah_tours/internal/adapter/http/handlers/mocks"
	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const bookingBodyFixture = `{
	"name": "Ahmed",
	"email": "ahmed@example.com",
	"phone": "+9665500000",
	"site_id": "site-1",
	"site_name": "Quba Mosque",
	"group_size": 3,
	"date": "2026-09-10",
	"time": "09:00",
	"total_price": 150,
	"booking_type": "payment"
}`

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("group size above limit rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		body := `{"name":"A","email":"a@b.c","phone":"1","site_id":"s","site_name":"S","group_size":11,"date":"d","time":"t","total_price":10,"booking_type":"payment"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				b.ID = "bk-1"
				b.Status = entities.BookingStatusPending
				return b, nil
			})

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(bookingBodyFixture))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["id"] != "bk-1" || got["status"] != "pending" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bk-missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_UpdateBookingStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("settled booking conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusCancelled).
			Return(entities.Booking{}, usecase.ErrBookingNotMutable)

		r := gin.New()
		r.PATCH("/v1/bookings/:booking_id/status", h.UpdateBookingStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/bk-1/status", bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:booking_id/status", h.UpdateBookingStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/bk-1/status", bytes.NewBufferString(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().List(gomock.Any(), "ahmed@example.com").Return([]entities.Booking{{ID: "bk-1"}}, nil)

	r := gin.New()
	r.GET("/v1/bookings", h.ListBookings)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings?email=ahmed@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "bk-1" {
		t.Fatalf("unexpected response: %v", got)
	}
}

func TestBookingHandler_GetAnalytics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().Analytics(gomock.Any()).Return(usecase.BookingAnalytics{
		TotalBookings:     2,
		ConfirmedBookings: 1,
		PendingBookings:   1,
		PopularSites:      []usecase.SiteBookingStats{{SiteName: "Quba Mosque", Count: 2, TotalRevenue: 300}},
	}, nil)

	r := gin.New()
	r.GET("/v1/analytics", h.GetAnalytics)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if got["total_bookings"] != float64(2) {
		t.Fatalf("unexpected response: %v", got)
	}
}
