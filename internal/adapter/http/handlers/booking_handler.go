package handlers

import (
	"errors"
	"log"
	request "madinah_tours/internal/adapter/http/dto/request"
	response "madinah_tours/internal/adapter/http/dto/response"
	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase"
	"madinah_tours/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for tour reservations.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("booking_id")

	booking, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListBookings returns reservations newest first; ?email= narrows the list to
// one visitor.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")

	bookings, err := h.usecase.List(c.Request.Context(), email)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// UpdateBookingStatus applies an administrative confirm or cancel.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("booking_id")

	var payload request.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("[booking][handler] status update failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.usecase.Analytics(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidBookingInput), errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotMutable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PENDING", "Booking is not pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
