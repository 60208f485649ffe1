package routes

import (
	"madinah_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings  = "/bookings"
	PathAnalytics = "/analytics/bookings"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.PATCH("/:booking_id/status", bookingHandler.UpdateBookingStatus)
	}

	rg.GET(PathAnalytics, bookingHandler.GetAnalytics)
}
