package router

import (
	"room-booking-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

// BookingRouter handles booking routes
type BookingRouter struct {
	BookingController *controller.BookingController
}

// NewBookingRouter creates a new router
func NewBookingRouter(bookingController *controller.BookingController) *BookingRouter {
	return &BookingRouter{
		BookingController: bookingController,
	}
}

// Setup registers booking routes
func (r *BookingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	bookingRoutes := v1.Group("/bookings")
	bookingRoutes.POST("", r.BookingController.CreateBooking)
	bookingRoutes.GET("", r.BookingController.GetBookings)
	bookingRoutes.GET("/month/:year/:month", r.BookingController.GetBookingsByMonth)
	bookingRoutes.GET("/:id", r.BookingController.GetBookingByID)
}
