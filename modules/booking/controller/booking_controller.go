package controller

import (
	"strconv"

	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/service"

	"github.com/labstack/echo/v4"
)

// BookingController handles booking HTTP requests
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

// NewBookingController creates a new controller
func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// CreateBooking handles POST /bookings
// @Summary Book a one-hour slot
// @Description Reserves one room for one hour on one date for one occupant
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) CreateBooking(ctx echo.Context) error {
	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing required fields: roomId, date, startTime, icNumber")
	}

	result, appErr := c.BookingService.CreateBooking(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Booking created successfully")
}

// GetBookings handles GET /bookings?icNumber=XXX
// @Summary List bookings for one occupant
// @Tags Booking
// @Produce json
// @Param icNumber query string true "Occupant IC number"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /bookings [get]
func (c *BookingController) GetBookings(ctx echo.Context) error {
	icNumber := ctx.QueryParam("icNumber")
	if icNumber == "" {
		return c.BadRequest(errors.ErrInvalidInput, "IC number parameter is required")
	}

	result, appErr := c.BookingService.GetBookingsByICNumber(ctx.Request().Context(), icNumber)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetBookingByID handles GET /bookings/:id
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /bookings/{id} [get]
func (c *BookingController) GetBookingByID(ctx echo.Context) error {
	bookingID := ctx.Param("id")
	if bookingID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	result, appErr := c.BookingService.GetBookingByID(ctx.Request().Context(), bookingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetBookingsByMonth handles GET /bookings/month/:year/:month?icNumber=XXX
// @Summary List bookings for one calendar month
// @Tags Booking
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param icNumber query string false "Occupant IC number"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /bookings/month/{year}/{month} [get]
func (c *BookingController) GetBookingsByMonth(ctx echo.Context) error {
	year, yearErr := strconv.Atoi(ctx.Param("year"))
	month, monthErr := strconv.Atoi(ctx.Param("month"))
	if yearErr != nil || monthErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid year or month")
	}

	icNumber := ctx.QueryParam("icNumber")

	result, appErr := c.BookingService.GetBookingsByMonth(ctx.Request().Context(), year, month, icNumber)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
