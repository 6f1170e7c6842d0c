package controller

import (
	"regexp"

	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/service"

	"github.com/labstack/echo/v4"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RoomController handles room HTTP requests
type RoomController struct {
	controller.BaseController
	RoomService service.RoomServiceInterface
}

// NewRoomController creates a new controller
func NewRoomController(svc service.RoomServiceInterface) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		RoomService:    svc,
	}
}

// GetRooms handles GET /rooms?date=YYYY-MM-DD
// @Summary List rooms with availability
// @Description Returns all rooms and their hourly slot view for one date
// @Tags Room
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.RoomsWithSlotsResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /rooms [get]
func (c *RoomController) GetRooms(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Date parameter is required (format: YYYY-MM-DD)")
	}
	if !dateRegex.MatchString(date) {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid date format. Use YYYY-MM-DD")
	}

	result, appErr := c.RoomService.GetRoomsWithSlots(ctx.Request().Context(), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetRoomByID handles GET /rooms/:id
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx echo.Context) error {
	roomID := ctx.Param("id")
	if roomID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	result, appErr := c.RoomService.GetRoomByID(ctx.Request().Context(), roomID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateRoom handles POST /rooms
// @Summary Create a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx echo.Context) error {
	var req dto.CreateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing required fields: name, capacity")
	}

	result, appErr := c.RoomService.CreateRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Room created successfully")
}
