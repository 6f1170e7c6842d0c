package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"room-booking-api/core/constants"
	"room-booking-api/core/database"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/entity"
	"room-booking-api/modules/booking/repository"
	roomrepo "room-booking-api/modules/room/repository"

	"github.com/google/uuid"
)

var (
	icNumberRegex  = regexp.MustCompile(`^\d{12}$`)
	dateRegex      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	startTimeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// BookingService handles booking business logic
type BookingService struct {
	repo     repository.BookingRepositoryInterface
	roomRepo roomrepo.RoomRepositoryInterface
}

// BookingServiceInterface defines the service contract
type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError)
	GetBookingByID(ctx context.Context, id string) (*dto.BookingResponse, *errors.AppError)
	GetBookingsByICNumber(ctx context.Context, icNumber string) ([]dto.BookingResponse, *errors.AppError)
	GetBookingsByMonth(ctx context.Context, year, month int, icNumber string) ([]dto.BookingResponse, *errors.AppError)
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.BookingRepositoryInterface, roomRepo roomrepo.RoomRepositoryInterface) BookingServiceInterface {
	return &BookingService{
		repo:     repo,
		roomRepo: roomRepo,
	}
}

// CreateBooking validates and persists a reservation. Checks run in a fixed
// order, each short-circuiting on failure: field presence, IC number shape,
// date format, time format, operating window, room existence, slot
// availability. The availability lookup only produces the friendlier
// message; the store's unique constraint decides concurrent races.
func (s *BookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError) {
	if req.RoomID == "" || req.Date == "" || req.StartTime == "" || req.ICNumber == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			"Missing required fields: roomId, date, startTime, icNumber", nil)
	}

	if !icNumberRegex.MatchString(req.ICNumber) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "IC number must be 12 digits", nil)
	}

	if !dateRegex.MatchString(req.Date) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date format. Use YYYY-MM-DD", nil)
	}

	if !startTimeRegex.MatchString(req.StartTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid time format. Use HH:mm", nil)
	}

	startHour, err := strconv.Atoi(req.StartTime[:2])
	if err != nil || startHour < constants.BookingDayStartHour || startHour >= constants.BookingDayEndHour {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			"Time slot must be between 09:00 and 18:00", nil)
	}

	room, err := s.roomRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create booking", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	existing, err := s.repo.GetBookingBySlot(ctx, req.RoomID, req.Date, req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create booking", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "This time slot is already booked", nil)
	}

	booking := &entity.Booking{
		ID:        uuid.NewString(),
		RoomID:    req.RoomID,
		ICNumber:  req.ICNumber,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   fmt.Sprintf("%02d:00", startHour+1),
	}

	created, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		// Lost the race between the availability check and the insert
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "This time slot is already booked", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create booking", err)
	}

	created.RoomName = room.Name

	logger.Info("BookingService:CreateBooking:Success",
		"booking_id", created.ID,
		"room_id", created.RoomID,
		"date", created.Date,
		"start_time", created.StartTime,
	)

	return dto.ToBookingResponse(created), nil
}

// GetBookingByID retrieves a booking by ID
func (s *BookingService) GetBookingByID(ctx context.Context, id string) (*dto.BookingResponse, *errors.AppError) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Booking not found", nil)
	}

	return dto.ToBookingResponse(booking), nil
}

// GetBookingsByICNumber retrieves all bookings for one occupant, most recent
// first
func (s *BookingService) GetBookingsByICNumber(ctx context.Context, icNumber string) ([]dto.BookingResponse, *errors.AppError) {
	bookings, err := s.repo.GetBookingsByICNumber(ctx, icNumber)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve bookings", err)
	}

	return dto.ToBookingResponses(bookings), nil
}

// GetBookingsByMonth retrieves bookings for one calendar month, optionally
// filtered by IC number. The month range runs from the first through the
// last calendar day, computed by calendar arithmetic so leap years are
// handled.
func (s *BookingService) GetBookingsByMonth(ctx context.Context, year, month int, icNumber string) ([]dto.BookingResponse, *errors.AppError) {
	if month < 1 || month > 12 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Month must be between 1 and 12", nil)
	}

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	endDate := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)

	bookings, err := s.repo.GetBookingsByDateRange(ctx, startDate, endDate, icNumber)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve bookings", err)
	}

	return dto.ToBookingResponses(bookings), nil
}
