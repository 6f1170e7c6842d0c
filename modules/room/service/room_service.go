package service

import (
	"context"
	"strings"

	"room-booking-api/core/database"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/utils"
	bookingrepo "room-booking-api/modules/booking/repository"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"
	"room-booking-api/modules/room/repository"
)

// RoomService handles room business logic
type RoomService struct {
	repo        repository.RoomRepositoryInterface
	bookingRepo bookingrepo.BookingRepositoryInterface
	slots       *SlotGenerator
}

// RoomServiceInterface defines the service contract
type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError)
	GetRoomByID(ctx context.Context, id string) (*dto.RoomResponse, *errors.AppError)
	GetAllRooms(ctx context.Context) ([]dto.RoomResponse, *errors.AppError)
	GetRoomsWithSlots(ctx context.Context, date string) (*dto.RoomsWithSlotsResponse, *errors.AppError)
}

// NewRoomService creates a new room service
func NewRoomService(repo repository.RoomRepositoryInterface, bookingRepo bookingrepo.BookingRepositoryInterface) RoomServiceInterface {
	return &RoomService{
		repo:        repo,
		bookingRepo: bookingRepo,
		slots:       NewSlotGenerator(),
	}
}

// CreateRoom creates a new room. Display names are unique
// case-insensitively; the unique index on LOWER(name) is the final
// authority, the lookup here only produces the friendlier message.
func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Room name is required", nil)
	}
	if req.Capacity < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Capacity must be a positive number", nil)
	}

	existing, err := s.repo.GetRoomByName(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A room with this name already exists", nil)
	}

	room := &entity.Room{
		ID:       utils.GenerateID(),
		Name:     name,
		Capacity: req.Capacity,
	}

	created, err := s.repo.CreateRoom(ctx, room)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "A room with this name already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", err)
	}

	logger.Info("RoomService:CreateRoom:Success", "room_id", created.ID, "name", created.Name)
	return dto.ToRoomResponse(created), nil
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id string) (*dto.RoomResponse, *errors.AppError) {
	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Room not found", nil)
	}

	return dto.ToRoomResponse(room), nil
}

// GetAllRooms retrieves all rooms in enumeration order
func (s *RoomService) GetAllRooms(ctx context.Context) ([]dto.RoomResponse, *errors.AppError) {
	rooms, err := s.repo.GetAllRooms(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve rooms", err)
	}

	return dto.ToRoomResponses(rooms), nil
}

// GetRoomsWithSlots returns all rooms with their availability view for one
// date
func (s *RoomService) GetRoomsWithSlots(ctx context.Context, date string) (*dto.RoomsWithSlotsResponse, *errors.AppError) {
	rooms, err := s.repo.GetAllRooms(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve rooms", err)
	}

	bookings, err := s.bookingRepo.GetBookingsByDate(ctx, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to retrieve rooms", err)
	}

	return &dto.RoomsWithSlotsResponse{
		Rooms:     dto.ToRoomResponses(rooms),
		TimeSlots: s.slots.Generate(date, rooms, bookings),
	}, nil
}
