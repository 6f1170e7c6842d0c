package service

import (
	"context"
	"testing"

	"room-booking-api/core/errors"
	bookingentity "room-booking-api/modules/booking/entity"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"

	"github.com/lib/pq"
)

// ────────────────────────────────────────────────
// Mock repositories for testing
// ────────────────────────────────────────────────

type mockRoomRepository struct {
	createRoomFunc    func(ctx context.Context, room *entity.Room) (*entity.Room, error)
	getRoomByIDFunc   func(ctx context.Context, id string) (*entity.Room, error)
	getRoomByNameFunc func(ctx context.Context, name string) (*entity.Room, error)
	getAllRoomsFunc   func(ctx context.Context) ([]entity.Room, error)
}

func (m *mockRoomRepository) CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	if m.createRoomFunc != nil {
		return m.createRoomFunc(ctx, room)
	}
	return room, nil
}

func (m *mockRoomRepository) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	if m.getRoomByIDFunc != nil {
		return m.getRoomByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomRepository) GetRoomByName(ctx context.Context, name string) (*entity.Room, error) {
	if m.getRoomByNameFunc != nil {
		return m.getRoomByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRoomRepository) GetAllRooms(ctx context.Context) ([]entity.Room, error) {
	if m.getAllRoomsFunc != nil {
		return m.getAllRoomsFunc(ctx)
	}
	return []entity.Room{}, nil
}

type mockBookingRepository struct {
	getBookingsByDateFunc func(ctx context.Context, date string) ([]bookingentity.Booking, error)
}

func (m *mockBookingRepository) CreateBooking(ctx context.Context, booking *bookingentity.Booking) (*bookingentity.Booking, error) {
	return booking, nil
}

func (m *mockBookingRepository) GetBookingByID(ctx context.Context, id string) (*bookingentity.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepository) GetBookingBySlot(ctx context.Context, roomID, date, startTime string) (*bookingentity.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepository) GetBookingsByICNumber(ctx context.Context, icNumber string) ([]bookingentity.Booking, error) {
	return []bookingentity.Booking{}, nil
}

func (m *mockBookingRepository) GetBookingsByDate(ctx context.Context, date string) ([]bookingentity.Booking, error) {
	if m.getBookingsByDateFunc != nil {
		return m.getBookingsByDateFunc(ctx, date)
	}
	return []bookingentity.Booking{}, nil
}

func (m *mockBookingRepository) GetBookingsByDateRange(ctx context.Context, startDate, endDate, icNumber string) ([]bookingentity.Booking, error) {
	return []bookingentity.Booking{}, nil
}

// ────────────────────────────────────────────────
// Tests for CreateRoom
// ────────────────────────────────────────────────

func TestCreateRoom_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      *dto.CreateRoomRequest
		wantCode errors.ErrorCode
	}{
		{
			name:     "empty name",
			req:      &dto.CreateRoomRequest{Name: "", Capacity: 4},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name:     "whitespace-only name",
			req:      &dto.CreateRoomRequest{Name: "   ", Capacity: 4},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name:     "zero capacity",
			req:      &dto.CreateRoomRequest{Name: "Room A", Capacity: 0},
			wantCode: errors.ErrInvalidInput,
		},
		{
			name:     "negative capacity",
			req:      &dto.CreateRoomRequest{Name: "Room A", Capacity: -3},
			wantCode: errors.ErrInvalidInput,
		},
	}

	svc := NewRoomService(&mockRoomRepository{}, &mockBookingRepository{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.CreateRoom(context.Background(), tt.req)
			if appErr == nil {
				t.Fatal("expected error, got nil")
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestCreateRoom_Success(t *testing.T) {
	repo := &mockRoomRepository{}
	svc := NewRoomService(repo, &mockBookingRepository{})

	result, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		Name:     "  Room A  ",
		Capacity: 4,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if result.Name != "Room A" {
		t.Errorf("expected trimmed name Room A, got %q", result.Name)
	}
	if result.Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", result.Capacity)
	}
	if result.ID == "" {
		t.Error("expected a generated room id")
	}
}

func TestCreateRoom_DuplicateName(t *testing.T) {
	repo := &mockRoomRepository{
		getRoomByNameFunc: func(ctx context.Context, name string) (*entity.Room, error) {
			return &entity.Room{ID: "existing", Name: "room a", Capacity: 2}, nil
		},
	}
	svc := NewRoomService(repo, &mockBookingRepository{})

	_, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{Name: "Room A", Capacity: 4})
	if appErr == nil {
		t.Fatal("expected duplicate-name error")
	}
	if appErr.Code != errors.ErrAlreadyExists {
		t.Errorf("expected code %s, got %s", errors.ErrAlreadyExists, appErr.Code)
	}
}

func TestCreateRoom_UniqueViolationOnInsert(t *testing.T) {
	repo := &mockRoomRepository{
		createRoomFunc: func(ctx context.Context, room *entity.Room) (*entity.Room, error) {
			return nil, &pq.Error{Code: "23505"}
		},
	}
	svc := NewRoomService(repo, &mockBookingRepository{})

	_, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{Name: "Room A", Capacity: 4})
	if appErr == nil {
		t.Fatal("expected error from constraint violation")
	}
	if appErr.Code != errors.ErrAlreadyExists {
		t.Errorf("expected code %s, got %s", errors.ErrAlreadyExists, appErr.Code)
	}
}

// ────────────────────────────────────────────────
// Tests for GetRoomsWithSlots
// ────────────────────────────────────────────────

func TestGetRoomsWithSlots(t *testing.T) {
	roomRepo := &mockRoomRepository{
		getAllRoomsFunc: func(ctx context.Context) ([]entity.Room, error) {
			return []entity.Room{
				{ID: "roomA", Name: "Room A", Capacity: 4},
				{ID: "roomB", Name: "Room B", Capacity: 8},
			}, nil
		},
	}
	bookingRepo := &mockBookingRepository{
		getBookingsByDateFunc: func(ctx context.Context, date string) ([]bookingentity.Booking, error) {
			return []bookingentity.Booking{
				{ID: "bk-1", RoomID: "roomB", ICNumber: "990101011234", Date: date, StartTime: "14:00", EndTime: "15:00"},
			}, nil
		},
	}
	svc := NewRoomService(roomRepo, bookingRepo)

	result, appErr := svc.GetRoomsWithSlots(context.Background(), "2026-03-10")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(result.Rooms) != 2 {
		t.Errorf("expected 2 rooms, got %d", len(result.Rooms))
	}
	if len(result.TimeSlots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(result.TimeSlots))
	}

	bookedCount := 0
	for _, slot := range result.TimeSlots {
		if slot.IsBooked {
			bookedCount++
			if slot.RoomID != "roomB" || slot.StartTime != "14:00" {
				t.Errorf("wrong slot marked booked: %s %s", slot.RoomID, slot.StartTime)
			}
			if slot.BookedBy != "990101011234" {
				t.Errorf("expected occupant 990101011234, got %s", slot.BookedBy)
			}
		}
	}
	if bookedCount != 1 {
		t.Errorf("expected exactly 1 booked slot, got %d", bookedCount)
	}
}

func TestGetRoomByID_NotFound(t *testing.T) {
	svc := NewRoomService(&mockRoomRepository{}, &mockBookingRepository{})

	_, appErr := svc.GetRoomByID(context.Background(), "missing")
	if appErr == nil {
		t.Fatal("expected not-found error")
	}
	if appErr.Code != errors.ErrNotFound {
		t.Errorf("expected code %s, got %s", errors.ErrNotFound, appErr.Code)
	}
}
