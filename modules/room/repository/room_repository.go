package repository

import (
	"context"
	"database/sql"

	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/room/entity"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	DB database.IDatabase
}

// NewRoomRepository creates a new repository instance
func NewRoomRepository(db database.IDatabase) *RoomRepository {
	return &RoomRepository{DB: db}
}

// RoomRepositoryInterface defines the repository contract
type RoomRepositoryInterface interface {
	CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error)
	GetRoomByID(ctx context.Context, id string) (*entity.Room, error)
	GetRoomByName(ctx context.Context, name string) (*entity.Room, error)
	GetAllRooms(ctx context.Context) ([]entity.Room, error)
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	query := `
		INSERT INTO rooms (id, name, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, name, capacity
	`

	var created entity.Room
	err := r.DB.GetContext(ctx, &created, query, room.ID, room.Name, room.Capacity)
	if err != nil {
		logger.Error("RoomRepository:CreateRoom:Error", "error", err, "name", room.Name)
		return nil, err
	}

	return &created, nil
}

func (r *RoomRepository) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE id = $1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetRoomByID:Error", "error", err, "room_id", id)
		return nil, err
	}

	return &room, nil
}

// GetRoomByName looks a room up by display name, case-insensitively.
func (r *RoomRepository) GetRoomByName(ctx context.Context, name string) (*entity.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE LOWER(name) = LOWER($1)`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RoomRepository:GetRoomByName:Error", "error", err, "name", name)
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) GetAllRooms(ctx context.Context) ([]entity.Room, error) {
	query := `SELECT id, name, capacity FROM rooms ORDER BY id`

	var rooms []entity.Room
	err := r.DB.SelectContext(ctx, &rooms, query)
	if err != nil {
		logger.Error("RoomRepository:GetAllRooms:Error", "error", err)
		return nil, err
	}

	return rooms, nil
}
