package repository

import (
	"context"
	"database/sql"

	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/booking/entity"
)

// BookingRepository handles booking database operations
type BookingRepository struct {
	DB database.IDatabase
}

// NewBookingRepository creates a new repository instance
func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{DB: db}
}

// BookingRepositoryInterface defines the repository contract
type BookingRepositoryInterface interface {
	CreateBooking(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*entity.Booking, error)
	GetBookingBySlot(ctx context.Context, roomID, date, startTime string) (*entity.Booking, error)
	GetBookingsByICNumber(ctx context.Context, icNumber string) ([]entity.Booking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]entity.Booking, error)
	GetBookingsByDateRange(ctx context.Context, startDate, endDate, icNumber string) ([]entity.Booking, error)
}

// CreateBooking inserts a booking. The unique constraint on (room_id, date,
// start_time) rejects the loser of a concurrent insert; callers detect that
// with database.IsUniqueViolation.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (id, room_id, ic_number, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, room_id, ic_number, date, start_time, end_time
	`

	var created entity.Booking
	err := r.DB.GetContext(ctx, &created, query,
		booking.ID, booking.RoomID, booking.ICNumber,
		booking.Date, booking.StartTime, booking.EndTime)

	if err != nil {
		if !database.IsUniqueViolation(err) {
			logger.Error("BookingRepository:CreateBooking:Error", "error", err,
				"room_id", booking.RoomID, "date", booking.Date, "start_time", booking.StartTime)
		}
		return nil, err
	}

	return &created, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.room_id, r.name AS room_name, b.ic_number, b.date, b.start_time, b.end_time
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`

	var booking entity.Booking
	err := r.DB.GetContext(ctx, &booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetBookingByID:Error", "error", err, "booking_id", id)
		return nil, err
	}

	return &booking, nil
}

// GetBookingBySlot returns the booking occupying (room, date, start time),
// or nil if the slot is free.
func (r *BookingRepository) GetBookingBySlot(ctx context.Context, roomID, date, startTime string) (*entity.Booking, error) {
	query := `
		SELECT id, room_id, ic_number, date, start_time, end_time
		FROM bookings
		WHERE room_id = $1 AND date = $2 AND start_time = $3
	`

	var booking entity.Booking
	err := r.DB.GetContext(ctx, &booking, query, roomID, date, startTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetBookingBySlot:Error", "error", err,
			"room_id", roomID, "date", date, "start_time", startTime)
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepository) GetBookingsByICNumber(ctx context.Context, icNumber string) ([]entity.Booking, error) {
	query := `
		SELECT b.id, b.room_id, r.name AS room_name, b.ic_number, b.date, b.start_time, b.end_time
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		WHERE b.ic_number = $1
		ORDER BY b.date DESC, b.start_time DESC
	`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, icNumber)
	if err != nil {
		logger.Error("BookingRepository:GetBookingsByICNumber:Error", "error", err)
		return nil, err
	}

	return bookings, nil
}

// GetBookingsByDate returns all bookings on one date, without room names;
// the slot generator only needs room id, start time and occupant.
func (r *BookingRepository) GetBookingsByDate(ctx context.Context, date string) ([]entity.Booking, error) {
	query := `
		SELECT id, room_id, ic_number, date, start_time, end_time
		FROM bookings
		WHERE date = $1
	`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		logger.Error("BookingRepository:GetBookingsByDate:Error", "error", err, "date", date)
		return nil, err
	}

	return bookings, nil
}

// GetBookingsByDateRange returns bookings with date in [startDate, endDate],
// optionally filtered by IC number when icNumber is non-empty.
func (r *BookingRepository) GetBookingsByDateRange(ctx context.Context, startDate, endDate, icNumber string) ([]entity.Booking, error) {
	query := `
		SELECT b.id, b.room_id, r.name AS room_name, b.ic_number, b.date, b.start_time, b.end_time
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		WHERE b.date BETWEEN $1 AND $2
	`
	args := []any{startDate, endDate}

	if icNumber != "" {
		query += ` AND b.ic_number = $3`
		args = append(args, icNumber)
	}

	query += ` ORDER BY b.date ASC, b.start_time ASC`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		logger.Error("BookingRepository:GetBookingsByDateRange:Error", "error", err,
			"start_date", startDate, "end_date", endDate)
		return nil, err
	}

	return bookings, nil
}
