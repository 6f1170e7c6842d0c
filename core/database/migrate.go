package database

import (
	"context"
	"fmt"

	"room-booking-api/core/logger"
)

// The unique constraint on (room_id, date, start_time) is the final
// authority for slot uniqueness: concurrent create requests that both pass
// the application-level availability check race to insert, and the loser is
// rejected here.
const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	capacity   INTEGER NOT NULL CHECK (capacity >= 1),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_name_lower ON rooms (LOWER(name));

CREATE TABLE IF NOT EXISTS bookings (
	id         TEXT PRIMARY KEY,
	room_id    TEXT NOT NULL REFERENCES rooms(id),
	ic_number  TEXT NOT NULL,
	date       TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT bookings_room_date_start_key UNIQUE (room_id, date, start_time)
);

CREATE INDEX IF NOT EXISTS idx_bookings_ic_number ON bookings (ic_number);
CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (date);
`

// Migrate creates the schema if it does not exist yet.
func (d *Database) Migrate(ctx context.Context) error {
	if _, err := d.sqlx.ExecContext(ctx, schema); err != nil {
		logger.Error("Database:Migrate:Error", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Database schema is up to date")
	return nil
}
