package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Server timeouts
const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Operating window for room bookings: hourly slots from 09:00 up to but
// excluding 18:00, so the last bookable start hour is 17:00.
const (
	BookingDayStartHour = 9
	BookingDayEndHour   = 18
)
