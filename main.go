package main

import (
	"room-booking-api/core/logger"
	"room-booking-api/core/server"
)

// @title Meeting Room Booking API
// @version 1.0
// @description REST API backend for browsing room availability and reserving
// @description one-hour meeting-room slots.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
