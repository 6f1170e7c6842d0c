package room

import (
	"room-booking-api/core/database"
	bookingrepo "room-booking-api/modules/booking/repository"
	"room-booking-api/modules/room/controller"
	"room-booking-api/modules/room/repository"
	"room-booking-api/modules/room/router"
	"room-booking-api/modules/room/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the room module and registers routes
func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewRoomRepository(db)
	bkRepo := bookingrepo.NewBookingRepository(db)
	svc := service.NewRoomService(repo, bkRepo)
	ctrl := controller.NewRoomController(svc)
	rtr := router.NewRoomRouter(ctrl)

	rtr.Setup(e)
}
