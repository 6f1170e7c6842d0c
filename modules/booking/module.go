package booking

import (
	"room-booking-api/core/database"
	"room-booking-api/modules/booking/controller"
	"room-booking-api/modules/booking/repository"
	"room-booking-api/modules/booking/router"
	"room-booking-api/modules/booking/service"
	roomrepo "room-booking-api/modules/room/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the booking module and registers routes
func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewBookingRepository(db)
	rmRepo := roomrepo.NewRoomRepository(db)
	svc := service.NewBookingService(repo, rmRepo)
	ctrl := controller.NewBookingController(svc)
	rtr := router.NewBookingRouter(ctrl)

	rtr.Setup(e)
}
