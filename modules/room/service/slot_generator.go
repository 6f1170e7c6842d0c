package service

import (
	"fmt"

	"room-booking-api/core/constants"
	bookingentity "room-booking-api/modules/booking/entity"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"
)

// SlotGenerator materializes the bookable hours for a date as a pure
// function of the room list and the bookings persisted for that date.
type SlotGenerator struct {
	// DayStartHour is the first bookable start hour (inclusive)
	DayStartHour int
	// DayEndHour bounds the window (exclusive); the last bookable start
	// hour is DayEndHour-1
	DayEndHour int
}

// NewSlotGenerator creates a generator for the standard operating window
func NewSlotGenerator() *SlotGenerator {
	return &SlotGenerator{
		DayStartHour: constants.BookingDayStartHour,
		DayEndHour:   constants.BookingDayEndHour,
	}
}

// Generate produces one slot per (room, hour) in room-enumeration order then
// ascending hour. A slot is booked iff a booking exists for (room, date,
// hour); booked slots carry the booking id and occupant IC number, free
// slots a synthetic id derived from room and hour for UI addressing only.
// The date is treated as an opaque key here; callers validate it.
func (g *SlotGenerator) Generate(date string, rooms []entity.Room, bookings []bookingentity.Booking) []dto.TimeSlotResponse {
	booked := make(map[string]bookingentity.Booking, len(bookings))
	for _, b := range bookings {
		booked[b.RoomID+"-"+b.StartTime] = b
	}

	slots := make([]dto.TimeSlotResponse, 0, len(rooms)*(g.DayEndHour-g.DayStartHour))
	for _, room := range rooms {
		for hour := g.DayStartHour; hour < g.DayEndHour; hour++ {
			startTime := fmt.Sprintf("%02d:00", hour)
			endTime := fmt.Sprintf("%02d:00", hour+1)

			slot := dto.TimeSlotResponse{
				ID:        fmt.Sprintf("%s%d", room.ID, hour),
				RoomID:    room.ID,
				Date:      date,
				StartTime: startTime,
				EndTime:   endTime,
			}

			if b, ok := booked[room.ID+"-"+startTime]; ok {
				slot.ID = b.ID
				slot.IsBooked = true
				slot.BookedBy = b.ICNumber
			}

			slots = append(slots, slot)
		}
	}

	return slots
}
