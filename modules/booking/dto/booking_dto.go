package dto

import (
	"room-booking-api/modules/booking/entity"
)

// ===================== Request DTOs =====================

// CreateBookingRequest for reserving a one-hour slot
type CreateBookingRequest struct {
	RoomID    string `json:"roomId" validate:"required"`
	Date      string `json:"date" validate:"required"`      // YYYY-MM-DD
	StartTime string `json:"startTime" validate:"required"` // HH:mm, on the hour
	ICNumber  string `json:"icNumber" validate:"required"`  // 12 decimal digits
}

// ===================== Response DTOs =====================

// BookingResponse for booking details, with the room display name resolved
type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ICNumber  string `json:"icNumber"`
}

// ===================== Mapper Functions =====================

// ToBookingResponse maps entity to DTO
func ToBookingResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		ICNumber:  b.ICNumber,
	}
}

// ToBookingResponses maps a booking list to DTOs
func ToBookingResponses(bookings []entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *ToBookingResponse(&bookings[i]))
	}
	return result
}
