package dto

import (
	"room-booking-api/modules/room/entity"
)

// ===================== Request DTOs =====================

// CreateRoomRequest for creating a new room
type CreateRoomRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

// ===================== Response DTOs =====================

// RoomResponse for room details
type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// TimeSlotResponse is a derived, non-persisted view of one bookable hour for
// one room on one date. Free slots carry a synthetic identifier for UI
// addressing only.
type TimeSlotResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
	BookedBy  string `json:"bookedBy,omitempty"`
}

// RoomsWithSlotsResponse pairs the room list with the availability view for
// one date
type RoomsWithSlotsResponse struct {
	Rooms     []RoomResponse     `json:"rooms"`
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// ===================== Mapper Functions =====================

// ToRoomResponse maps entity to DTO
func ToRoomResponse(r *entity.Room) *RoomResponse {
	return &RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

// ToRoomResponses maps a room list to DTOs
func ToRoomResponses(rooms []entity.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, *ToRoomResponse(&rooms[i]))
	}
	return result
}
