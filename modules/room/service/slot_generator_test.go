package service

import (
	"fmt"
	"testing"

	bookingentity "room-booking-api/modules/booking/entity"
	"room-booking-api/modules/room/entity"
)

func TestGenerate_NineSlotsPerRoomInOrder(t *testing.T) {
	g := NewSlotGenerator()

	rooms := []entity.Room{
		{ID: "roomA", Name: "Room A", Capacity: 4},
		{ID: "roomB", Name: "Room B", Capacity: 8},
	}

	slots := g.Generate("2026-03-10", rooms, nil)

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots for 2 rooms, got %d", len(slots))
	}

	idx := 0
	for _, room := range rooms {
		for hour := 9; hour < 18; hour++ {
			slot := slots[idx]
			if slot.RoomID != room.ID {
				t.Errorf("slot %d: expected room %s, got %s", idx, room.ID, slot.RoomID)
			}
			wantStart := fmt.Sprintf("%02d:00", hour)
			if slot.StartTime != wantStart {
				t.Errorf("slot %d: expected start %s, got %s", idx, wantStart, slot.StartTime)
			}
			wantEnd := fmt.Sprintf("%02d:00", hour+1)
			if slot.EndTime != wantEnd {
				t.Errorf("slot %d: expected end %s, got %s", idx, wantEnd, slot.EndTime)
			}
			if slot.Date != "2026-03-10" {
				t.Errorf("slot %d: expected date 2026-03-10, got %s", idx, slot.Date)
			}
			if slot.IsBooked {
				t.Errorf("slot %d: expected free slot", idx)
			}
			idx++
		}
	}
}

func TestGenerate_BookedSlotCarriesOccupant(t *testing.T) {
	g := NewSlotGenerator()

	rooms := []entity.Room{{ID: "roomA", Name: "Room A", Capacity: 4}}
	bookings := []bookingentity.Booking{
		{
			ID:        "bk-1",
			RoomID:    "roomA",
			ICNumber:  "990101011234",
			Date:      "2026-03-10",
			StartTime: "10:00",
			EndTime:   "11:00",
		},
	}

	slots := g.Generate("2026-03-10", rooms, bookings)

	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}

	for _, slot := range slots {
		if slot.StartTime == "10:00" {
			if !slot.IsBooked {
				t.Error("10:00 slot should be booked")
			}
			if slot.BookedBy != "990101011234" {
				t.Errorf("expected occupant 990101011234, got %s", slot.BookedBy)
			}
			if slot.ID != "bk-1" {
				t.Errorf("booked slot should carry the booking id, got %s", slot.ID)
			}
		} else {
			if slot.IsBooked {
				t.Errorf("%s slot should be free", slot.StartTime)
			}
			if slot.BookedBy != "" {
				t.Errorf("%s slot should have no occupant, got %s", slot.StartTime, slot.BookedBy)
			}
		}
	}
}

func TestGenerate_FreeSlotSyntheticID(t *testing.T) {
	g := NewSlotGenerator()

	rooms := []entity.Room{{ID: "roomA", Name: "Room A", Capacity: 4}}
	slots := g.Generate("2026-03-10", rooms, nil)

	for i, slot := range slots {
		want := fmt.Sprintf("roomA%d", 9+i)
		if slot.ID != want {
			t.Errorf("slot %d: expected synthetic id %s, got %s", i, want, slot.ID)
		}
	}
}

func TestGenerate_NoRooms(t *testing.T) {
	g := NewSlotGenerator()

	slots := g.Generate("2026-03-10", nil, nil)
	if len(slots) != 0 {
		t.Fatalf("expected no slots for empty room set, got %d", len(slots))
	}
}
