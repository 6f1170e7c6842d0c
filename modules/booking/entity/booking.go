package entity

// Booking represents a confirmed one-hour reservation of a room. RoomName is
// populated only by queries that join the rooms table.
type Booking struct {
	ID        string `db:"id" json:"id"`
	RoomID    string `db:"room_id" json:"roomId"`
	RoomName  string `db:"room_name" json:"roomName,omitempty"`
	ICNumber  string `db:"ic_number" json:"icNumber"`
	Date      string `db:"date" json:"date"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`
}
