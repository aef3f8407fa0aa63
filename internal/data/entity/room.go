package entity

// RoomStatus is stored as free text; the constants are the values the front desk uses.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

type RoomCategory struct {
	ID   int64  `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
}

type Room struct {
	Base
	CategoryID    *int64     `db:"category_id"`
	Name          string     `db:"name"`
	PricePerNight float64    `db:"price_per_night"`
	Area          *float64   `db:"area"`
	MaxGuests     *int       `db:"max_guests"`
	Description   *string    `db:"description"`
	Features      []string   `db:"features"`
	ImageURL      *string    `db:"image_url"`
	Status        RoomStatus `db:"status"`

	// joined from room_categories, nil when the room has no category
	CategoryCode *string `db:"category_code"`
	CategoryName *string `db:"category_name"`
}
