package entity

import "time"

// BookingStatus is an open set: any string a client sends is stored as is.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	RoomID      int64         `db:"room_id"`
	UserID      *int64        `db:"user_id"`
	CheckIn     time.Time     `db:"check_in"`
	CheckOut    time.Time     `db:"check_out"`
	GuestsCount *int          `db:"guests_count"`
	TotalPrice  float64       `db:"total_price"`
	Status      BookingStatus `db:"status"`
	GuestName   string        `db:"guest_name"`
	GuestEmail  string        `db:"guest_email"`
	GuestPhone  *string       `db:"guest_phone"`
	Notes       *string       `db:"notes"`

	// joined from rooms
	RoomName  *string `db:"room_name"`
	RoomImage *string `db:"room_image"`
}

// BookingFilter narrows a booking listing; nil fields are not applied.
type BookingFilter struct {
	UserID *int64
	Status *string
}
