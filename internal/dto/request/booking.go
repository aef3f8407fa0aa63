package request

type CreateBookingRequest struct {
	RoomID      int64   `json:"roomId" validate:"required"`
	CheckIn     string  `json:"checkIn" validate:"required"`
	CheckOut    string  `json:"checkOut" validate:"required"`
	GuestsCount *int    `json:"guestsCount,omitempty"`
	GuestName   string  `json:"guestName" validate:"required"`
	GuestEmail  string  `json:"guestEmail" validate:"required"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	BookingID int64  `json:"bookingId" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

type DeleteBookingRequest struct {
	BookingID int64 `json:"bookingId" validate:"required"`
}

// ListBookingsRequest is parsed from the query string
type ListBookingsRequest struct {
	UserID *int64
	Status *string
}
