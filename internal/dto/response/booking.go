package response

import (
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

type BookingResponse struct {
	ID          int64                `json:"id"`
	RoomID      int64                `json:"roomId"`
	RoomName    *string              `json:"roomName"`
	RoomImage   *string              `json:"roomImage"`
	CheckIn     string               `json:"checkIn"`
	CheckOut    string               `json:"checkOut"`
	GuestsCount *int                 `json:"guestsCount"`
	TotalPrice  float64              `json:"totalPrice"`
	Status      entity.BookingStatus `json:"status"`
	GuestName   string               `json:"guestName"`
	GuestEmail  string               `json:"guestEmail"`
	GuestPhone  *string              `json:"guestPhone"`
	Notes       *string              `json:"notes"`
	CreatedAt   string               `json:"createdAt"`
}

type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type BookingCreatedResponse struct {
	Message    string  `json:"message"`
	BookingID  int64   `json:"bookingId"`
	TotalPrice float64 `json:"totalPrice"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		RoomID:      booking.RoomID,
		RoomName:    booking.RoomName,
		RoomImage:   booking.RoomImage,
		CheckIn:     booking.CheckIn.Format(utils.DateLayout),
		CheckOut:    booking.CheckOut.Format(utils.DateLayout),
		GuestsCount: booking.GuestsCount,
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		GuestPhone:  booking.GuestPhone,
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt.Format(utils.TimestampLayout),
	}
}
