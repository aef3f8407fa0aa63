package usecase

import (
	"hotel-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Room    RoomService
	Booking BookingService
	Admin   AdminService
}

func NewService(store repository.Store, log *zap.Logger) *Service {
	return &Service{
		Room:    NewRoomService(store, log),
		Booking: NewBookingService(store, log),
		Admin:   NewAdminService(store, log),
	}
}
