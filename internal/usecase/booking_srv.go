package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

const defaultGuestsCount = 2

type BookingService interface {
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.BookingsResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	UpdateBookingStatus(ctx context.Context, req *request.UpdateBookingRequest) error
	DeleteBooking(ctx context.Context, req *request.DeleteBookingRequest) error
}

type bookingService struct {
	store repository.Store
	log   *zap.Logger
}

func NewBookingService(store repository.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: store,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.BookingsResponse, error) {
	filter := entity.BookingFilter{
		UserID: req.UserID,
		Status: req.Status,
	}

	var bookings []*entity.Booking
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		var err error
		bookings, err = repo.Booking.FindAll(ctx, filter)
		return err
	})
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int64p("user_id", req.UserID),
			zap.Stringp("status", req.Status),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking)
	}

	return &response.BookingsResponse{Bookings: result}, nil
}

// CreateBooking prices the stay from the room's current nightly rate and stores it as pending.
// The returned total is the one the store kept, rounded to its column precision.
// Room lookup and insert are separate statements; overlapping stays are not detected.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, apperror.Validation("Missing required fields")
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, apperror.Validation("Invalid checkIn date")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, apperror.Validation("Invalid checkOut date")
	}

	guestsCount := defaultGuestsCount
	if req.GuestsCount != nil {
		guestsCount = *req.GuestsCount
	}

	nights := utils.CountNights(checkIn, checkOut)

	booking := &entity.Booking{
		RoomID:      req.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: &guestsCount,
		Status:      entity.BookingStatusPending,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		Notes:       req.Notes,
	}

	err = s.store.Do(ctx, func(repo *repository.Repository) error {
		price, err := repo.Room.FindPriceByID(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if price == nil {
			return apperror.NotFound("Room not found")
		}

		booking.TotalPrice = *price * float64(nights)

		return repo.Booking.Create(ctx, booking)
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("room_id", booking.RoomID),
		zap.Int("nights", nights),
		zap.Float64("total_price", booking.TotalPrice),
	)

	return &response.BookingCreatedResponse{
		Message:    "Booking created successfully",
		BookingID:  booking.ID,
		TotalPrice: booking.TotalPrice,
	}, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, req *request.UpdateBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("Missing bookingId or status")
	}

	status := entity.BookingStatus(req.Status)
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		return repo.Booking.UpdateStatus(ctx, req.BookingID, status)
	})
	if err != nil {
		return fmt.Errorf("update booking %d: %w", req.BookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.Int64("booking_id", req.BookingID),
		zap.String("status", req.Status),
	)
	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, req *request.DeleteBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("Missing bookingId")
	}

	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		return repo.Booking.Delete(ctx, req.BookingID)
	})
	if err != nil {
		return fmt.Errorf("delete booking %d: %w", req.BookingID, err)
	}

	return nil
}
