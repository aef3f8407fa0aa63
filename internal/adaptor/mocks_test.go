package adaptor

import (
	"context"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockRoomService struct {
	mock.Mock
}

func (m *mockRoomService) ListRooms(ctx context.Context, category string) (*response.CatalogResponse, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CatalogResponse), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.BookingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingsResponse), args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingCreatedResponse), args.Error(1)
}

func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, req *request.UpdateBookingRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, req *request.DeleteBookingRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.StatsResponse), args.Error(1)
}

func (m *mockAdminService) ListRooms(ctx context.Context) (*response.AdminRoomsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AdminRoomsResponse), args.Error(1)
}

func (m *mockAdminService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.RoomCreatedResponse), args.Error(1)
}

func (m *mockAdminService) UpdateRoomStatus(ctx context.Context, req *request.UpdateRoomRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAdminService) DeleteRoom(ctx context.Context, req *request.DeleteRoomRequest) error {
	return m.Called(ctx, req).Error(0)
}
