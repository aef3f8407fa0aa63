package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) FindCatalog(ctx context.Context, categoryCode *string) ([]*entity.Room, error) {
	args := m.Called(ctx, categoryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) FindPriceByID(ctx context.Context, id int64) (*float64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *entity.Room) (int64, error) {
	args := m.Called(ctx, room)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRoomRepo) UpdateStatus(ctx context.Context, id int64, status entity.RoomStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByCode(ctx context.Context, code string) (*entity.RoomCategory, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RoomCategory), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) Collect(ctx context.Context) (*entity.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Stats), args.Error(1)
}

// fakeStore runs fn against the mocks and counts the scopes it opened
type fakeStore struct {
	room     *mockRoomRepo
	category *mockCategoryRepo
	booking  *mockBookingRepo
	stats    *mockStatsRepo
	err      error
	scopes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		room:     new(mockRoomRepo),
		category: new(mockCategoryRepo),
		booking:  new(mockBookingRepo),
		stats:    new(mockStatsRepo),
	}
}

func (s *fakeStore) Do(ctx context.Context, fn func(repo *repository.Repository) error) error {
	if s.err != nil {
		return s.err
	}
	s.scopes++
	return fn(&repository.Repository{
		Room:     s.room,
		Category: s.category,
		Booking:  s.booking,
		Stats:    s.stats,
	})
}

func (s *fakeStore) assertExpectations(t mock.TestingT) {
	s.room.AssertExpectations(t)
	s.category.AssertExpectations(t)
	s.booking.AssertExpectations(t)
	s.stats.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}
