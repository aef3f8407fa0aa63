package repository

import (
	"context"
	"fmt"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the repositories bound to one connection.
type Repository struct {
	Room     RoomRepository
	Category CategoryRepository
	Booking  BookingRepository
	Stats    StatsRepository
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Room:     NewRoomRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Stats:    NewStatsRepository(db, log),
	}
}

// Store hands out repositories scoped to a single pooled connection.
// The connection is released when fn returns, whatever the outcome.
type Store interface {
	Do(ctx context.Context, fn func(repo *Repository) error) error
}

type store struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStore(db database.PgxIface, log *zap.Logger) Store {
	return &store{
		db:  db,
		log: log,
	}
}

func (s *store) Do(ctx context.Context, fn func(repo *Repository) error) error {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		s.log.Error("Failed to acquire connection", zap.Error(err))
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(NewRepository(conn, s.log))
}
