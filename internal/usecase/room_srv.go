package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"go.uber.org/zap"
)

// CategoryAll disables the category filter of the catalog
const CategoryAll = "all"

type RoomService interface {
	ListRooms(ctx context.Context, category string) (*response.CatalogResponse, error)
}

type roomService struct {
	store repository.Store
	log   *zap.Logger
}

func NewRoomService(store repository.Store, log *zap.Logger) RoomService {
	return &roomService{
		store: store,
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRooms(ctx context.Context, category string) (*response.CatalogResponse, error) {
	var filter *string
	if category != CategoryAll {
		filter = &category
	}

	var rooms []*entity.Room
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		var err error
		rooms, err = repo.Room.FindCatalog(ctx, filter)
		return err
	})
	if err != nil {
		s.log.Error("Failed to list rooms",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	result := make([]response.CatalogRoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = response.RoomToCatalogResponse(room)
	}

	s.log.Info("Rooms retrieved",
		zap.String("category", category),
		zap.Int("count", len(result)),
	)

	return &response.CatalogResponse{Rooms: result}, nil
}
