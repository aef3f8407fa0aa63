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

const defaultMaxGuests = 2

type AdminService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	ListRooms(ctx context.Context) (*response.AdminRoomsResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomCreatedResponse, error)
	UpdateRoomStatus(ctx context.Context, req *request.UpdateRoomRequest) error
	DeleteRoom(ctx context.Context, req *request.DeleteRoomRequest) error
}

type adminService struct {
	store repository.Store
	log   *zap.Logger
}

func NewAdminService(store repository.Store, log *zap.Logger) AdminService {
	return &adminService{
		store: store,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	var stats *entity.Stats
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		var err error
		stats, err = repo.Stats.Collect(ctx)
		return err
	})
	if err != nil {
		s.log.Error("Failed to collect stats", zap.Error(err))
		return nil, fmt.Errorf("get stats: %w", err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}

func (s *adminService) ListRooms(ctx context.Context) (*response.AdminRoomsResponse, error) {
	var rooms []*entity.Room
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		var err error
		rooms, err = repo.Room.FindAll(ctx)
		return err
	})
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list admin rooms: %w", err)
	}

	result := make([]response.AdminRoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = response.RoomToAdminResponse(room)
	}

	return &response.AdminRoomsResponse{Rooms: result}, nil
}

func (s *adminService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed",
			zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, apperror.Validation("Missing required fields")
	}

	maxGuests := defaultMaxGuests
	if req.MaxGuests != nil {
		maxGuests = *req.MaxGuests
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	imageURL := ""
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}
	features := req.Features
	if features == nil {
		features = []string{}
	}

	room := &entity.Room{
		Name:          req.Name,
		PricePerNight: req.Price,
		Area:          req.Area,
		MaxGuests:     &maxGuests,
		Description:   &description,
		Features:      features,
		ImageURL:      &imageURL,
	}

	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		category, err := repo.Category.FindByCode(ctx, req.Category)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.Validation("Invalid category")
		}

		room.CategoryID = &category.ID
		room.ID, err = repo.Room.Create(ctx, room)
		return err
	})
	if err != nil {
		if appErr, ok := apperror.As(err); ok {
			s.log.Warn("Create room rejected",
				zap.String("reason", appErr.Message),
				zap.String("category", req.Category),
			)
			return nil, err
		}
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create room: %w", err)
	}

	metrics.IncRoomCreated()

	s.log.Info("Room created",
		zap.Int64("room_id", room.ID),
		zap.String("name", room.Name),
		zap.String("category", req.Category),
	)

	return &response.RoomCreatedResponse{
		Message: "Room created successfully",
		RoomID:  room.ID,
	}, nil
}

func (s *adminService) UpdateRoomStatus(ctx context.Context, req *request.UpdateRoomRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("Missing roomId or status")
	}

	status := entity.RoomStatus(req.Status)
	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		return repo.Room.UpdateStatus(ctx, req.RoomID, status)
	})
	if err != nil {
		return fmt.Errorf("update room %d: %w", req.RoomID, err)
	}

	s.log.Info("Room status updated",
		zap.Int64("room_id", req.RoomID),
		zap.String("status", req.Status),
	)
	return nil
}

func (s *adminService) DeleteRoom(ctx context.Context, req *request.DeleteRoomRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("Missing roomId")
	}

	err := s.store.Do(ctx, func(repo *repository.Repository) error {
		return repo.Room.Delete(ctx, req.RoomID)
	})
	if err != nil {
		return fmt.Errorf("delete room %d: %w", req.RoomID, err)
	}

	return nil
}
