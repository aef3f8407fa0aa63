package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.RoomCategory, error)
}

type categoryRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCategoryRepository(db database.Querier, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

// FindByCode returns nil when no category has that code.
func (r *categoryRepository) FindByCode(ctx context.Context, code string) (*entity.RoomCategory, error) {
	query := `SELECT id, code, name FROM room_categories WHERE code = $1`

	var category entity.RoomCategory
	err := r.db.QueryRow(ctx, query, code).Scan(
		&category.ID,
		&category.Code,
		&category.Name,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find category by code %s: %w", code, err)
	}

	return &category, nil
}
