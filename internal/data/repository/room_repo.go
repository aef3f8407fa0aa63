package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	// FindCatalog lists rooms cheapest first, optionally limited to one category code.
	FindCatalog(ctx context.Context, categoryCode *string) ([]*entity.Room, error)
	// FindAll lists every room ordered by id.
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindPriceByID(ctx context.Context, id int64) (*float64, error)
	Create(ctx context.Context, room *entity.Room) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status entity.RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

type roomRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomRepository(db database.Querier, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomSelect = `
	SELECT r.id, r.category_id, r.name, r.price_per_night, r.area, r.max_guests,
	       r.description, r.features, r.image_url, r.status,
	       rc.code AS category_code, rc.name AS category_name
	FROM rooms r
	LEFT JOIN room_categories rc ON r.category_id = rc.id
`

func (r *roomRepository) FindCatalog(ctx context.Context, categoryCode *string) ([]*entity.Room, error) {
	query := roomSelect + ` ORDER BY r.price_per_night ASC`
	args := []any{}

	if categoryCode != nil {
		query = roomSelect + ` WHERE rc.code = $1 ORDER BY r.price_per_night ASC`
		args = append(args, *categoryCode)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find room catalog",
			zap.Error(err),
			zap.Stringp("category", categoryCode),
		)
		return nil, fmt.Errorf("find room catalog: %w", err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	rows, err := r.db.Query(ctx, roomSelect+` ORDER BY r.id`)
	if err != nil {
		r.log.Error("Failed to find all rooms", zap.Error(err))
		return nil, fmt.Errorf("find all rooms: %w", err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

func (r *roomRepository) scanRooms(rows pgx.Rows) ([]*entity.Room, error) {
	rooms := []*entity.Room{}
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.CategoryID,
			&room.Name,
			&room.PricePerNight,
			&room.Area,
			&room.MaxGuests,
			&room.Description,
			&room.Features,
			&room.ImageURL,
			&room.Status,
			&room.CategoryCode,
			&room.CategoryName,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

// FindPriceByID returns nil when the room does not exist.
func (r *roomRepository) FindPriceByID(ctx context.Context, id int64) (*float64, error) {
	query := `SELECT price_per_night FROM rooms WHERE id = $1`

	var price float64
	err := r.db.QueryRow(ctx, query, id).Scan(&price)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room price",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room %d price: %w", id, err)
	}

	return &price, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) (int64, error) {
	query := `
		INSERT INTO rooms
		(name, category_id, price_per_night, area, max_guests, description, features, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		room.Name,
		room.CategoryID,
		room.PricePerNight,
		room.Area,
		room.MaxGuests,
		room.Description,
		room.Features,
		room.ImageURL,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return 0, fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return id, nil
}

// UpdateStatus does not check that the room exists.
func (r *roomRepository) UpdateStatus(ctx context.Context, id int64, status entity.RoomStatus) error {
	query := `
		UPDATE rooms
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.Int64("room_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %d status to %s: %w", id, status, err)
	}

	return nil
}

// Delete is a no-op for unknown ids.
func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, err)
	}

	r.log.Info("Room deleted",
		zap.Int64("room_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}
