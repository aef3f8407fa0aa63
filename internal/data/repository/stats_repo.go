package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type StatsRepository interface {
	Collect(ctx context.Context) (*entity.Stats, error)
}

type statsRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStatsRepository(db database.Querier, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

// Collect runs each aggregate as its own statement; the figures are not a consistent snapshot.
func (r *statsRepository) Collect(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats

	counters := []struct {
		name  string
		query string
		args  []any
		dest  *int64
	}{
		{"total_rooms", `SELECT COUNT(*) FROM rooms`, nil, &stats.TotalRooms},
		{"available_rooms", `SELECT COUNT(*) FROM rooms WHERE status = $1`,
			[]any{string(entity.RoomStatusAvailable)}, &stats.AvailableRooms},
		{"occupied_rooms", `SELECT COUNT(*) FROM rooms WHERE status = $1`,
			[]any{string(entity.RoomStatusOccupied)}, &stats.OccupiedRooms},
		{"total_bookings", `SELECT COUNT(*) FROM bookings`, nil, &stats.TotalBookings},
		{"pending_bookings", `SELECT COUNT(*) FROM bookings WHERE status = $1`,
			[]any{string(entity.BookingStatusPending)}, &stats.PendingBookings},
	}

	for _, c := range counters {
		if err := r.db.QueryRow(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			r.log.Error("Failed to count", zap.Error(err), zap.String("counter", c.name))
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	revenueQuery := `SELECT COALESCE(SUM(total_price), 0)::float8 FROM bookings WHERE status != $1`
	err := r.db.QueryRow(ctx, revenueQuery, string(entity.BookingStatusCancelled)).Scan(&stats.Revenue)
	if err != nil {
		r.log.Error("Failed to sum revenue", zap.Error(err))
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	categories, err := r.countByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.Categories = categories

	return &stats, nil
}

func (r *statsRepository) countByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	query := `
		SELECT rc.name, rc.code, COUNT(r.id) AS count
		FROM room_categories rc
		LEFT JOIN rooms r ON r.category_id = rc.id
		GROUP BY rc.id, rc.name, rc.code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count rooms by category", zap.Error(err))
		return nil, fmt.Errorf("count rooms by category: %w", err)
	}
	defer rows.Close()

	counts := []entity.CategoryCount{}
	for rows.Next() {
		var c entity.CategoryCount
		if err := rows.Scan(&c.Name, &c.Code, &c.Count); err != nil {
			r.log.Error("Failed to scan category count row", zap.Error(err))
			return nil, fmt.Errorf("scan category count row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category count rows: %w", err)
	}

	return counts, nil
}
