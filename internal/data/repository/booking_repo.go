package repository

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error)
	// Create inserts booking and reads back its id and the total as stored.
	Create(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT b.id, b.room_id, b.user_id, b.check_in, b.check_out, b.guests_count,
		       b.total_price, b.status, b.guest_name, b.guest_email, b.guest_phone,
		       b.notes, b.created_at,
		       r.name AS room_name, r.image_url AS room_image
		FROM bookings b
		LEFT JOIN rooms r ON b.room_id = r.id
		WHERE 1=1
	`)

	args := []any{}
	argCount := 1

	if filter.UserID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.user_id = $%d", argCount))
		args = append(args, *filter.UserID)
		argCount++
	}

	if filter.Status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY b.created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int64p("user_id", filter.UserID),
			zap.Stringp("status", filter.Status),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.UserID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.GuestsCount,
			&booking.TotalPrice,
			&booking.Status,
			&booking.GuestName,
			&booking.GuestEmail,
			&booking.GuestPhone,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.RoomName,
			&booking.RoomImage,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings
		(room_id, check_in, check_out, guests_count, total_price,
		 guest_name, guest_email, guest_phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, total_price::float8
	`

	err := r.db.QueryRow(ctx, query,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.GuestsCount,
		booking.TotalPrice,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.Notes,
		booking.Status,
	).Scan(&booking.ID, &booking.TotalPrice)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("room_id", booking.RoomID),
			zap.String("guest_email", booking.GuestEmail),
		)
		return fmt.Errorf("create booking for room %d: %w", booking.RoomID, err)
	}

	return nil
}

// UpdateStatus stores status verbatim and does not check that the booking exists.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %d status to %s: %w", id, status, err)
	}

	return nil
}

// Delete is a no-op for unknown ids.
func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	r.log.Info("Booking deleted",
		zap.Int64("booking_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}
