package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func expectCount(mock pgxmock.PgxConnIface, query string, n int64, args ...any) {
	expect := mock.ExpectQuery(regexp.QuoteMeta(query))
	if len(args) > 0 {
		expect = expect.WithArgs(args...)
	}
	expect.WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(n))
}

func TestStatsCollect(t *testing.T) {
	mock := newMockConn(t)
	repo := NewStatsRepository(mock, zap.NewNop())

	expectCount(mock, "SELECT COUNT(*) FROM rooms", 3)
	expectCount(mock, "SELECT COUNT(*) FROM rooms WHERE status = $1", 2, "available")
	expectCount(mock, "SELECT COUNT(*) FROM rooms WHERE status = $1", 1, "occupied")
	expectCount(mock, "SELECT COUNT(*) FROM bookings", 4)
	expectCount(mock, "SELECT COUNT(*) FROM bookings WHERE status = $1", 1, "pending")
	mock.ExpectQuery(regexp.QuoteMeta("SUM(total_price)")).
		WithArgs("cancelled").
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(750.5))
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN rooms r ON r.category_id = rc.id")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "code", "count"}).
			AddRow("Deluxe", "deluxe", int64(2)).
			AddRow("Suite", "suite", int64(0)))

	stats, err := repo.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &entity.Stats{
		TotalRooms:      3,
		AvailableRooms:  2,
		OccupiedRooms:   1,
		TotalBookings:   4,
		PendingBookings: 1,
		Revenue:         750.5,
		Categories: []entity.CategoryCount{
			{Name: "Deluxe", Code: "deluxe", Count: 2},
			{Name: "Suite", Code: "suite", Count: 0},
		},
	}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCollectEmptyStore(t *testing.T) {
	mock := newMockConn(t)
	repo := NewStatsRepository(mock, zap.NewNop())

	for i := 0; i < 5; i++ {
		expectCount(mock, "SELECT COUNT(*)", 0)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SUM(total_price)")).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(0.0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM room_categories rc")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "code", "count"}))

	stats, err := repo.Collect(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRooms)
	assert.Zero(t, stats.Revenue)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
}

func TestStatsCollectStopsOnFault(t *testing.T) {
	mock := newMockConn(t)
	repo := NewStatsRepository(mock, zap.NewNop())

	expectCount(mock, "SELECT COUNT(*) FROM rooms", 3)
	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE status = $1")).WillReturnError(errors.New("conn busy"))

	_, err := repo.Collect(context.Background())
	assert.ErrorContains(t, err, "count available_rooms")
}
