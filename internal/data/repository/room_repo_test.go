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

var roomColumns = []string{
	"id", "category_id", "name", "price_per_night", "area", "max_guests",
	"description", "features", "image_url", "status", "category_code", "category_name",
}

func ptr[T any](v T) *T {
	return &v
}

func newMockConn(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock
}

func TestRoomFindCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("all categories", func(t *testing.T) {
		mock := newMockConn(t)
		repo := NewRoomRepository(mock, zap.NewNop())

		rows := pgxmock.NewRows(roomColumns).
			AddRow(int64(2), ptr(int64(1)), "Standard", 80.0, ptr(18.0), ptr(2),
				ptr(""), []string{}, ptr(""), entity.RoomStatusAvailable, ptr("standard"), ptr("Standard")).
			AddRow(int64(1), (*int64)(nil), "Loft", 150.0, (*float64)(nil), (*int)(nil),
				(*string)(nil), []string{"wifi"}, (*string)(nil), entity.RoomStatus("maintenance"), (*string)(nil), (*string)(nil))

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.price_per_night ASC")).WillReturnRows(rows)

		rooms, err := repo.FindCatalog(ctx, nil)
		require.NoError(t, err)

		require.Len(t, rooms, 2)
		assert.Equal(t, "Standard", rooms[0].Name)
		assert.Equal(t, 18.0, *rooms[0].Area)
		assert.Equal(t, "standard", *rooms[0].CategoryCode)
		assert.Nil(t, rooms[1].CategoryID)
		assert.Nil(t, rooms[1].CategoryCode)
		assert.Equal(t, entity.RoomStatus("maintenance"), rooms[1].Status)
		assert.Equal(t, []string{"wifi"}, rooms[1].Features)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one category", func(t *testing.T) {
		mock := newMockConn(t)
		repo := NewRoomRepository(mock, zap.NewNop())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE rc.code = $1 ORDER BY r.price_per_night ASC")).
			WithArgs("suite").
			WillReturnRows(pgxmock.NewRows(roomColumns))

		rooms, err := repo.FindCatalog(ctx, ptr("suite"))
		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query fault", func(t *testing.T) {
		mock := newMockConn(t)
		repo := NewRoomRepository(mock, zap.NewNop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM rooms r")).WillReturnError(errors.New("timeout"))

		_, err := repo.FindCatalog(ctx, nil)
		assert.ErrorContains(t, err, "find room catalog")
	})
}

func TestRoomFindAll(t *testing.T) {
	mock := newMockConn(t)
	repo := NewRoomRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.id")).
		WillReturnRows(pgxmock.NewRows(roomColumns).
			AddRow(int64(1), ptr(int64(3)), "Deluxe", 150.0, ptr(32.5), ptr(3),
				ptr("Sea view"), []string{"wifi"}, ptr("/img/1.jpg"), entity.RoomStatusOccupied, ptr("deluxe"), ptr("Deluxe")))

	rooms, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	require.Len(t, rooms, 1)
	assert.Equal(t, entity.RoomStatusOccupied, rooms[0].Status)
	assert.Equal(t, 3, *rooms[0].MaxGuests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomFindPriceByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMockConn(t)
		repo := NewRoomRepository(mock, zap.NewNop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT price_per_night FROM rooms WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"price_per_night"}).AddRow(100.0))

		price, err := repo.FindPriceByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, price)
		assert.Equal(t, 100.0, *price)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockConn(t)
		repo := NewRoomRepository(mock, zap.NewNop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT price_per_night FROM rooms WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"price_per_night"}))

		price, err := repo.FindPriceByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, price)
	})
}

func TestRoomCreate(t *testing.T) {
	mock := newMockConn(t)
	repo := NewRoomRepository(mock, zap.NewNop())

	room := &entity.Room{
		CategoryID:    ptr(int64(4)),
		Name:          "Sea View",
		PricePerNight: 120,
		MaxGuests:     ptr(2),
		Description:   ptr(""),
		Features:      []string{},
		ImageURL:      ptr(""),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms")).
		WithArgs("Sea View", room.CategoryID, 120.0, room.Area, room.MaxGuests, room.Description, room.Features, room.ImageURL).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.Create(context.Background(), room)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomUpdateStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	mock := newMockConn(t)
	repo := NewRoomRepository(mock, zap.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms")).
		WithArgs(entity.RoomStatus("occupied"), int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.UpdateStatus(ctx, 3, entity.RoomStatusOccupied))
	require.NoError(t, repo.Delete(ctx, 999))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryFindByCode(t *testing.T) {
	ctx := context.Background()
	mock := newMockConn(t)
	repo := NewCategoryRepository(mock, zap.NewNop())

	query := regexp.QuoteMeta("SELECT id, code, name FROM room_categories WHERE code = $1")
	mock.ExpectQuery(query).
		WithArgs("deluxe").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name"}).AddRow(int64(4), "deluxe", "Deluxe"))
	mock.ExpectQuery(query).
		WithArgs("penthouse").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name"}))

	category, err := repo.FindByCode(ctx, "deluxe")
	require.NoError(t, err)
	assert.Equal(t, &entity.RoomCategory{ID: 4, Code: "deluxe", Name: "Deluxe"}, category)

	category, err = repo.FindByCode(ctx, "penthouse")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
