package usecase

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListRooms(t *testing.T) {
	ctx := context.Background()
	rooms := []*entity.Room{
		{
			Base:          entity.Base{ID: 2},
			Name:          "Standard",
			PricePerNight: 80,
			Status:        entity.RoomStatusAvailable,
			CategoryCode:  ptr("standard"),
			CategoryName:  ptr("Standard"),
		},
		{
			Base:          entity.Base{ID: 1},
			Name:          "Deluxe",
			PricePerNight: 150,
			Features:      []string{"wifi", "balcony"},
			Status:        entity.RoomStatusOccupied,
		},
	}

	tests := []struct {
		name     string
		category string
		filter   *string
	}{
		{"all categories", "all", nil},
		{"empty code is a filter", "", ptr("")},
		{"one category", "deluxe", ptr("deluxe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewRoomService(store, zap.NewNop())

			store.room.On("FindCatalog", ctx, tt.filter).Return(rooms, nil)

			resp, err := svc.ListRooms(ctx, tt.category)
			require.NoError(t, err)

			require.Len(t, resp.Rooms, 2)
			assert.Equal(t, "Standard", resp.Rooms[0].Name)
			assert.Equal(t, "standard", *resp.Rooms[0].Category)
			assert.Equal(t, []string{}, resp.Rooms[0].Features)
			assert.Equal(t, []string{"wifi", "balcony"}, resp.Rooms[1].Features)
			assert.Nil(t, resp.Rooms[1].Category)
			store.assertExpectations(t)
		})
	}
}

func TestListRoomsUnknownCategoryIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewRoomService(store, zap.NewNop())

	store.room.On("FindCatalog", ctx, ptr("penthouse")).Return([]*entity.Room{}, nil)

	resp, err := svc.ListRooms(ctx, "penthouse")
	require.NoError(t, err)
	assert.NotNil(t, resp.Rooms)
	assert.Empty(t, resp.Rooms)
}

func TestListRoomsStoreFault(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewRoomService(store, zap.NewNop())

	store.room.On("FindCatalog", ctx, (*string)(nil)).Return(nil, errors.New("relation \"rooms\" does not exist"))

	_, err := svc.ListRooms(ctx, "all")
	assert.ErrorContains(t, err, "list rooms")
}
