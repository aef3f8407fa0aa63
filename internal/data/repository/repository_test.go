package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hotel-booking/pkg/database"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePool hands out the mocked connection and records releases
type fakePool struct {
	pgxmock.PgxConnIface
	acquireErr error
	acquired   int
	released   int
}

type fakeConn struct {
	pgxmock.PgxConnIface
	pool *fakePool
}

func (c *fakeConn) Release() {
	c.pool.released++
}

func (p *fakePool) Acquire(ctx context.Context) (database.Conn, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return &fakeConn{PgxConnIface: p.PgxConnIface, pool: p}, nil
}

func (p *fakePool) Close() {}

func TestStoreReleasesConnection(t *testing.T) {
	ctx := context.Background()
	mock := newMockConn(t)
	pool := &fakePool{PgxConnIface: mock}
	store := NewStore(pool, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT price_per_night FROM rooms")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"price_per_night"}).AddRow(100.0))

	var price *float64
	err := store.Do(ctx, func(repo *Repository) error {
		var err error
		price, err = repo.Room.FindPriceByID(ctx, 1)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, *price)

	boom := errors.New("boom")
	err = store.Do(ctx, func(repo *Repository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 2, pool.acquired)
	assert.Equal(t, 2, pool.released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreAcquireFailure(t *testing.T) {
	pool := &fakePool{acquireErr: errors.New("too many clients")}
	store := NewStore(pool, zap.NewNop())

	called := false
	err := store.Do(context.Background(), func(repo *Repository) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "acquire connection")
	assert.False(t, called)
	assert.Zero(t, pool.released)
}
