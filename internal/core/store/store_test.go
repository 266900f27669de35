package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put(ctx, "k1", []byte(`{"balance":"100"}`)))
	v, ok, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"balance":"100"}`, string(v))

	require.NoError(t, s.Delete(ctx, "k1"))
	_, ok, err = s.Get(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_PutCopiesBytes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte("hello")
	require.NoError(t, s.Put(ctx, "k", original))
	original[0] = 'x'

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello", string(v))
}

func setupGormTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	return db
}

func TestGormStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	db := setupGormTestDB(t)

	s, err := NewGormStore(db, zap.NewNop())
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "snap-1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put(ctx, "snap-1", []byte(`{"balance":"500"}`)))
	v, ok, err := s.Get(ctx, "snap-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"balance":"500"}`, string(v))

	require.NoError(t, s.Put(ctx, "snap-1", []byte(`{"balance":"600"}`)))
	v, ok, err = s.Get(ctx, "snap-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"balance":"600"}`, string(v))

	require.NoError(t, s.Delete(ctx, "snap-1"))
	_, ok, err = s.Get(ctx, "snap-1")
	require.NoError(t, err)
	require.False(t, ok)
}
