package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-admin/pkg/clients"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := clients.WrapRedisClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCacheRepo(client, converter.NewProductConverterImpl(), &cfg.RedisCfg{ProductTTL: time.Minute}, logger.NewNopLogger())
	return repo, mr
}

func pen() domain.Product {
	return domain.Product{
		ID:        "1",
		Name:      "Pen",
		Price:     1000,
		Stock:     10,
		Discounts: []domain.DiscountTier{{Quantity: 10, Rate: 0.1}},
	}
}

func TestCacheRepo_SetThenGet(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetProducts(ctx, []domain.Product{pen()}))

	got, err := repo.GetProducts(ctx, []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Product{"1": pen()}, got)

	assert.Equal(t, time.Minute, mr.TTL("product:1"))
}

func TestCacheRepo_DeleteProducts(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SetProducts(ctx, []domain.Product{pen()}))

	require.NoError(t, repo.DeleteProducts(ctx, []string{"1"}))

	assert.False(t, mr.Exists("product:1"))
	require.NoError(t, repo.DeleteProducts(ctx, nil))
}

func TestCacheRepo_IDMismatchIsEvicted(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("product:2", `{"id":"1","name":"Pen"}`))

	got, err := repo.GetProducts(context.Background(), []string{"2"})
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.False(t, mr.Exists("product:2"))
}

func TestCacheRepo_CorruptedValueIsMiss(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("product:1", "not-json"))

	got, err := repo.GetProducts(context.Background(), []string{"1"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepo_ServerDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.GetProducts(context.Background(), []string{"1"})
	assert.Error(t, err)
	assert.Error(t, repo.DeleteProducts(context.Background(), []string{"1"}))
}

func TestRedisValueToBytes(t *testing.T) {
	b, err := redisValueToBytes("x", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), b)

	b, err = redisValueToBytes(nil, "k")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = redisValueToBytes(42, "k")
	assert.ErrorIs(t, err, e.ErrUnexpectedCacheValue)
}
