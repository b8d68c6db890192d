package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/placeholder/pkg/adapters/memory"
	"github.com/aretw0/placeholder/pkg/adapters/redis"
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *memory.Source, *redis.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	src := memory.NewSourceFrom(ports.ContractDataset())
	return mr, src, redis.NewFromClient(src, client, opts...)
}

func TestCache_Contract(t *testing.T) {
	_, _, cache := setup(t)
	ports.RunDataSourceContract(t, cache)
}

func TestCache_ServesSecondFetchFromRedis(t *testing.T) {
	mr, src, cache := setup(t)
	ctx := context.Background()

	first, err := cache.FetchCollection(ctx, domain.ResourcePosts, domain.ByUser(1))
	require.NoError(t, err)
	second, err := cache.FetchCollection(ctx, domain.ResourcePosts, domain.ByUser(1))
	require.NoError(t, err)

	assert.Len(t, src.Calls(), 1, "second fetch should not reach the source")
	assert.Len(t, second, len(first))
	assert.True(t, mr.Exists("placeholder:collection:posts:userId=1"))
}

func TestCache_DoesNotCacheFailures(t *testing.T) {
	mr, src, cache := setup(t)
	ctx := context.Background()
	boom := errors.New("boom")

	src.FailOn(domain.ResourceTodos, boom)
	_, err := cache.FetchCollection(ctx, domain.ResourceTodos, domain.ByUser(1))
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("placeholder:collection:todos:userId=1"))

	src.FailOn(domain.ResourceTodos, nil)
	todos, err := cache.FetchCollection(ctx, domain.ResourceTodos, domain.ByUser(1))
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestCache_TTL_Expiration(t *testing.T) {
	mr, src, cache := setup(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	_, err := cache.FetchCollection(ctx, domain.ResourceUsers, domain.Filter{})
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = cache.FetchCollection(ctx, domain.ResourceUsers, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, src.Calls(), 2)
}

func TestCache_Invalidate(t *testing.T) {
	mr, src, cache := setup(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	_, err := cache.FetchCollection(ctx, domain.ResourceComments, domain.ByPost(1))
	require.NoError(t, err)
	require.True(t, mr.Exists("test:comments:postId=1"))

	require.NoError(t, cache.Invalidate(ctx, domain.ResourceComments, domain.ByPost(1)))
	assert.False(t, mr.Exists("test:comments:postId=1"))

	_, err = cache.FetchCollection(ctx, domain.ResourceComments, domain.ByPost(1))
	require.NoError(t, err)
	assert.Len(t, src.Calls(), 2)
}

func TestCache_CorruptEntryFallsBack(t *testing.T) {
	mr, src, cache := setup(t)
	require.NoError(t, mr.Set("placeholder:collection:users:all", "{not json"))

	users, err := cache.FetchCollection(context.Background(), domain.ResourceUsers, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Len(t, src.Calls(), 1)
}

func TestCache_RedisDownFallsBack(t *testing.T) {
	mr, src, cache := setup(t)
	mr.Close()

	users, err := cache.FetchCollection(context.Background(), domain.ResourceUsers, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Len(t, src.Calls(), 1)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := redis.New(memory.NewSource(), "not-a-url")
	assert.Error(t, err)
}
