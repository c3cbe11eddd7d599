package views

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	results []string
}

func (r *recorder) ObserveCacheLookup(view string, result string) {
	r.results = append(r.results, view+":"+result)
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis, *recorder) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	rec := &recorder{}
	return NewCache(client, time.Minute, rec), mr, rec
}

func TestCache_SetGet(t *testing.T) {
	cache, mr, rec := newCache(t)
	ctx := context.Background()

	var got payload
	hit, version, err := cache.Get(ctx, Bookings, "user-1:2024-01-01", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, version)

	require.NoError(t, cache.Set(ctx, Bookings, "user-1:2024-01-01", version, payload{Name: "a", Count: 2}))

	hit, _, err = cache.Get(ctx, Bookings, "user-1:2024-01-01", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "a", Count: 2}, got)

	assert.Equal(t, time.Minute, mr.TTL(viewKey(Bookings)))
	assert.Equal(t, []string{"/bookings:miss", "/bookings:hit"}, rec.results)
}

func TestCache_InvalidateDropsAllScopes(t *testing.T) {
	cache, mr, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, Bookings, "user-1", 0, payload{Name: "a"}))
	require.NoError(t, cache.Set(ctx, Bookings, "user-2", 0, payload{Name: "b"}))
	require.NoError(t, cache.Set(ctx, AdminCourts, "all", 0, payload{Name: "c"}))

	require.NoError(t, cache.Invalidate(ctx, Bookings, Admin))

	assert.False(t, mr.Exists(viewKey(Bookings)))
	assert.True(t, mr.Exists(viewKey(AdminCourts)))

	version, err := mr.Get(versionKey(Bookings))
	require.NoError(t, err)
	assert.Equal(t, "1", version)
	assert.False(t, mr.Exists(versionKey(AdminCourts)))
}

func TestCache_SetAfterInvalidateIsDropped(t *testing.T) {
	cache, mr, rec := newCache(t)
	ctx := context.Background()

	// Читатель промахнулся и ушёл в БД
	var got payload
	hit, readVersion, err := cache.Get(ctx, Bookings, "user-1", &got)
	require.NoError(t, err)
	require.False(t, hit)

	// Пока он читал, изменение закоммитилось и сбросило представление
	require.NoError(t, cache.Invalidate(ctx, Bookings))

	// Устаревший снимок не должен попасть в кэш
	require.NoError(t, cache.Set(ctx, Bookings, "user-1", readVersion, payload{Name: "old"}))
	assert.False(t, mr.Exists(viewKey(Bookings)))
	assert.Contains(t, rec.results, "/bookings:stale")

	// Следующее чтение видит новую версию и может закэшировать свежие данные
	hit, freshVersion, err := cache.Get(ctx, Bookings, "user-1", &got)
	require.NoError(t, err)
	require.False(t, hit)
	assert.Equal(t, readVersion+1, freshVersion)

	require.NoError(t, cache.Set(ctx, Bookings, "user-1", freshVersion, payload{Name: "new"}))
	hit, _, err = cache.Get(ctx, Bookings, "user-1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "new"}, got)
}

func TestCache_InvalidateOtherViewKeepsWrite(t *testing.T) {
	cache, _, _ := newCache(t)
	ctx := context.Background()

	var got payload
	_, version, err := cache.Get(ctx, AdminCourts, "all", &got)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, Bookings))
	require.NoError(t, cache.Set(ctx, AdminCourts, "all", version, payload{Name: "courts"}))

	hit, _, err := cache.Get(ctx, AdminCourts, "all", &got)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_InvalidateNothing(t *testing.T) {
	cache, _, _ := newCache(t)
	assert.NoError(t, cache.Invalidate(context.Background()))
}

func TestCache_GetRedisDown(t *testing.T) {
	cache, mr, rec := newCache(t)
	mr.Close()

	var got payload
	hit, _, err := cache.Get(context.Background(), Admin, "all", &got)

	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrCacheRead)
	assert.Equal(t, []string{"/admin:error"}, rec.results)
}

func TestCache_CorruptedEntry(t *testing.T) {
	cache, mr, _ := newCache(t)
	mr.HSet(viewKey(Admin), "all", "{not json")

	var got payload
	hit, _, err := cache.Get(context.Background(), Admin, "all", &got)

	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrCodec)
}

func TestNoop(t *testing.T) {
	var n Noop
	var got payload

	hit, version, err := n.Get(context.Background(), Admin, "all", &got)
	assert.False(t, hit)
	assert.Zero(t, version)
	assert.NoError(t, err)
	assert.NoError(t, n.Set(context.Background(), Admin, "all", version, got))
	assert.NoError(t, n.Invalidate(context.Background(), Admin))
}
