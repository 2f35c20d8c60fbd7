package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kvStore interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

func exerciseStore(t *testing.T, s kvStore) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Get(ctx, "zakayo-user:abc")
	require.NoError(t, err)
	assert.Nil(t, got, "clave ausente debe devolver nil sin error")

	require.NoError(t, s.Put(ctx, "zakayo-user:abc", []byte(`{"id":1}`), time.Hour))
	got, err = s.Get(ctx, "zakayo-user:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(got))

	require.NoError(t, s.Put(ctx, "zakayo-user:abc", []byte(`{"id":2}`), time.Hour))
	got, _ = s.Get(ctx, "zakayo-user:abc")
	assert.Equal(t, `{"id":2}`, string(got), "Put es un upsert")

	require.NoError(t, s.Delete(ctx, "zakayo-user:abc"))
	got, err = s.Get(ctx, "zakayo-user:abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Delete(ctx, "zakayo-user:abc"), "borrar dos veces no es error")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_Expira(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(context.Background(), "k", []byte("v"), time.Minute))
	now = now.Add(59 * time.Second)
	got, _ := s.Get(context.Background(), "k")
	assert.Equal(t, "v", string(got))

	now = now.Add(time.Second)
	got, _ = s.Get(context.Background(), "k")
	assert.Nil(t, got)
}

func TestMemoryStore_ExpiradaNoBorraRenovacionConcurrente(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	require.NoError(t, s.Put(ctx, "k", []byte("viejo"), time.Minute))
	now = now.Add(time.Hour)

	// Renueva la clave justo después de que Get la leyó vencida y soltó el RLock.
	renewed := false
	s.now = func() time.Time {
		if !renewed {
			renewed = true
			require.NoError(t, s.Put(ctx, "k", []byte("nuevo"), 0))
		}
		return now
	}
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.True(t, renewed)

	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "nuevo", string(got))
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, NewRedisStore(client))
}

func TestRedisStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := NewRedisStore(client)

	require.NoError(t, s.Put(context.Background(), "zakayo-user", []byte("v"), 8*time.Hour))
	assert.Equal(t, 8*time.Hour, mr.TTL("zakayo-user"))

	mr.FastForward(9 * time.Hour)
	got, err := s.Get(context.Background(), "zakayo-user")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := DialRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = DialRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
