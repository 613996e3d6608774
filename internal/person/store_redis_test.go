//go:build integration

package person

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journalforing/pkg/platform/sentinel"
	"journalforing/pkg/testutil/containers"
)

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	t.Cleanup(func() {
		_ = rc.Client.Close()
		_ = rc.Container.Terminate(ctx)
	})

	fd := time.Date(1956, 3, 15, 0, 0, 0, 0, time.UTC)
	p := &Person{Fnr: "15035612480", AktoerID: "2000001", Foedselsdato: &fd, Bostedsland: LandkodeNorge}

	t.Run("round trip", func(t *testing.T) {
		cache := NewRedisCache(rc.Client, time.Minute)
		require.NoError(t, cache.Save(ctx, p.Fnr, p))

		got, err := cache.Find(ctx, p.Fnr)
		require.NoError(t, err)
		assert.Equal(t, p.AktoerID, got.AktoerID)
		assert.Equal(t, p.Bostedsland, got.Bostedsland)
		require.NotNil(t, got.Foedselsdato)
		assert.True(t, fd.Equal(*got.Foedselsdato))
	})

	t.Run("miss", func(t *testing.T) {
		cache := NewRedisCache(rc.Client, time.Minute)
		_, err := cache.Find(ctx, "01019012480")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		cache := NewRedisCache(rc.Client, 50*time.Millisecond)
		require.NoError(t, cache.Save(ctx, p.Fnr, p))

		require.Eventually(t, func() bool {
			_, err := cache.Find(ctx, p.Fnr)
			return err != nil
		}, 2*time.Second, 25*time.Millisecond)
	})

	t.Run("nil person is not stored", func(t *testing.T) {
		cache := NewRedisCache(rc.Client, time.Minute)
		require.NoError(t, cache.Save(ctx, "tom", nil))
		_, err := cache.Find(ctx, "tom")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
