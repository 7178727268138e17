package routing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingPartners struct {
	partners []*types.CrisisPartner
	err      error
	calls    int
}

func (s *countingPartners) GetActivePartners(_ context.Context) ([]*types.CrisisPartner, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.partners, nil
}

func setupPartnerCache(t *testing.T, source routing.PartnerSource) (*routing.CachedPartnerSource, *miniredis.Miniredis) {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		mr.Close()
		client.Close()
	})

	return routing.NewCachedPartnerSource(source, client, 5*time.Minute, zap.NewNop()), mr
}

func TestCachedPartnerSource(t *testing.T) {
	t.Parallel()

	t.Run("Repeated reads hit the cache", func(t *testing.T) {
		t.Parallel()

		source := &countingPartners{partners: []*types.CrisisPartner{
			partner("partner-1", "US", 1, "crisis_counseling"),
			partner("partner-2", "GB", 2, "self_harm_response"),
		}}
		cache, _ := setupPartnerCache(t, source)
		ctx := t.Context()

		first, err := cache.GetActivePartners(ctx)
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, 1, source.calls)

		second, err := cache.GetActivePartners(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, source.calls)
	})

	t.Run("Invalidate forces a refresh", func(t *testing.T) {
		t.Parallel()

		source := &countingPartners{partners: []*types.CrisisPartner{
			partner("partner-1", "US", 1, "crisis_counseling"),
		}}
		cache, _ := setupPartnerCache(t, source)
		ctx := t.Context()

		_, err := cache.GetActivePartners(ctx)
		require.NoError(t, err)

		cache.Invalidate(ctx)

		source.partners = append(source.partners, partner("partner-3", "DE", 1, "crisis_counseling"))

		refreshed, err := cache.GetActivePartners(ctx)
		require.NoError(t, err)
		assert.Len(t, refreshed, 2)
		assert.Equal(t, 2, source.calls)
	})

	t.Run("Source errors propagate on cache miss", func(t *testing.T) {
		t.Parallel()

		source := &countingPartners{err: errors.New("database unavailable")}
		cache, _ := setupPartnerCache(t, source)

		_, err := cache.GetActivePartners(t.Context())
		require.Error(t, err)
	})

	t.Run("Cache outage degrades to the source", func(t *testing.T) {
		t.Parallel()

		source := &countingPartners{partners: []*types.CrisisPartner{
			partner("partner-1", "US", 1, "crisis_counseling"),
		}}
		cache, mr := setupPartnerCache(t, source)

		mr.SetError("connection refused")

		partners, err := cache.GetActivePartners(t.Context())
		require.NoError(t, err)
		assert.Len(t, partners, 1)
		assert.Equal(t, 1, source.calls)
	})
}
