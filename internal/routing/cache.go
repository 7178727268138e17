package routing

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// partnerCacheKey stores the serialized active partner list.
const partnerCacheKey = "partners:active"

// CachedPartnerSource fronts a partner source with a short-lived Redis cache.
// Partner reference data changes rarely but is read on every routed signal;
// singleflight collapses concurrent refreshes into one database query.
type CachedPartnerSource struct {
	source PartnerSource
	client rueidis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// NewCachedPartnerSource creates a caching wrapper with the given TTL.
func NewCachedPartnerSource(
	source PartnerSource, client rueidis.Client, ttl time.Duration, logger *zap.Logger,
) *CachedPartnerSource {
	return &CachedPartnerSource{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger.Named("partner_cache"),
	}
}

// GetActivePartners returns the active partner list, served from cache when
// fresh. Cache failures degrade to the underlying source; routing never
// blocks on the cache.
func (c *CachedPartnerSource) GetActivePartners(ctx context.Context) ([]*types.CrisisPartner, error) {
	cmd := c.client.B().Get().Key(partnerCacheKey).Build()

	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err == nil {
		var partners []*types.CrisisPartner
		if err := sonic.Unmarshal(data, &partners); err == nil {
			return partners, nil
		}

		c.logger.Warn("Discarding undecodable partner cache entry", zap.Error(err))
	} else if !rueidis.IsRedisNil(err) {
		c.logger.Warn("Partner cache read failed", zap.Error(err))
	}

	result, err, _ := c.group.Do(partnerCacheKey, func() (any, error) {
		partners, err := c.source.GetActivePartners(ctx)
		if err != nil {
			return nil, err
		}

		c.store(ctx, partners)

		return partners, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*types.CrisisPartner), nil
}

// Invalidate drops the cached list, forcing the next read to refresh.
func (c *CachedPartnerSource) Invalidate(ctx context.Context) {
	cmd := c.client.B().Del().Key(partnerCacheKey).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("Partner cache invalidation failed", zap.Error(err))
	}
}

func (c *CachedPartnerSource) store(ctx context.Context, partners []*types.CrisisPartner) {
	data, err := sonic.Marshal(partners)
	if err != nil {
		c.logger.Warn("Failed to encode partner cache entry", zap.Error(err))
		return
	}

	cmd := c.client.B().Set().Key(partnerCacheKey).Value(string(data)).
		Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("Partner cache write failed", zap.Error(err))
	}
}
