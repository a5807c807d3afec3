package bureau

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "fineract-prequalification/internal/domain/bureau"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/domain/prequalification"
)

// CachedChecker is a read-through Redis cache in front of another Checker,
// keyed by the member's DPI. Cache failures fall back to the wrapped checker.
type CachedChecker struct {
	next domain.Checker
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedChecker(next domain.Checker, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedChecker {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedChecker{next: next, rdb: rdb, ttl: ttl, log: log}
}

func cacheKey(dpi string) string { return "bureau:dpi:" + dpi }

func (c *CachedChecker) Classify(ctx context.Context, m prequalification.MemberView) (policy.Verdict, error) {
	if m.DPI == "" {
		return c.next.Classify(ctx, m)
	}
	key := cacheKey(m.DPI)

	v, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return policy.Verdict(v), nil
	case !errors.Is(err, redis.Nil):
		c.log.Warn("bureau cache read failed", zap.String("key", key), zap.Error(err))
	}

	verdict, err := c.next.Classify(ctx, m)
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, key, string(verdict), c.ttl).Err(); err != nil {
		c.log.Warn("bureau cache write failed", zap.String("key", key), zap.Error(err))
	}
	return verdict, nil
}
