package predictioncache

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/platform/resilience"
)

const (
	keyPrefix  = "league:prediction:"
	DefaultTTL = 10 * time.Minute
)

// RedisCache stores prediction results keyed by league state. Calls go
// through a circuit breaker so a dead Redis stops costing a round trip.
type RedisCache struct {
	client  redis.Cmdable
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration, breakerCfg resilience.CircuitBreakerConfig) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		breakerCfg = resilience.NormalizeCircuitBreakerConfig(breakerCfg)
		breaker = resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq)
	}

	return &RedisCache{client: client, ttl: ttl, breaker: breaker}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]prediction.TeamPrediction, bool, error) {
	var raw []byte
	err := c.guard(func() error {
		b, err := c.client.Get(ctx, keyPrefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		raw = b
		return err
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "get prediction %s", key)
	}
	if raw == nil {
		return nil, false, nil
	}

	var items []prediction.TeamPrediction
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, false, errors.Wrapf(err, "decode prediction %s", key)
	}
	return items, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, items []prediction.TeamPrediction) error {
	payload, err := sonic.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode prediction %s", key)
	}

	err = c.guard(func() error {
		return c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err()
	})
	if err != nil {
		return errors.Wrapf(err, "set prediction %s", key)
	}
	return nil
}

// Ping reports whether Redis answers; used at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.guard(func() error {
		return c.client.Ping(ctx).Err()
	})
}

func (c *RedisCache) guard(fn func() error) error {
	if c.breaker == nil {
		return fn()
	}
	if err := c.breaker.Allow(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		c.breaker.RecordFailure()
		return err
	}
	c.breaker.RecordSuccess()
	return nil
}
