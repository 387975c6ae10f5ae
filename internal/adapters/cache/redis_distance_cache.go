package cache

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/platform/obs"
	"bonus-route-planner/internal/ports"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const DefaultRedisTTL = 24 * time.Hour

// RedisDistanceCache keeps one hash per (fingerprint, origin); fields are
// destinations and values are travel times.
type RedisDistanceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDistanceCache wraps an existing client. A non-positive ttl keeps
// entries for DefaultRedisTTL.
func NewRedisDistanceCache(rdb *redis.Client, ttl time.Duration) *RedisDistanceCache {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &RedisDistanceCache{rdb: rdb, ttl: ttl}
}

// NewRedisDistanceCacheFromURL parses a redis:// URL such as REDIS_URL.
func NewRedisDistanceCacheFromURL(url string, ttl time.Duration) (*RedisDistanceCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis distance cache: parse url: %w", err)
	}
	return NewRedisDistanceCache(redis.NewClient(opt), ttl), nil
}

func (c *RedisDistanceCache) Close() error { return c.rdb.Close() }

func (c *RedisDistanceCache) key(fingerprint, origin string) string {
	return "distance:" + fingerprint + ":" + origin
}

func (c *RedisDistanceCache) GetRows(
	ctx context.Context,
	fingerprint string,
	origins []domain.Location,
) (_ map[domain.Location]ports.DistanceRow, err error) {
	defer obs.Time(ctx, "distance.cache.redis.GetRows")(&err)

	if c.rdb == nil {
		return nil, errors.New("redis distance cache: client is nil")
	}
	if err := checkFingerprint(fingerprint); err != nil {
		return nil, fmt.Errorf("get distance cache: %w", err)
	}

	uniq := uniqueOrigins(origins)
	out := make(map[domain.Location]ports.DistanceRow, len(uniq))
	if len(uniq) == 0 {
		return out, nil
	}

	pipe := c.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(uniq))
	for i, o := range uniq {
		cmds[i] = pipe.HGetAll(ctx, c.key(fingerprint, o))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get distance cache: redis pipeline: %w", err)
	}

	for i, o := range uniq {
		fields, err := cmds[i].Result()
		if err != nil {
			return nil, fmt.Errorf("get distance cache origin=%q: %w", o, err)
		}
		for dest, raw := range fields {
			t, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("get distance cache origin=%q dest=%q: parse %q: %w", o, dest, raw, err)
			}
			addEntry(out, o, dest, t)
		}
	}

	return out, nil
}

func (c *RedisDistanceCache) PutRows(
	ctx context.Context,
	fingerprint string,
	rows map[domain.Location]ports.DistanceRow,
) (err error) {
	defer obs.Time(ctx, "distance.cache.redis.PutRows")(&err)

	if c.rdb == nil {
		return errors.New("redis distance cache: client is nil")
	}
	if err := checkFingerprint(fingerprint); err != nil {
		return fmt.Errorf("insert distance cache: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	pipe := c.rdb.TxPipeline()
	for origin, row := range rows {
		o := strings.TrimSpace(string(origin))
		if o == "" {
			return errors.New("insert distance cache: empty origin key")
		}
		if len(row) == 0 {
			continue
		}
		fields := make(map[string]any, len(row))
		for dest, t := range row {
			fields[string(dest)] = strconv.FormatFloat(t, 'g', -1, 64)
		}
		key := c.key(fingerprint, o)
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache: redis pipeline: %w", err)
	}

	return nil
}
