package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"clinicsuite-server/internal/models"
)

// OpenRedis connects to Redis and verifies the connection with a ping.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// CompanyCache caches company records keyed by normalized name. Every cache
// failure degrades to the database lookup, so callers never see a Redis
// error. A nil client disables the cache entirely.
type CompanyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCompanyCache creates a CompanyCache. Pass a nil client to disable it.
func NewCompanyCache(client *redis.Client, ttl time.Duration) *CompanyCache {
	return &CompanyCache{client: client, ttl: ttl}
}

func companyKey(name string) string {
	return "company:name:" + strings.ToLower(strings.TrimSpace(name))
}

// Get returns the cached company for a name, or nil on miss or any failure.
func (cc *CompanyCache) Get(ctx context.Context, name string) *models.Company {
	if cc == nil || cc.client == nil || cc.ttl <= 0 {
		return nil
	}
	raw, err := cc.client.Get(ctx, companyKey(name)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("company", name).Msg("company cache read failed")
		}
		return nil
	}
	var company models.Company
	if err := json.Unmarshal([]byte(raw), &company); err != nil {
		log.Warn().Err(err).Str("company", name).Msg("company cache entry corrupt")
		return nil
	}
	return &company
}

// Set stores a company record under its normalized name, best-effort.
func (cc *CompanyCache) Set(ctx context.Context, name string, company *models.Company) {
	if cc == nil || cc.client == nil || cc.ttl <= 0 || company == nil {
		return
	}
	raw, err := json.Marshal(company)
	if err != nil {
		return
	}
	if err := cc.client.Set(ctx, companyKey(name), raw, cc.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("company", name).Msg("company cache write failed")
	}
}
