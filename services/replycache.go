package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// Repeated questions skip the model call for this long.
const replyCacheExpiration = 5 * time.Minute

type ReplyCacheProvider interface {
	Get(ctx context.Context, query string) (string, bool)
	Set(ctx context.Context, query string, reply string)
}

// ReplyCacheService keeps assistant replies keyed by the normalized user
// query, backed by Ristretto through eko/gocache.
type ReplyCacheService struct {
	cache *cache.Cache[string]
}

func NewReplyCacheService() (*ReplyCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 24, // replies are short text, 16MB is plenty
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)
	return &ReplyCacheService{cache: cache.New[string](ristrettoStore)}, nil
}

func (s *ReplyCacheService) Get(ctx context.Context, query string) (string, bool) {
	if query == "" {
		return "", false
	}
	reply, err := s.cache.Get(ctx, query)
	if err != nil || reply == "" {
		return "", false
	}
	return reply, true
}

func (s *ReplyCacheService) Set(ctx context.Context, query string, reply string) {
	if query == "" || reply == "" {
		return
	}
	// best effort, a dropped entry only costs one extra model call
	_ = s.cache.Set(ctx, query, reply, store.WithExpiration(replyCacheExpiration))
}
