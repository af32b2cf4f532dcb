// Package tiles proxies raster map tiles through an ordered provider list
// with automatic fallback, so the storefront serves every tile same-origin.
package tiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/cache"
	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// ErrAllProvidersFailed is returned once every provider in the list has
// failed for a tile and no provider has ever succeeded.
var ErrAllProvidersFailed = errors.New("all tile providers failed")

// Fetcher loads tiles across an ordered provider list. Each attempt races
// the provider against a fixed timeout; the first provider to deliver a
// tile becomes sticky and fallback is disabled for the fetcher's lifetime.
type Fetcher struct {
	providers []string
	timeout   time.Duration
	client    *http.Client
	tileCache *cache.Cache[[]byte]

	mu     sync.Mutex
	sticky int // index of the proven provider, -1 until the first success
}

// NewFetcher creates a fetcher over the given provider URL templates
// (each parameterized by zoom/x/y).
func NewFetcher(providers []string, timeout time.Duration) (*Fetcher, error) {
	if len(providers) == 0 {
		return nil, errors.New("no tile providers configured")
	}

	tileCache, err := cache.New[[]byte](func(b []byte) int64 {
		return int64(len(b))
	}, "Tile Cache")
	if err != nil {
		return nil, err
	}

	return &Fetcher{
		providers: providers,
		timeout:   timeout,
		client:    &http.Client{},
		tileCache: tileCache,
		sticky:    -1,
	}, nil
}

// Fetch returns the tile at (z, x, y), trying providers in order until one
// succeeds. After the first success only the proven provider is consulted.
func (f *Fetcher) Fetch(ctx context.Context, z, x, y int) ([]byte, error) {
	key := fmt.Sprintf("%d/%d/%d", z, x, y)
	if tile, found := f.tileCache.Get(key); found {
		return tile, nil
	}

	f.mu.Lock()
	sticky := f.sticky
	f.mu.Unlock()

	if sticky >= 0 {
		// fallback disabled once a provider has proven itself
		tile, err := f.fetchFrom(ctx, f.providers[sticky], z, x, y)
		if err != nil {
			return nil, err
		}
		f.tileCache.SetWithTTL(key, tile, int64(len(tile)), config.TileCacheTTL)
		return tile, nil
	}

	for i, provider := range f.providers {
		tile, err := f.fetchFrom(ctx, provider, z, x, y)
		if err != nil {
			log.Printf("[tiles.Fetch] provider %d failed for %s: %v", i, key, err)
			continue
		}

		f.mu.Lock()
		if f.sticky < 0 {
			f.sticky = i
		}
		f.mu.Unlock()

		f.tileCache.SetWithTTL(key, tile, int64(len(tile)), config.TileCacheTTL)
		return tile, nil
	}

	return nil, ErrAllProvidersFailed
}

// fetchFrom races one provider against the per-attempt timeout
func (f *Fetcher) fetchFrom(ctx context.Context, template string, z, x, y int) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	url := fmt.Sprintf(template, z, x, y)
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "templesale-tile-proxy/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile request failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// Provider returns the sticky provider template, or "" while still probing
func (f *Fetcher) Provider() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sticky < 0 {
		return ""
	}
	return f.providers[f.sticky]
}

// Reset clears the sticky provider so the next fetch probes the full list
// again. Exposed to admins for when the pinned provider degrades.
func (f *Fetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sticky = -1
}

// CacheStats returns tile cache statistics for admin monitoring
func (f *Fetcher) CacheStats() map[string]interface{} {
	stats := f.tileCache.Stats()
	stats["sticky_provider"] = f.Provider()
	return stats
}

// ClearCache drops all cached tiles
func (f *Fetcher) ClearCache() {
	f.tileCache.Clear()
}

var defaultFetcher *Fetcher

// Init initializes the process-wide fetcher from config. Call during startup.
func Init() error {
	var err error
	defaultFetcher, err = NewFetcher(config.TileProviders, config.TileTimeout)
	return err
}

// Default returns the process-wide fetcher
func Default() *Fetcher {
	if defaultFetcher == nil {
		panic("Tile fetcher not initialized. Call tiles.Init() first.")
	}
	return defaultFetcher
}
