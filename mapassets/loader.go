// Package mapassets mirrors the mapping library's CDN assets (script,
// stylesheet, marker icons) so the storefront serves them same-origin. The
// fetch happens at most once per process; concurrent callers share the same
// in-flight load.
package mapassets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// Assets holds the mirrored mapping library files
type Assets struct {
	Script       []byte
	Stylesheet   []byte
	MarkerIcon   []byte
	MarkerShadow []byte
}

// Loader fetches and memoizes the asset bundle
type Loader struct {
	scriptURL       string
	stylesheetURL   string
	markerIconURL   string
	markerShadowURL string

	client *http.Client
	group  singleflight.Group

	mu     sync.Mutex
	assets *Assets // memoized on first success; failures are retried
}

// NewLoader creates a loader for the given CDN URLs
func NewLoader(scriptURL, stylesheetURL, markerIconURL, markerShadowURL string) *Loader {
	return &Loader{
		scriptURL:       scriptURL,
		stylesheetURL:   stylesheetURL,
		markerIconURL:   markerIconURL,
		markerShadowURL: markerShadowURL,
		client:          &http.Client{},
	}
}

// Load returns the asset bundle, fetching it from the CDN on first use.
// All callers before resolution await the same in-flight load; a failed
// load is not memoized, so the next request may retry.
func (l *Loader) Load(ctx context.Context) (*Assets, error) {
	l.mu.Lock()
	if l.assets != nil {
		assets := l.assets
		l.mu.Unlock()
		return assets, nil
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do("map-library", func() (interface{}, error) {
		assets, err := l.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.assets = assets
		l.mu.Unlock()
		return assets, nil
	})
	if err != nil {
		return nil, fmt.Errorf("map library load failed: %w", err)
	}
	return v.(*Assets), nil
}

// Loaded reports whether the bundle has been fetched already
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.assets != nil
}

func (l *Loader) fetchAll(ctx context.Context) (*Assets, error) {
	var assets Assets
	for _, item := range []struct {
		url  string
		dest *[]byte
	}{
		{l.scriptURL, &assets.Script},
		{l.stylesheetURL, &assets.Stylesheet},
		{l.markerIconURL, &assets.MarkerIcon},
		{l.markerShadowURL, &assets.MarkerShadow},
	} {
		body, err := l.fetch(ctx, item.url)
		if err != nil {
			return nil, err
		}
		*item.dest = body
	}
	return &assets, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

var defaultLoader *Loader

// Init initializes the process-wide loader from config. Call during startup.
func Init() {
	defaultLoader = NewLoader(
		config.MapLibScriptURL,
		config.MapLibStylesheetURL,
		config.MapLibMarkerIconURL,
		config.MapLibMarkerShadowURL,
	)
}

// Default returns the process-wide loader
func Default() *Loader {
	if defaultLoader == nil {
		panic("Map asset loader not initialized. Call mapassets.Init() first.")
	}
	return defaultLoader
}
