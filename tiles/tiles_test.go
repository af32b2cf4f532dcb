package tiles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngStub = []byte{0x89, 'P', 'N', 'G'}

func tileServer(t *testing.T, status int, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write(pngStub)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchFallsBackToNextProvider(t *testing.T) {
	var badHits, goodHits int32
	bad := tileServer(t, http.StatusBadGateway, &badHits)
	good := tileServer(t, http.StatusOK, &goodHits)

	f, err := NewFetcher([]string{
		bad.URL + "/%d/%d/%d.png",
		good.URL + "/%d/%d/%d.png",
	}, time.Second)
	require.NoError(t, err)

	tile, err := f.Fetch(context.Background(), 15, 16384, 10896)
	require.NoError(t, err)
	assert.Equal(t, pngStub, tile)
	assert.EqualValues(t, 1, atomic.LoadInt32(&badHits))
	assert.EqualValues(t, 1, atomic.LoadInt32(&goodHits))
}

func TestFetchStickyAfterFirstSuccess(t *testing.T) {
	var badHits int32
	bad := tileServer(t, http.StatusBadGateway, &badHits)
	good := tileServer(t, http.StatusOK, nil)

	f, err := NewFetcher([]string{
		bad.URL + "/%d/%d/%d.png",
		good.URL + "/%d/%d/%d.png",
	}, time.Second)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, good.URL+"/%d/%d/%d.png", f.Provider())

	// a different tile must go straight to the proven provider
	_, err = f.Fetch(context.Background(), 1, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&badHits), "failed provider must not be probed again")
}

func TestFetchStickyDisablesFallback(t *testing.T) {
	// first provider succeeds once, then starts failing
	var calls int32
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Write(pngStub)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer flaky.Close()
	var backupHits int32
	backup := tileServer(t, http.StatusOK, &backupHits)

	f, err := NewFetcher([]string{
		flaky.URL + "/%d/%d/%d.png",
		backup.URL + "/%d/%d/%d.png",
	}, time.Second)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), 1, 0, 0)
	require.NoError(t, err)

	// sticky provider now fails; error surfaces instead of falling back
	_, err = f.Fetch(context.Background(), 1, 1, 0)
	require.Error(t, err)
	assert.EqualValues(t, 0, atomic.LoadInt32(&backupHits))
}

func TestFetchExhaustionError(t *testing.T) {
	a := tileServer(t, http.StatusBadGateway, nil)
	b := tileServer(t, http.StatusNotFound, nil)
	c := tileServer(t, http.StatusInternalServerError, nil)

	f, err := NewFetcher([]string{
		a.URL + "/%d/%d/%d.png",
		b.URL + "/%d/%d/%d.png",
		c.URL + "/%d/%d/%d.png",
	}, time.Second)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), 1, 0, 0)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Equal(t, "", f.Provider())
}

func TestFetchTimeoutAdvancesProvider(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write(pngStub)
	}))
	defer slow.Close()
	fast := tileServer(t, http.StatusOK, nil)

	f, err := NewFetcher([]string{
		slow.URL + "/%d/%d/%d.png",
		fast.URL + "/%d/%d/%d.png",
	}, 50*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	tile, err := f.Fetch(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, pngStub, tile)
	assert.Less(t, time.Since(start), 400*time.Millisecond,
		"slow provider must be abandoned at the timeout, not awaited")
	assert.Equal(t, fast.URL+"/%d/%d/%d.png", f.Provider())
}

func TestFetchServesFromCache(t *testing.T) {
	var hits int32
	srv := tileServer(t, http.StatusOK, &hits)

	f, err := NewFetcher([]string{srv.URL + "/%d/%d/%d.png"}, time.Second)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), 3, 4, 5)
	require.NoError(t, err)

	// let ristretto admit the entry before the second fetch
	f.tileCache.Wait()
	time.Sleep(10 * time.Millisecond)

	_, err = f.Fetch(context.Background(), 3, 4, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestResetReenablesFallback(t *testing.T) {
	good := tileServer(t, http.StatusOK, nil)

	f, err := NewFetcher([]string{good.URL + "/%d/%d/%d.png"}, time.Second)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	require.NotEqual(t, "", f.Provider())

	f.Reset()
	assert.Equal(t, "", f.Provider())
}

func TestNewFetcherRequiresProviders(t *testing.T) {
	_, err := NewFetcher(nil, time.Second)
	assert.Error(t, err)
}
