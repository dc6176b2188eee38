package nba

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fetchServer serves game pages for the given identifiers and 404s the rest,
// counting requests per path.
type fetchServer struct {
	mu    sync.Mutex
	found map[string]bool
	hits  map[string]int
}

func newFetchServer(foundIDs ...string) *fetchServer {
	found := make(map[string]bool, len(foundIDs))
	for _, id := range foundIDs {
		found[id] = true
	}
	return &fetchServer{found: found, hits: make(map[string]int)}
}

func (s *fetchServer) handler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/game/")
	s.mu.Lock()
	s.hits[id]++
	s.mu.Unlock()

	if !s.found[id] {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, gamePage(id))
}

func (s *fetchServer) hitCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[id]
}

func zeroDelayConfig() FetcherConfig {
	return FetcherConfig{Passes: 3}
}

func TestFetchAllResolvesEverything(t *testing.T) {
	backend := newFetchServer("0022500110", "0022500111")
	server := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	fetcher := NewFetcher(client, zeroDelayConfig(), zap.NewNop())

	games, unresolved, err := fetcher.FetchAll(context.Background(), []int64{22500110, 22500111})
	require.NoError(t, err)
	assert.Empty(t, unresolved)
	require.Len(t, games, 2)
	assert.Equal(t, "0022500110", games[0].GameID)
	assert.Equal(t, "0022500111", games[1].GameID)
}

func TestFetchAllRetriesThenReportsUnresolved(t *testing.T) {
	// Five identifiers, two of which never resolve. After the retry budget
	// exactly those two come back unresolved, in request order.
	backend := newFetchServer("0022500120", "0022500122", "0022500124")
	server := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	fetcher := NewFetcher(client, zeroDelayConfig(), zap.NewNop())

	ids := []int64{22500120, 22500121, 22500122, 22500123, 22500124}
	games, unresolved, err := fetcher.FetchAll(context.Background(), ids)
	require.NoError(t, err)

	assert.Len(t, games, 3)
	assert.Equal(t, []int64{22500121, 22500123}, unresolved)

	// The resolved identifiers are fetched once; the failing ones once per
	// pass.
	assert.Equal(t, 1, backend.hitCount("0022500120"))
	assert.Equal(t, 3, backend.hitCount("0022500121"))
	assert.Equal(t, 3, backend.hitCount("0022500123"))
}

func TestFetchAllDeduplicatesIdentifiers(t *testing.T) {
	backend := newFetchServer("0022500130")
	server := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	fetcher := NewFetcher(client, zeroDelayConfig(), zap.NewNop())

	games, unresolved, err := fetcher.FetchAll(context.Background(),
		[]int64{22500130, 22500130, 22500130})
	require.NoError(t, err)
	assert.Empty(t, unresolved)
	assert.Len(t, games, 1)
	assert.Equal(t, 1, backend.hitCount("0022500130"))
}

func TestFetchAllHonorsCancellation(t *testing.T) {
	backend := newFetchServer()
	server := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	fetcher := NewFetcher(client, zeroDelayConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, unresolved, err := fetcher.FetchAll(ctx, []int64{22500140, 22500141})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int64{22500140, 22500141}, unresolved)
}

func TestDefaultFetcherConfig(t *testing.T) {
	cfg := DefaultFetcherConfig()
	assert.Equal(t, 3, cfg.Passes)
	assert.Equal(t, 2*time.Second, cfg.RequestDelay)
	assert.Equal(t, 10*time.Second, cfg.PassCooldown)
}
