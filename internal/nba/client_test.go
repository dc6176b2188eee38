package nba

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gamePage(gameID string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>game</title></head>
<body>
<script type="application/json">
{"props":{"pageProps":{"game":{
  "gameId":%q,
  "gameEt":"2025-01-15T19:30:00-05:00",
  "attendance":18997,
  "homeTeam":{"teamId":1610612747,"score":110,
    "players":[{"personId":2544,"firstName":"LeBron","familyName":"James",
      "statistics":{"minutes":"35:12","points":28}}]},
  "awayTeam":{"teamId":1610612738,"score":102,"players":[]}
}}}}
</script>
</body>
</html>`, gameID)
}

func TestFetchGameParsesEmbeddedDocument(t *testing.T) {
	var gotPath string
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, gamePage("0022500100"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	game, err := client.FetchGame(context.Background(), 22500100)
	require.NoError(t, err)

	assert.Equal(t, "/game/0022500100", gotPath)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Equal(t, "0022500100", game.GameID)
	assert.Equal(t, int64(1610612747), game.HomeTeam.TeamID)
	assert.Equal(t, int64(110), game.HomeTeam.Score)
	require.Len(t, game.HomeTeam.Players, 1)
	assert.Equal(t, int64(2544), game.HomeTeam.Players[0].PersonID)
	require.NotNil(t, game.HomeTeam.Players[0].Statistics)
	assert.Equal(t, "35:12", *game.HomeTeam.Players[0].Statistics.Minutes)
}

func TestFetchGameNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchGame(context.Background(), 22500101)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchGamePageWithoutDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>nothing embedded here</body></html>")
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchGame(context.Background(), 22500102)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded document not found")
}

func TestFetchGamePageWithoutGameObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><script type="application/json">{"props":{"pageProps":{}}}</script></body></html>`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchGame(context.Background(), 22500103)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no game object")
}
