// Package nba retrieves raw game records from the public game pages and
// turns the embedded JSON document into a typed structure. Validation happens
// once here, at the fetch boundary, so the extractors never defend against
// missing keys.
package nba

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://www.nba.com"

// browserHeaders is the fixed header set sent with every request. The source
// serves the embedded document only to browser-looking clients.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/106.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Referer":                   "https://www.nba.com",
	"Upgrade-Insecure-Requests": "1",
	"Cache-Control":             "max-age=0",
}

// Client fetches one game page at a time.
type Client struct {
	http    *resty.Client
	baseURL string
	log     *zap.Logger
}

// NewClient creates a game page client. An empty baseURL selects the public
// source.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeaders(browserHeaders)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		log:     log,
	}
}

// FetchGame retrieves and parses the raw record for one game identifier.
// The identifier is zero-padded into the canonical page URL.
func (c *Client) FetchGame(ctx context.Context, gameID int64) (*RawGame, error) {
	url := fmt.Sprintf("%s/game/00%d", c.baseURL, gameID)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching game %d: %w", gameID, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetching game %d: status %d", gameID, resp.StatusCode())
	}

	game, err := parseGamePage(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", gameID, err)
	}
	return game, nil
}

// parseGamePage locates the embedded JSON document in a game page and
// extracts the game object from its fixed nested path.
func parseGamePage(body []byte) (*RawGame, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	script := doc.Find(`script[type="application/json"]`).First()
	if script.Length() == 0 {
		return nil, fmt.Errorf("embedded document not found")
	}

	var env nextData
	if err := json.Unmarshal([]byte(script.Text()), &env); err != nil {
		return nil, fmt.Errorf("decoding embedded document: %w", err)
	}

	game := env.Props.PageProps.Game
	if game == nil {
		return nil, fmt.Errorf("embedded document has no game object")
	}
	return game, nil
}
