package hltb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gamesync/backend/internal/models"
	"gamesync/backend/internal/upstream"
)

// ErrNotFound is returned when a search yields no games.
var ErrNotFound = errors.New("hltb: no matching game")

const userAgent = "Mozilla/5.0 (compatible; HLTBScraper/1.0)"

// Client queries a HowLongToBeat search endpoint.
type Client struct {
	searchURL string
	http      *http.Client
}

// NewClient creates a Client posting searches to searchURL.
func NewClient(searchURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{searchURL: searchURL, http: httpClient}
}

type searchRequest struct {
	SearchType  string   `json:"searchType"`
	SearchTerms []string `json:"searchTerms"`
	Size        int      `json:"size"`
}

type searchResponse struct {
	Data []Game `json:"data"`
}

// Game is a single search hit. Times are in hours; nil when unknown.
type Game struct {
	// ID is decoded from "game_id", falling back to "id".
	ID   *int64 `json:"id"`
	Name string `json:"name"`

	GameplayMain *float64 `json:"gameplayMain"`
	CompMain     *float64 `json:"compMain"`
	MedianMain   *float64 `json:"medianMain"`
	RushedMain   *float64 `json:"rushedMain"`
	LeisureMain  *float64 `json:"leisureMain"`

	GameplayMainExtra *float64 `json:"gameplayMainExtra"`
	CompMainExtra     *float64 `json:"compMainExtra"`
	MedianMainExtra   *float64 `json:"medianMainExtra"`
	RushedMainExtra   *float64 `json:"rushedMainExtra"`
	LeisureMainExtra  *float64 `json:"leisureMainExtra"`

	GameplayCompletionist *float64 `json:"gameplayCompletionist"`
	CompCompletionist     *float64 `json:"compCompletionist"`
	MedianCompletionist   *float64 `json:"medianCompletionist"`
	RushedCompletionist   *float64 `json:"rushedCompletionist"`
	LeisureCompletionist  *float64 `json:"leisureCompletionist"`
}

// UnmarshalJSON prefers the "game_id" key the search endpoint returns.
func (g *Game) UnmarshalJSON(data []byte) error {
	type hit Game
	var raw struct {
		hit
		GameID *int64 `json:"game_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = Game(raw.hit)
	if raw.GameID != nil {
		g.ID = raw.GameID
	}
	return nil
}

// SearchTerms splits a title into the whitespace-separated tokens HLTB expects.
func SearchTerms(name string) []string {
	return strings.Fields(name)
}

// Search returns the best match for name.
func (c *Client) Search(ctx context.Context, name string) (*Game, error) {
	payload, err := json.Marshal(searchRequest{
		SearchType:  "games",
		SearchTerms: SearchTerms(name),
		Size:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search hltb: %w", err)
	}
	defer resp.Body.Close()

	body, err := upstream.ReadBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := upstream.CheckStatus("hltb", resp.StatusCode, body); err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return &result.Data[0], nil
}

// Patch converts the hit into the completion-time fields of a game record.
func (g *Game) Patch() models.GamePatch {
	if g == nil {
		return models.GamePatch{}
	}
	return models.GamePatch{
		HLTBID: g.ID,
		CompletionTimes: models.CompletionTimes{
			MainAvg:     g.GameplayMain,
			MainPolled:  g.CompMain,
			MainMedian:  g.MedianMain,
			MainRushed:  g.RushedMain,
			MainLeisure: g.LeisureMain,

			ExtraAvg:     g.GameplayMainExtra,
			ExtraPolled:  g.CompMainExtra,
			ExtraMedian:  g.MedianMainExtra,
			ExtraRushed:  g.RushedMainExtra,
			ExtraLeisure: g.LeisureMainExtra,

			CompletionistAvg:     g.GameplayCompletionist,
			CompletionistPolled:  g.CompCompletionist,
			CompletionistMedian:  g.MedianCompletionist,
			CompletionistRushed:  g.RushedCompletionist,
			CompletionistLeisure: g.LeisureCompletionist,
		},
	}
}
