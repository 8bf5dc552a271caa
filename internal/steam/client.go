package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gamesync/backend/internal/models"
	"gamesync/backend/internal/upstream"
)

// ErrNotFound is returned when the store has no data for an app id.
var ErrNotFound = errors.New("steam: app not found")

const coverFile = "capsule_sm_120.jpg"

// Client talks to the Steam store API and the Steam asset CDN.
type Client struct {
	storeURL string
	cdnURL   string
	http     *http.Client
}

// NewClient creates a Client. storeURL is the store origin
// (https://store.steampowered.com), cdnURL the apps asset prefix.
func NewClient(storeURL, cdnURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		storeURL: strings.TrimRight(storeURL, "/"),
		cdnURL:   strings.TrimRight(cdnURL, "/"),
		http:     httpClient,
	}
}

// AppDetails is the subset of the appdetails payload we store. Pointer
// fields distinguish "absent" from zero values.
type AppDetails struct {
	Name             string   `json:"name"`
	ShortDescription *string  `json:"short_description"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	ReleaseDate      *struct {
		ComingSoon bool    `json:"coming_soon"`
		Date       *string `json:"date"`
	} `json:"release_date"`
	Metacritic *struct {
		Score *int   `json:"score"`
		URL   string `json:"url"`
	} `json:"metacritic"`
}

// GetAppDetails fetches store metadata for appID.
func (c *Client) GetAppDetails(ctx context.Context, appID int64) (*AppDetails, error) {
	q := url.Values{}
	q.Set("appids", strconv.FormatInt(appID, 10))
	endpoint := c.storeURL + "/api/appdetails?" + q.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch app details: %w", err)
	}

	// The store keys the response by app id; data is only an object on success.
	var result map[string]struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	appData, exists := result[strconv.FormatInt(appID, 10)]
	if !exists || !appData.Success {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, appID)
	}

	var details AppDetails
	if err := json.Unmarshal(appData.Data, &details); err != nil {
		return nil, fmt.Errorf("failed to parse app data: %w", err)
	}
	return &details, nil
}

// GetCover downloads the small capsule image for appID.
func (c *Client) GetCover(ctx context.Context, appID int64) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%d/%s", c.cdnURL, appID, coverFile)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cover: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := upstream.ReadBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := upstream.CheckStatus("steam", resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

// Patch converts the details into the storefront fields of a game record.
func (d *AppDetails) Patch() models.GamePatch {
	var p models.GamePatch
	if d == nil {
		return p
	}
	if d.Name != "" {
		name := d.Name
		p.Name = &name
	}
	p.Description = d.ShortDescription
	if d.ReleaseDate != nil {
		p.ReleaseDate = d.ReleaseDate.Date
	}
	p.Developer = first(d.Developers)
	p.Publisher = first(d.Publishers)
	if d.Metacritic != nil {
		p.ReviewScore = d.Metacritic.Score
	}
	return p
}

func first(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
