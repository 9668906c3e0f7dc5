package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tripweaver/internal/config"
	redis_client "tripweaver/internal/redis"
)

const (
	autocompleteCachePrefix = "places:ac:"
	detailsCachePrefix      = "places:det:"
)

// Client talks to the places provider (autocomplete and place details)
// with a Redis response cache in front of it.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a places client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Autocomplete returns ranked predictions for a partial input. Inputs
// shorter than the minimum are not sent to the provider at all.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	if len(input) < config.AutocompleteMinChars {
		return []Prediction{}, nil
	}

	cacheKey := autocompleteCachePrefix + input
	if cached, err := redis_client.Get(ctx, cacheKey); err == nil {
		var preds []Prediction
		if json.Unmarshal([]byte(cached), &preds) == nil {
			return preds, nil
		}
	}

	endpoint := fmt.Sprintf("%s/api/places/autocomplete?input=%s", c.baseURL, url.QueryEscape(input))
	var out autocompleteResponse
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("places autocomplete: %w", err)
	}
	if out.Predictions == nil {
		out.Predictions = []Prediction{}
	}

	if payload, err := json.Marshal(out.Predictions); err == nil {
		_ = redis_client.Set(ctx, cacheKey, payload, config.AutocompleteCacheTTL)
	}

	return out.Predictions, nil
}

// Details resolves a place id to its name and coordinates.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	cacheKey := detailsCachePrefix + placeID
	if cached, err := redis_client.Get(ctx, cacheKey); err == nil {
		var det PlaceDetails
		if json.Unmarshal([]byte(cached), &det) == nil {
			return &det, nil
		}
	}

	endpoint := fmt.Sprintf("%s/api/places/details?place_id=%s", c.baseURL, url.QueryEscape(placeID))
	var det PlaceDetails
	if err := c.getJSON(ctx, endpoint, &det); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}

	if payload, err := json.Marshal(det); err == nil {
		_ = redis_client.Set(ctx, cacheKey, payload, config.PlaceDetailsCacheTTL)
	}

	return &det, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &eb)
		if eb.Detail != "" {
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, eb.Detail)
		}
		return fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
