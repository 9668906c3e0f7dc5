package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API is the surface the session service depends on. The production
// implementation is Client; tests substitute fakes.
type API interface {
	StartTrip(ctx context.Context, params StartTripRequest) (*StartTripResponse, error)
	GetState(ctx context.Context, threadID string) (*TripStateResponse, error)
	GenerateItinerary(ctx context.Context, threadID string, req GenerateItineraryRequest) (*GenerateItineraryResponse, error)
}

// StatusError is a non-2xx reply from the planner backend.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("planner returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("planner returned %d", e.Code)
}

// Client talks to the trip-planning backend over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a planner client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// StartTrip creates a new planning session and runs location discovery.
func (c *Client) StartTrip(ctx context.Context, params StartTripRequest) (*StartTripResponse, error) {
	var out StartTripResponse
	if err := c.post(ctx, "/api/trip/start", params, &out); err != nil {
		return nil, fmt.Errorf("start trip: %w", err)
	}
	return &out, nil
}

// GetState fetches the backend's view of an existing session.
func (c *Client) GetState(ctx context.Context, threadID string) (*TripStateResponse, error) {
	var out TripStateResponse
	path := "/api/trip/" + url.PathEscape(threadID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("get trip state: %w", err)
	}
	return &out, nil
}

// GenerateItinerary submits the edit diff and asks for a day-by-day plan.
func (c *Client) GenerateItinerary(ctx context.Context, threadID string, req GenerateItineraryRequest) (*GenerateItineraryResponse, error) {
	var out GenerateItineraryResponse
	path := "/api/trip/" + url.PathEscape(threadID) + "/generate"
	if err := c.post(ctx, path, req, &out); err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &eb)
		return &StatusError{Code: resp.StatusCode, Detail: eb.Detail}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
