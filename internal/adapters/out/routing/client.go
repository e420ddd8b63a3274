// Package routing implements the RouteOptimizer port against the external
// route/ETA HTTP service. Every failure mode collapses into
// ports.ErrRouteServiceUnavailable so callers can treat the feature as
// all-or-nothing.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client calls the route optimization service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("routing: base URL is required")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type optimizeRequestStop struct {
	ID      string `json:"id"`
	Area    string `json:"area"`
	Address string `json:"address"`
}

type optimizeRequest struct {
	Stops []optimizeRequestStop `json:"stops"`
}

type optimizeResponse struct {
	Order []string `json:"order"`
}

// Optimize submits the stops and returns booking ids in optimized visiting
// order. The response must be a permutation of the submitted ids; anything
// else is reported as ErrRouteServiceUnavailable.
func (c *Client) Optimize(ctx context.Context, stops []ports.RouteStop) ([]kernel.UUID, error) {
	if len(stops) == 0 {
		return nil, nil
	}

	reqStops := make([]optimizeRequestStop, 0, len(stops))
	for _, stop := range stops {
		reqStops = append(reqStops, optimizeRequestStop{
			ID:      stop.BookingID.String(),
			Area:    stop.Area,
			Address: stop.Address,
		})
	}

	body, err := json.Marshal(optimizeRequest{Stops: reqStops})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrRouteServiceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/optimize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrRouteServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrRouteServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ports.ErrRouteServiceUnavailable, resp.StatusCode)
	}

	var parsed optimizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrRouteServiceUnavailable, err)
	}

	return c.validateOrder(stops, parsed.Order)
}

// validateOrder checks the response is exactly the submitted stops, reordered.
func (c *Client) validateOrder(stops []ports.RouteStop, order []string) ([]kernel.UUID, error) {
	if len(order) != len(stops) {
		return nil, fmt.Errorf("%w: expected %d stops, got %d",
			ports.ErrRouteServiceUnavailable, len(stops), len(order))
	}

	submitted := make(map[kernel.UUID]bool, len(stops))
	for _, stop := range stops {
		submitted[stop.BookingID] = true
	}

	ids := make([]kernel.UUID, 0, len(order))
	for _, raw := range order {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed stop id %q", ports.ErrRouteServiceUnavailable, raw)
		}
		if !submitted[id] {
			return nil, fmt.Errorf("%w: unexpected stop id %s", ports.ErrRouteServiceUnavailable, id)
		}
		delete(submitted, id)
		ids = append(ids, id)
	}

	return ids, nil
}
