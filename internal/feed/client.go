// Package feed fetches work-order and availability snapshots from the
// upstream data source. Records arrive wholesale; the Refresher guarantees
// that only the most recently requested snapshot is ever published.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"home-services-backend/internal/database/models"
	"home-services-backend/internal/logger"
)

// Snapshot is one full upstream payload
type Snapshot struct {
	WorkOrders   []models.WorkOrder         `json:"work_orders"`
	Availability []models.AvailabilityBlock `json:"availability"`
	FetchedAt    time.Time                  `json:"fetched_at"`
}

// Client fetches snapshots over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSnapshot retrieves the full upstream snapshot
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	log := logger.WithContext(ctx)

	var snap Snapshot
	if err := c.getJSON(ctx, "/snapshot", &snap); err != nil {
		log.Errorf("Feed snapshot fetch failed: %v", err)
		return nil, err
	}
	snap.FetchedAt = time.Now()

	log.Infof("Feed snapshot fetched: work_orders=%d availability=%d",
		len(snap.WorkOrders), len(snap.Availability))
	return &snap, nil
}

// FetchWorkOrders retrieves only the work order records
func (c *Client) FetchWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	if err := c.getJSON(ctx, "/work-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchAvailability retrieves only the availability block records
func (c *Client) FetchAvailability(ctx context.Context) ([]models.AvailabilityBlock, error) {
	var blocks []models.AvailabilityBlock
	if err := c.getJSON(ctx, "/availability", &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("feed request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
