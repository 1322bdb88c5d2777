package fleetservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the fleet service, the source of truth for charter
// packages and yachts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a fleet service client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPackage fetches a charter package by id.
func (c *Client) GetPackage(ctx context.Context, packageID string) (*Package, error) {
	url := fmt.Sprintf("%s/internal/packages/%s", c.baseURL, packageID)

	var pkg Package
	if err := c.getJSON(ctx, url, ErrPackageNotFound, &pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

// GetYacht fetches a yacht by id.
func (c *Client) GetYacht(ctx context.Context, yachtID string) (*Yacht, error) {
	url := fmt.Sprintf("%s/internal/yachts/%s", c.baseURL, yachtID)

	var yacht Yacht
	if err := c.getJSON(ctx, url, ErrYachtNotFound, &yacht); err != nil {
		return nil, err
	}

	return &yacht, nil
}

func (c *Client) getJSON(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid id format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
