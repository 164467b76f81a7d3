package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	notionURL  = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"

	// Notion's documented rate limit is an average of three requests
	// per second per integration.
	requestsPerSecond = 3
)

type Client struct {
	HTTPClient *http.Client
	BasePath   string

	limiter *rate.Limiter
}

// NewClient is a constructor for Client
func NewClient() *Client {
	c := &Client{
		HTTPClient: &http.Client{Timeout: time.Minute},
		BasePath:   notionURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
	return c
}

// PrepareRequest create http.Request based on given method, url and body
func (c *Client) PrepareRequest(ctx context.Context,
	apiKey, method, url string,
	body io.Reader) (*http.Request, error) {
	resultURL := c.BasePath + url

	req, err := http.NewRequestWithContext(ctx, method, resultURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", apiKey))
	req.Header.Set("Notion-Version", apiVersion)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do performs the request once the rate limiter admits it. Requests are never
// retried, a failed call surfaces to the caller as is.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}
