package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/anytypeio/go-notion-export/notion/api/client"
	"github.com/anytypeio/go-notion-export/notion/api/database"
	"github.com/anytypeio/go-notion-export/notion/api/page"
)

const endpoint = "/search"

// Object kinds the search endpoint returns.
const (
	ObjectPage     = "page"
	ObjectDatabase = "database"
	ObjectBlock    = "block"
	ObjectList     = "list"
	ObjectUser     = "user"
	ObjectError    = "error"
)

// Service is a service to retrieve everything the integration was shared with.
type Service struct {
	client *client.Client
}

// New is a constructor for Service.
func New(client *client.Client) *Service {
	return &Service{client: client}
}

// Request is the body of one search call. An empty Query matches every
// object the integration can see.
type Request struct {
	Query       string `json:"query"`
	PageSize    int64  `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// Result is a single search hit. Object holds the wire tag; Page and
// Database carry a decoded payload only when the tag names them, every
// other kind is represented by the tag alone.
type Result struct {
	Object   string
	Page     *page.Page
	Database *database.Database
}

// Response is one cursor batch of search results.
type Response struct {
	Results    []Result
	NextCursor *string
	HasMore    bool
}

type searchResponse struct {
	Object     string            `json:"object"`
	Results    []json.RawMessage `json:"results"`
	NextCursor *string           `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}

// Search performs a single call and returns one decoded cursor batch.
// The caller drives pagination by feeding NextCursor back in as
// StartCursor of the next Request.
func (s *Service) Search(ctx context.Context, apiKey string, request Request) (Response, error) {
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(request); err != nil {
		return Response{}, fmt.Errorf("search: %w", err)
	}

	req, err := s.client.PrepareRequest(ctx, apiKey, http.MethodPost, endpoint, body)
	if err != nil {
		return Response{}, fmt.Errorf("search: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, err
	}
	if res.StatusCode != http.StatusOK {
		return Response{}, client.TransformHTTPCodeToError(b)
	}

	var sr searchResponse
	if err = json.Unmarshal(b, &sr); err != nil {
		return Response{}, err
	}

	response := Response{
		Results:    make([]Result, 0, len(sr.Results)),
		NextCursor: sr.NextCursor,
		HasMore:    sr.HasMore,
	}
	for _, raw := range sr.Results {
		result, err := decodeResult(raw)
		if err != nil {
			return Response{}, err
		}
		response.Results = append(response.Results, result)
	}
	return response, nil
}

func decodeResult(raw json.RawMessage) (Result, error) {
	var tag struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return Result{}, err
	}
	result := Result{Object: tag.Object}
	switch tag.Object {
	case ObjectPage:
		p := &page.Page{}
		if err := json.Unmarshal(raw, p); err != nil {
			return Result{}, err
		}
		result.Page = p
	case ObjectDatabase:
		d := &database.Database{}
		if err := json.Unmarshal(raw, d); err != nil {
			return Result{}, err
		}
		result.Database = d
	}
	return result, nil
}
