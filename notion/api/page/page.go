package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/client"
)

const endpoint = "/pages/%s"

// ErrNoTitle reports a page object carrying no title property.
var ErrNoTitle = errors.New("page has no title property")

type Service struct {
	client *client.Client
}

// New is a constructor for Service
func New(client *client.Client) *Service {
	return &Service{
		client: client,
	}
}

// Page represents Page object from notion https://developers.notion.com/reference/page
type Page struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	CreatedTime    string     `json:"created_time"`
	LastEditedTime string     `json:"last_edited_time"`
	CreatedBy      api.User   `json:"created_by,omitempty"`
	LastEditedBy   api.User   `json:"last_edited_by,omitempty"`
	Parent         api.Parent `json:"parent"`
	Properties     Properties `json:"properties"`
	Archived       bool       `json:"archived"`
	Icon           *api.Icon  `json:"icon,omitempty"`
	URL            string     `json:"url,omitempty"`
}

// Properties holds the page's property objects. The exporter only ever reads
// the title property, every other payload is left undecoded.
type Properties map[string]PropertyObject

type PropertyObject struct {
	ID    string         `json:"id,omitempty"`
	Type  string         `json:"type"`
	Title []api.RichText `json:"title,omitempty"`
}

// Title returns the plain text of the page's title property.
func (p *Page) Title() (string, error) {
	for _, prop := range p.Properties {
		if prop.Type == "title" {
			return api.RichTextToString(prop.Title), nil
		}
	}
	return "", ErrNoTitle
}

// GetPage retrieves a single page object by its identifier.
func (s *Service) GetPage(ctx context.Context, pageID, apiKey string) (*Page, error) {
	url := fmt.Sprintf(endpoint, pageID)

	req, err := s.client.PrepareRequest(ctx, apiKey, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, client.TransformHTTPCodeToError(b)
	}
	var p Page
	if err = json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
