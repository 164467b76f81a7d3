package page

import (
	"context"
)

// UnknownTitle stands in for the title of a page that has none.
const UnknownTitle = "UNKNOWN_TITLE"

// TitleCache memoizes page titles by page id for the lifetime of one export
// run. Entries are never evicted. The exporter runs on a single control flow,
// so the map needs no locking.
type TitleCache struct {
	pageToTitle map[string]string
	service     *Service
	apiKey      string
}

func NewTitleCache(service *Service, apiKey string) *TitleCache {
	return &TitleCache{
		pageToTitle: make(map[string]string),
		service:     service,
		apiKey:      apiKey,
	}
}

// Resolve returns the title of the given page, fetching the page object on
// first sight of the id. A fetched page without a title resolves to
// UnknownTitle and is memoized as such. A failed fetch propagates and leaves
// the cache untouched.
func (c *TitleCache) Resolve(ctx context.Context, pageID string) (string, error) {
	if title, ok := c.pageToTitle[pageID]; ok {
		return title, nil
	}
	p, err := c.service.GetPage(ctx, pageID, c.apiKey)
	if err != nil {
		return "", err
	}
	title, err := p.Title()
	if err != nil {
		title = UnknownTitle
	}
	c.pageToTitle[pageID] = title
	return title, nil
}
