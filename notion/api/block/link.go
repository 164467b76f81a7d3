package block

import (
	"github.com/anytypeio/go-notion-export/notion/api"
)

type EmbedBlock struct {
	Block
	Embed LinkToWeb `json:"embed"`
}

type LinkToWeb struct {
	URL string `json:"url"`
}

type LinkPreviewBlock struct {
	Block
	LinkPreview LinkToWeb `json:"link_preview"`
}

type BookmarkBlock struct {
	Block
	Bookmark BookmarkObject `json:"bookmark"`
}

type BookmarkObject struct {
	URL     string         `json:"url"`
	Caption []api.RichText `json:"caption"`
}

type ChildPageBlock struct {
	Block
	ChildPage ChildPage `json:"child_page"`
}

type ChildPage struct {
	Title string `json:"title"`
}

type ChildDatabaseBlock struct {
	Block
	ChildDatabase ChildDatabase `json:"child_database"`
}

type ChildDatabase struct {
	Title string `json:"title"`
}

type LinkToPageBlock struct {
	Block
	LinkToPage api.Parent `json:"link_to_page"`
}
