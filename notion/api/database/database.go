package database

import (
	"github.com/anytypeio/go-notion-export/notion/api"
)

// Database represents Database object from Notion https://developers.notion.com/reference/database
type Database struct {
	Object         string         `json:"object"`
	ID             string         `json:"id"`
	CreatedTime    string         `json:"created_time"`
	LastEditedTime string         `json:"last_edited_time"`
	CreatedBy      api.User       `json:"created_by,omitempty"`
	LastEditedBy   api.User       `json:"last_edited_by,omitempty"`
	Title          []api.RichText `json:"title"`
	Parent         api.Parent     `json:"parent"`
	URL            string         `json:"url"`
	Properties     interface{}    `json:"properties"`
	Description    []api.RichText `json:"description"`
	IsInline       bool           `json:"is_inline"`
	Archived       bool           `json:"archived"`
	Icon           *api.Icon      `json:"icon,omitempty"`
}

// TitleText returns the database title as plain text. A database with no
// title yields an empty string, not an error.
func (d *Database) TitleText() string {
	return api.RichTextToString(d.Title)
}
