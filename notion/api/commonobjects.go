package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RichTextType string

const (
	Text     RichTextType = "text"
	Mention  RichTextType = "mention"
	Equation RichTextType = "equation"
)

// RichText represent RichText object from Notion https://developers.notion.com/reference/rich-text
type RichText struct {
	Type        RichTextType    `json:"type,omitempty"`
	Text        *TextObject     `json:"text,omitempty"`
	Mention     *MentionObject  `json:"mention,omitempty"`
	Equation    *EquationObject `json:"equation,omitempty"`
	Annotations *Annotations    `json:"annotations,omitempty"`
	PlainText   string          `json:"plain_text,omitempty"`
	Href        string          `json:"href,omitempty"`
}

type TextObject struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

type EquationObject struct {
	Expression string `json:"expression"`
}

type Link struct {
	URL string `json:"url,omitempty"`
}

type mentionType string

const (
	UserMention mentionType = "user"
	Page        mentionType = "page"
	Database    mentionType = "database"
	Date        mentionType = "date"
	LinkPreview mentionType = "link_preview"
)

type MentionObject struct {
	Type        mentionType      `json:"type,omitempty"`
	User        *User            `json:"user,omitempty"`
	Page        *PageMention     `json:"page,omitempty"`
	Database    *DatabaseMention `json:"database,omitempty"`
	Date        *DateObject      `json:"date,omitempty"`
	LinkPreview *Link            `json:"link_preview,omitempty"`
}

type PageMention struct {
	ID string `json:"id"`
}

type DatabaseMention struct {
	ID string `json:"id"`
}

type DateObject struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	TimeZone string `json:"time_zone"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

type FileType string

const (
	External FileType = "external"
	File     FileType = "file"
)

// FileObject represent File Object object from Notion https://developers.notion.com/reference/file-object
type FileObject struct {
	Name     string       `json:"name"`
	Type     FileType     `json:"type"`
	File     FileProperty `json:"file,omitempty"`
	External FileProperty `json:"external,omitempty"`
}

// URL returns the address of the underlying file, hosted or external,
// according to the object's type tag.
func (f *FileObject) URL() string {
	if f.Type == External {
		return f.External.URL
	}
	return f.File.URL
}

type FileProperty struct {
	URL        string     `json:"url,omitempty"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

func (o *FileProperty) UnmarshalJSON(data []byte) error {
	fp := make(map[string]interface{}, 0)
	if err := json.Unmarshal(data, &fp); err != nil {
		return err
	}
	if url, ok := fp["url"].(string); ok {
		o.URL = url
	}
	if s, ok := fp["expiry_time"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			o.ExpiryTime = &t
		}
	}
	return nil
}

type Icon struct {
	Type     FileType      `json:"type"`
	Emoji    *string       `json:"emoji,omitempty"`
	File     *FileProperty `json:"file,omitempty"`
	External *FileProperty `json:"external,omitempty"`
}

type userType string

// User represent User Object object from Notion https://developers.notion.com/reference/user
type User struct {
	Object    string    `json:"object,omitempty"`
	ID        string    `json:"id"`
	Type      userType  `json:"type,omitempty"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Person    *Person   `json:"person,omitempty"`
	Bot       *struct{} `json:"bot,omitempty"`
}

type Person struct {
	Email string `json:"email"`
}

type Parent struct {
	Type       string `json:"type,omitempty"`
	PageID     string `json:"page_id"`
	DatabaseID string `json:"database_id"`
	BlockID    string `json:"block_id"`
	Workspace  bool   `json:"workspace"`
}

// RichTextToString concatenates the plain text of every span in order,
// with no separators.
func RichTextToString(rt []RichText) string {
	var richText strings.Builder
	for _, t := range rt {
		richText.WriteString(t.PlainText)
	}
	return richText.String()
}

// ObjectURL builds the canonical web address of a page or database from its
// identifier, with the uuid dashes stripped.
func ObjectURL(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return "http://notion.so/" + strings.ReplaceAll(id, "-", "")
	}
	return "http://notion.so/" + strings.ReplaceAll(u.String(), "-", "")
}
