package markdown

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/block"
)

// renderChildPage links the nested page by title. Child pages arrive as
// blocks whose id doubles as the page id, so the id has to parse as one.
func (r *Renderer) renderChildPage(ctx context.Context, w io.Writer, b *block.ChildPageBlock) error {
	if _, err := uuid.Parse(b.ID); err != nil {
		return fmt.Errorf("child page id %s: %w", b.ID, err)
	}
	title := b.ChildPage.Title
	if title == "" {
		resolved, err := r.titles.Resolve(ctx, b.ID)
		if err != nil {
			return err
		}
		title = resolved
	}
	_, err := fmt.Fprintf(w, "Child page: [[%s]]\n", title)
	return err
}

func (r *Renderer) renderChildDatabase(w io.Writer, b *block.ChildDatabaseBlock) error {
	_, err := fmt.Fprintf(w, "Child database: %s\n", b.ChildDatabase.Title)
	return err
}

func (r *Renderer) renderLink(w io.Writer, url string) error {
	_, err := fmt.Fprintf(w, "![[%s]]\n", url)
	return err
}

func (r *Renderer) renderBookmark(w io.Writer, b *block.BookmarkBlock) error {
	caption := api.RichTextToString(b.Bookmark.Caption)
	_, err := fmt.Fprintf(w, "caption %s \n![[%s]]\n", caption, b.Bookmark.URL)
	return err
}
