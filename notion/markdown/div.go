package markdown

import (
	"context"
	"fmt"
	"io"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/block"
)

func (r *Renderer) renderColumnList(ctx context.Context, w io.Writer, b *block.ColumnListBlock) error {
	children, _ := b.ColumnList.([]interface{})
	return r.renderColumns(ctx, w, children)
}

func (r *Renderer) renderColumn(ctx context.Context, w io.Writer, b *block.ColumnBlock) error {
	if b.Column == nil {
		return nil
	}
	return r.renderColumns(ctx, w, b.Column.Children)
}

func (r *Renderer) renderColumns(ctx context.Context, w io.Writer, children []interface{}) error {
	for _, child := range children {
		if err := writeString(w, "COLUMN LIST\n\n"); err != nil {
			return err
		}
		if err := r.renderBlock(ctx, w, child); err != nil {
			return err
		}
		if err := writeString(w, "COLUMN LIST END\n\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTemplate(w io.Writer, b *block.TemplateBlock) error {
	_, err := fmt.Fprintf(w, "\nTEMPLATE %s\n", api.RichTextToString(b.Template.RichText))
	return err
}
