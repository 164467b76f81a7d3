package markdown

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/block"
)

func (r *Renderer) renderParagraph(ctx context.Context, w io.Writer, b *block.ParagraphBlock) error {
	if _, err := fmt.Fprintf(w, "%s\n", api.RichTextToString(b.Paragraph.RichText)); err != nil {
		return err
	}
	return r.RenderBlocks(ctx, w, b.Paragraph.Children)
}

func (r *Renderer) renderHeading(w io.Writer, marker string, richText []api.RichText) error {
	_, err := fmt.Fprintf(w, "\n%s%s\n\n", marker, api.RichTextToString(richText))
	return err
}

func (r *Renderer) renderCallout(w io.Writer, b *block.CalloutBlock) error {
	var quoted strings.Builder
	for _, line := range textLines(api.RichTextToString(b.Callout.RichText)) {
		fmt.Fprintf(&quoted, "> %s\n", line)
	}
	_, err := fmt.Fprintf(w, "> [!info]\n%s\n", quoted.String())
	return err
}

func (r *Renderer) renderQuote(ctx context.Context, w io.Writer, b *block.QuoteBlock) error {
	head := fmt.Sprintf("> %s\n", api.RichTextToString(b.Quote.RichText))
	return r.renderWithChildren(ctx, w, head, "START QUOTE CHILDREN:\n", "END QUOTE CHILDREN:\n", b.Quote.Children)
}

func (r *Renderer) renderBulletedList(ctx context.Context, w io.Writer, b *block.BulletedListBlock) error {
	head := fmt.Sprintf("* %s\n", api.RichTextToString(b.BulletedList.RichText))
	return r.renderWithChildren(ctx, w, head, "START BULLET CHILDREN:\n", "END BULLET CHILDREN:\n", b.BulletedList.Children)
}

func (r *Renderer) renderNumberedList(ctx context.Context, w io.Writer, b *block.NumberedListBlock) error {
	head := fmt.Sprintf("1. %s\n", api.RichTextToString(b.NumberedList.RichText))
	return r.renderWithChildren(ctx, w, head, "START NUMBERED CHILDREN:\n", "END NUMBERED CHILDREN:\n", b.NumberedList.Children)
}

func (r *Renderer) renderToDo(ctx context.Context, w io.Writer, b *block.ToDoBlock) error {
	checked := ""
	if b.ToDo.Checked {
		checked = "x"
	}
	head := fmt.Sprintf("- [%s] %s\n", checked, api.RichTextToString(b.ToDo.RichText))
	return r.renderWithChildren(ctx, w, head, "START TODO CHILDREN:\n", "END TODO CHILDREN:\n", b.ToDo.Children)
}

func (r *Renderer) renderToggle(ctx context.Context, w io.Writer, b *block.ToggleBlock) error {
	summary := api.RichTextToString(b.Toggle.RichText)
	if _, err := fmt.Fprintf(w, "<details> <summary>%s</summary> \n", summary); err != nil {
		return err
	}
	if err := r.RenderBlocks(ctx, w, b.Toggle.Children); err != nil {
		return err
	}
	return writeString(w, "</details>\n\n")
}

func (r *Renderer) renderCode(w io.Writer, b *block.CodeBlock) error {
	content := api.RichTextToString(b.Code.RichText)
	language := strings.ToLower(b.Code.Language)
	_, err := fmt.Fprintf(w, "\n```%s\n%s\n```\n\n", language, content)
	return err
}

func (r *Renderer) renderEquation(w io.Writer, b *block.EquationBlock) error {
	_, err := fmt.Fprintf(w, "Equation %s\n", b.Equation.Expression)
	return err
}

func (r *Renderer) renderWithChildren(ctx context.Context, w io.Writer, head, start, end string, children []interface{}) error {
	if err := writeString(w, head); err != nil {
		return err
	}
	if err := writeString(w, start); err != nil {
		return err
	}
	if err := r.RenderBlocks(ctx, w, children); err != nil {
		return err
	}
	return writeString(w, end)
}

// textLines splits rendered rich text for per-line prefixing. Empty text
// has no lines and a trailing break does not open an empty final line.
func textLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
