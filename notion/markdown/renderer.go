package markdown

import (
	"context"
	"io"

	"github.com/anytypeio/go-notion-export/notion/api/block"
	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var log = logging.Logger("notion-markdown")

// TitleResolver supplies a page title for child page blocks whose
// payload arrived without one.
type TitleResolver interface {
	Resolve(ctx context.Context, pageID string) (string, error)
}

// Renderer writes the markdown form of a decoded block tree. The same
// tree always renders to the same bytes.
type Renderer struct {
	titles TitleResolver

	fileURLs []string
}

// NewRenderer is a constructor for Renderer.
func NewRenderer(titles TitleResolver) *Renderer {
	return &Renderer{titles: titles}
}

// TakeFileURLs returns the media locations seen since the last call and
// clears the list.
func (r *Renderer) TakeFileURLs() []string {
	urls := r.fileURLs
	r.fileURLs = nil
	return urls
}

// RenderBlocks writes each block of the tree in document order.
func (r *Renderer) RenderBlocks(ctx context.Context, w io.Writer, blocks []interface{}) error {
	for _, b := range blocks {
		if err := r.renderBlock(ctx, w, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderBlock(ctx context.Context, w io.Writer, b interface{}) error {
	switch bl := b.(type) {
	case *block.ParagraphBlock:
		return r.renderParagraph(ctx, w, bl)
	case *block.Heading1Block:
		return r.renderHeading(w, "# ", bl.Heading1.RichText)
	case *block.Heading2Block:
		return r.renderHeading(w, "## ", bl.Heading2.RichText)
	case *block.Heading3Block:
		return r.renderHeading(w, "### ", bl.Heading3.RichText)
	case *block.CalloutBlock:
		return r.renderCallout(w, bl)
	case *block.QuoteBlock:
		return r.renderQuote(ctx, w, bl)
	case *block.BulletedListBlock:
		return r.renderBulletedList(ctx, w, bl)
	case *block.NumberedListBlock:
		return r.renderNumberedList(ctx, w, bl)
	case *block.ToDoBlock:
		return r.renderToDo(ctx, w, bl)
	case *block.ToggleBlock:
		return r.renderToggle(ctx, w, bl)
	case *block.CodeBlock:
		return r.renderCode(w, bl)
	case *block.EquationBlock:
		return r.renderEquation(w, bl)
	case *block.ChildPageBlock:
		return r.renderChildPage(ctx, w, bl)
	case *block.ChildDatabaseBlock:
		return r.renderChildDatabase(w, bl)
	case *block.ImageBlock:
		return r.renderMedia(w, bl.Image)
	case *block.VideoBlock:
		return r.renderMedia(w, bl.Video)
	case *block.FileBlock:
		return r.renderMedia(w, bl.File)
	case *block.PdfBlock:
		return r.renderMedia(w, bl.Pdf)
	case *block.EmbedBlock:
		return r.renderLink(w, bl.Embed.URL)
	case *block.LinkPreviewBlock:
		return r.renderLink(w, bl.LinkPreview.URL)
	case *block.BookmarkBlock:
		return r.renderBookmark(w, bl)
	case *block.DividerBlock:
		return writeString(w, "----\n")
	case *block.TableOfContentsBlock:
		return writeString(w, "\nTABLE OF CONTENTS\n")
	case *block.BreadcrumbBlock:
		return writeString(w, "\nBREADCRUMB\n")
	case *block.ColumnListBlock:
		return r.renderColumnList(ctx, w, bl)
	case *block.ColumnBlock:
		return r.renderColumn(ctx, w, bl)
	case *block.TemplateBlock:
		return r.renderTemplate(w, bl)
	case *block.LinkToPageBlock:
		return writeString(w, "\nLINK TO PAGE\n")
	case *block.TableBlock:
		return writeString(w, "\nTABLE\n")
	case *block.TableRowBlock:
		return writeString(w, "\nTABLE ROW\n")
	case *block.SyncedBlock:
		return writeString(w, "\nSYNCED BLOCK\n")
	case *block.UnsupportedBlock:
		return writeString(w, "\nUNSUPPORTED\n")
	case *block.UnknownBlock:
		return writeString(w, "\nUNKNOWN\n")
	default:
		log.Debugf("no render rule for %T", b)
		return writeString(w, "\nUNKNOWN\n")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
