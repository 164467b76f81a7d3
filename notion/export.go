package notion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/block"
	"github.com/anytypeio/go-notion-export/notion/api/client"
	"github.com/anytypeio/go-notion-export/notion/api/files"
	"github.com/anytypeio/go-notion-export/notion/api/page"
	"github.com/anytypeio/go-notion-export/notion/api/search"
	"github.com/anytypeio/go-notion-export/notion/markdown"
	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var log = logging.Logger("notion-export")

// SinkWriteError marks a failure to create or fill an output file.
// Unlike other per-page errors it aborts the whole run, an unwritable
// destination will not get better on the next page.
type SinkWriteError struct {
	Path string
	Err  error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// Options carries the per-run settings of an export.
type Options struct {
	APIKey        string
	OutputDir     string
	PageSize      int64
	DownloadFiles bool
}

// Exporter walks every object the integration can see and writes one
// markdown file per page into the output directory.
type Exporter struct {
	search     *search.Service
	pages      *page.Service
	blocks     *block.Service
	renderer   *markdown.Renderer
	downloader *files.Downloader

	apiKey    string
	outputDir string
	pageSize  int64
}

// NewExporter is a constructor for Exporter.
func NewExporter(c *client.Client, opts Options) *Exporter {
	pages := page.New(c)
	e := &Exporter{
		search:    search.New(c),
		pages:     pages,
		blocks:    block.New(c),
		renderer:  markdown.NewRenderer(page.NewTitleCache(pages, opts.APIKey)),
		apiKey:    opts.APIKey,
		outputDir: opts.OutputDir,
		pageSize:  opts.PageSize,
	}
	if opts.DownloadFiles {
		e.downloader = files.NewDownloader(opts.OutputDir)
	}
	return e
}

// Export enumerates the workspace with an empty search query and
// processes every result. A failure on a single page is logged and the
// run continues, except when the page has no title or the sink refuses
// the write. Search failures end the run.
func (e *Exporter) Export(ctx context.Context) error {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return &SinkWriteError{Path: e.outputDir, Err: err}
	}

	request := search.Request{PageSize: e.pageSize}
	for {
		response, err := e.search.Search(ctx, e.apiKey, request)
		if err != nil {
			return err
		}
		for _, result := range response.Results {
			if err := e.handleResult(ctx, result); err != nil {
				return err
			}
		}
		if response.NextCursor == nil {
			break
		}
		request.StartCursor = *response.NextCursor
	}
	return nil
}

func (e *Exporter) handleResult(ctx context.Context, result search.Result) error {
	switch result.Object {
	case search.ObjectPage:
		title, err := result.Page.Title()
		if err != nil {
			return err
		}
		log.Infof("Page: %s %s", title, api.ObjectURL(result.Page.ID))
		if err := e.processPage(ctx, result.Page.ID); err != nil {
			if isFatal(err) {
				return err
			}
			log.Errorf("Failed for %s with error %v", title, err)
		}
	case search.ObjectDatabase:
		log.Infof("Database: %s %s", result.Database.TitleText(), api.ObjectURL(result.Database.ID))
	case search.ObjectBlock:
		log.Infof("Block")
	case search.ObjectList:
		log.Infof("List")
	case search.ObjectUser:
		log.Infof("User")
	case search.ObjectError:
		log.Infof("Error")
	default:
		log.Infof("%s", result.Object)
	}
	return nil
}

// processPage renders one page into memory and writes it out under the
// title the page reports for itself.
func (e *Exporter) processPage(ctx context.Context, pageID string) error {
	p, err := e.pages.GetPage(ctx, pageID, e.apiKey)
	if err != nil {
		return err
	}
	title, err := p.Title()
	if err != nil {
		return err
	}

	children, err := e.blocks.GetBlocksAndChildren(ctx, pageID, e.apiKey, e.pageSize)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err = e.renderer.RenderBlocks(ctx, buf, children); err != nil {
		return err
	}

	path := filepath.Join(e.outputDir, sanitizeTitle(title)+".md")
	if err = os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &SinkWriteError{Path: path, Err: err}
	}

	urls := e.renderer.TakeFileURLs()
	if e.downloader != nil {
		if err = e.downloader.DownloadAll(ctx, urls); err != nil {
			log.Warnf("attachments for %s: %v", title, err)
		}
	}
	return nil
}

func isFatal(err error) bool {
	var sinkErr *SinkWriteError
	return errors.As(err, &sinkErr) || errors.Is(err, page.ErrNoTitle)
}

// sanitizeTitle keeps the exported file inside the output directory, a
// title is free to contain the path separator.
func sanitizeTitle(title string) string {
	return strings.ReplaceAll(title, "/", "-")
}
