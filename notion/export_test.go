package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anytypeio/go-notion-export/notion/api/client"
	"github.com/anytypeio/go-notion-export/notion/api/page"
)

const pageID = "649c1778-2ba1-4edb-8f0a-b224f9ff27b8"

func pageJSON(id, title string) string {
	return fmt.Sprintf(`{
		"object": "page",
		"id": "%s",
		"parent": {"type": "workspace", "workspace": true},
		"archived": false,
		"properties": {
			"title": {
				"id": "title",
				"type": "title",
				"title": [{"type": "text", "text": {"content": "%s", "link": null}, "plain_text": "%s", "href": null}]
			}
		},
		"url": "https://www.notion.so/"
	}`, id, title, title)
}

func paragraphJSON(text string) string {
	return fmt.Sprintf(`{
		"object": "block",
		"id": "a80ae792-b87e-48d2-b24c-c32c1e14d509",
		"has_children": false,
		"archived": false,
		"type": "paragraph",
		"paragraph": {
			"rich_text": [{"type": "text", "text": {"content": "%s", "link": null}, "plain_text": "%s", "href": null}],
			"color": "default"
		}
	}`, text, text)
}

func listJSON(results ...string) string {
	return fmt.Sprintf(`{"object":"list","results":[%s],"next_cursor":null,"has_more":false}`, strings.Join(results, ","))
}

func newExporterAgainst(s *httptest.Server, dir string) *Exporter {
	c := client.NewClient()
	c.BasePath = s.URL
	return NewExporter(c, Options{APIKey: "key", OutputDir: dir, PageSize: 100})
}

func Test_ExportWritesPage(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search":
			w.Write([]byte(listJSON(pageJSON(pageID, "A/B"))))
		case strings.HasPrefix(r.URL.Path, "/pages/"):
			w.Write([]byte(pageJSON(pageID, "A/B")))
		case strings.HasPrefix(r.URL.Path, "/blocks/"):
			w.Write([]byte(listJSON(paragraphJSON("hi"))))
		}
	}))
	defer s.Close()

	dir := t.TempDir()
	err := newExporterAgainst(s, dir).Export(context.Background())
	assert.Nil(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "A-B.md"))
	assert.Nil(t, err)
	assert.Equal(t, "hi\n", string(b))
}

func Test_ExportContinuesPastFailedPage(t *testing.T) {
	badID := "80e3f62c-8a14-4d64-ba04-25648ece9db0"
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search":
			w.Write([]byte(listJSON(pageJSON(badID, "Broken"), pageJSON(pageID, "Fine"))))
		case r.URL.Path == "/pages/"+badID:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"object":"error","status":500,"code":"internal_server_error","message":"boom"}`))
		case strings.HasPrefix(r.URL.Path, "/pages/"):
			w.Write([]byte(pageJSON(pageID, "Fine")))
		case strings.HasPrefix(r.URL.Path, "/blocks/"):
			w.Write([]byte(listJSON(paragraphJSON("second"))))
		}
	}))
	defer s.Close()

	dir := t.TempDir()
	err := newExporterAgainst(s, dir).Export(context.Background())
	assert.Nil(t, err)

	_, err = os.Stat(filepath.Join(dir, "Broken.md"))
	assert.True(t, os.IsNotExist(err))
	b, err := os.ReadFile(filepath.Join(dir, "Fine.md"))
	assert.Nil(t, err)
	assert.Equal(t, "second\n", string(b))
}

func Test_ExportAbortsOnMissingTitle(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			noTitle := fmt.Sprintf(`{
				"object": "page",
				"id": "%s",
				"archived": false,
				"properties": {
					"Number": {"id": "WxBc", "type": "number", "number": 2}
				},
				"url": "https://www.notion.so/"
			}`, pageID)
			w.Write([]byte(listJSON(noTitle)))
		}
	}))
	defer s.Close()

	err := newExporterAgainst(s, t.TempDir()).Export(context.Background())
	assert.True(t, errors.Is(err, page.ErrNoTitle))
}

func Test_ExportAbortsOnSearchError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`))
	}))
	defer s.Close()

	err := newExporterAgainst(s, t.TempDir()).Export(context.Background())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "API token is invalid.")
}

func Test_ExportAbortsOnUnwritableSink(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listJSON()))
	}))
	defer s.Close()

	notADir := filepath.Join(t.TempDir(), "occupied")
	assert.Nil(t, os.WriteFile(notADir, []byte("x"), 0644))

	err := newExporterAgainst(s, filepath.Join(notADir, "output")).Export(context.Background())
	var sinkErr *SinkWriteError
	assert.True(t, errors.As(err, &sinkErr))
}

func Test_ExportDownloadsFiles(t *testing.T) {
	var blocksJSON string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search":
			w.Write([]byte(listJSON(pageJSON(pageID, "Gallery"))))
		case strings.HasPrefix(r.URL.Path, "/pages/"):
			w.Write([]byte(pageJSON(pageID, "Gallery")))
		case strings.HasPrefix(r.URL.Path, "/blocks/"):
			w.Write([]byte(blocksJSON))
		case r.URL.Path == "/cover.png":
			w.Write([]byte("imagebytes"))
		}
	}))
	defer s.Close()

	imageJSON := fmt.Sprintf(`{
		"object": "block",
		"id": "8b4f2d3a-a5c1-4f01-8c2f-0d71a3a55a91",
		"has_children": false,
		"archived": false,
		"type": "image",
		"image": {
			"type": "external",
			"external": {"url": "%s/cover.png"},
			"caption": []
		}
	}`, s.URL)
	blocksJSON = listJSON(imageJSON)

	dir := t.TempDir()
	c := client.NewClient()
	c.BasePath = s.URL
	e := NewExporter(c, Options{APIKey: "key", OutputDir: dir, PageSize: 100, DownloadFiles: true})
	assert.Nil(t, e.Export(context.Background()))

	b, err := os.ReadFile(filepath.Join(dir, "Gallery.md"))
	assert.Nil(t, err)
	assert.Equal(t, fmt.Sprintf("![[%s/cover.png]]\n", s.URL), string(b))

	entries, err := os.ReadDir(filepath.Join(dir, "files"))
	assert.Nil(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".png"))
}
