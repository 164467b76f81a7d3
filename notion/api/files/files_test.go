package files

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DownloadAllSuccess(t *testing.T) {
	var calls int
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("imagebytes"))
	}))
	defer s.Close()

	dir := t.TempDir()
	d := NewDownloader(dir)
	fileURL := s.URL + "/cover.png"
	err := d.DownloadAll(context.Background(), []string{fileURL, fileURL})
	assert.Nil(t, err)
	assert.Equal(t, 1, calls)

	b, err := os.ReadFile(filepath.Join(dir, "files", localName(fileURL)))
	assert.Nil(t, err)
	assert.Equal(t, "imagebytes", string(b))
	assert.True(t, strings.HasSuffix(localName(fileURL), ".png"))
}

func Test_DownloadAllPartialFailure(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.pdf") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	dir := t.TempDir()
	d := NewDownloader(dir)
	err := d.DownloadAll(context.Background(), []string{s.URL + "/ok.jpg", s.URL + "/missing.pdf"})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "bad status code: 404")

	b, rerr := os.ReadFile(filepath.Join(dir, "files", localName(s.URL+"/ok.jpg")))
	assert.Nil(t, rerr)
	assert.Equal(t, "ok", string(b))
}

func Test_DownloadAllRemembersFetched(t *testing.T) {
	var calls int
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("once"))
	}))
	defer s.Close()

	d := NewDownloader(t.TempDir())
	fileURL := s.URL + "/diagram.svg"
	assert.Nil(t, d.DownloadAll(context.Background(), []string{fileURL}))
	assert.Nil(t, d.DownloadAll(context.Background(), []string{fileURL}))
	assert.Equal(t, 1, calls)
}
