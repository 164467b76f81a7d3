package files

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/miolini/datacounter"
	"github.com/samber/lo"

	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var log = logging.Logger("notion-files")

const downloadTimeout = 5 * time.Minute

// Downloader fetches media referenced by exported pages into a files
// directory next to the rendered documents. Embed markers in the
// rendered output keep their remote URLs, the local copies are a
// convenience for offline reading.
type Downloader struct {
	dirPath string
	client  *http.Client

	downloaded map[string]string
}

// NewDownloader is a constructor for Downloader. Files land under
// <outputDir>/files.
func NewDownloader(outputDir string) *Downloader {
	return &Downloader{
		dirPath:    filepath.Join(outputDir, "files"),
		client:     &http.Client{Timeout: downloadTimeout},
		downloaded: make(map[string]string, 0),
	}
}

// DownloadAll fetches every URL it has not seen before, one at a time.
// Failures are collected per URL into one returned error and the
// remaining URLs are still attempted.
func (d *Downloader) DownloadAll(ctx context.Context, urls []string) error {
	urls = lo.Uniq(urls)
	var (
		allErrors error
		count     int
		total     uint64
	)
	for _, u := range urls {
		if _, ok := d.downloaded[u]; ok {
			continue
		}
		localPath, written, err := d.download(ctx, u)
		if err != nil {
			allErrors = multierror.Append(allErrors, fmt.Errorf("download %s: %w", u, err))
			continue
		}
		d.downloaded[u] = localPath
		count++
		total += written
	}
	if count > 0 {
		log.Infof("downloaded %d files (%d bytes)", count, total)
	}
	return allErrors
}

func (d *Downloader) download(ctx context.Context, rawURL string) (string, uint64, error) {
	if err := os.MkdirAll(d.dirPath, 0755); err != nil {
		return "", 0, err
	}
	fullPath := filepath.Join(d.dirPath, localName(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", 0, err
	}
	counter := datacounter.NewReaderCounter(resp.Body)
	_, err = io.Copy(out, counter)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(fullPath); rerr != nil {
			log.Warnf("remove partial download %s: %v", fullPath, rerr)
		}
		return "", 0, err
	}
	return fullPath, counter.Count(), nil
}

// localName keeps the url extension so the copy stays openable, the rest
// of the name is hashed to avoid collisions between hosts.
func localName(rawURL string) string {
	sum := md5.Sum([]byte(rawURL))
	name := hex.EncodeToString(sum[:])
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			name += ext
		}
	}
	return name
}
