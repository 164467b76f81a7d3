package markdown

import (
	"fmt"
	"io"

	"github.com/anytypeio/go-notion-export/notion/api/block"
)

// renderMedia embeds the remote location and remembers it for the
// optional download pass.
func (r *Renderer) renderMedia(w io.Writer, m block.MediaObject) error {
	url := m.URL()
	r.fileURLs = append(r.fileURLs, url)
	_, err := fmt.Fprintf(w, "![[%s]]\n", url)
	return err
}
