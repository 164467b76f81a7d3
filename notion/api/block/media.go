package block

import (
	"github.com/anytypeio/go-notion-export/notion/api"
)

// MediaObject is a file object as it appears inside a media block payload,
// the caption rides along with it.
type MediaObject struct {
	api.FileObject
	Caption []api.RichText `json:"caption,omitempty"`
}

type ImageBlock struct {
	Block
	Image MediaObject `json:"image"`
}

type VideoBlock struct {
	Block
	Video MediaObject `json:"video"`
}

type FileBlock struct {
	Block
	File MediaObject `json:"file"`
}

type PdfBlock struct {
	Block
	Pdf MediaObject `json:"pdf"`
}
