package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RichTextToStringOrder(t *testing.T) {
	rt := []RichText{
		{PlainText: "Hello, "},
		{PlainText: "world"},
		{PlainText: "!"},
	}
	assert.Equal(t, "Hello, world!", RichTextToString(rt))
}

func Test_RichTextToStringLength(t *testing.T) {
	rt := []RichText{
		{PlainText: "abc"},
		{PlainText: ""},
		{PlainText: "de"},
	}
	got := RichTextToString(rt)
	assert.Equal(t, len("abc")+len("de"), len(got))
}

func Test_RichTextToStringEmpty(t *testing.T) {
	assert.Equal(t, "", RichTextToString(nil))
	assert.Equal(t, "", RichTextToString([]RichText{}))
}

func Test_FileObjectURLExternal(t *testing.T) {
	f := &FileObject{
		Type:     External,
		External: FileProperty{URL: "https://example.com/pic.png"},
	}
	assert.Equal(t, "https://example.com/pic.png", f.URL())
}

func Test_FileObjectURLHosted(t *testing.T) {
	f := &FileObject{
		Type: File,
		File: FileProperty{URL: "https://files.notion.so/pic.png"},
	}
	assert.Equal(t, "https://files.notion.so/pic.png", f.URL())
}

func Test_ObjectURL(t *testing.T) {
	url := ObjectURL("649c1778-2ba1-4edb-8f0a-b224f9ff27b8")
	assert.Equal(t, "http://notion.so/649c17782ba14edb8f0ab224f9ff27b8", url)
}
