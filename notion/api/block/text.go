package block

import (
	"github.com/anytypeio/go-notion-export/notion/api"
)

type ParagraphBlock struct {
	Block
	Paragraph TextObjectWithChildren `json:"paragraph"`
}

func (p *ParagraphBlock) SetChildren(children []interface{}) {
	p.Paragraph.Children = children
}

type Heading1Block struct {
	Block
	Heading1 HeadingObject `json:"heading_1"`
}

type Heading2Block struct {
	Block
	Heading2 HeadingObject `json:"heading_2"`
}

type Heading3Block struct {
	Block
	Heading3 HeadingObject `json:"heading_3"`
}

type HeadingObject struct {
	TextObject
	IsToggleable bool `json:"is_toggleable"`
}

type CalloutBlock struct {
	Block
	Callout CalloutObject `json:"callout"`
}

func (c *CalloutBlock) SetChildren(children []interface{}) {
	c.Callout.Children = children
}

type CalloutObject struct {
	TextObjectWithChildren
	Icon *api.Icon `json:"icon"`
}

type QuoteBlock struct {
	Block
	Quote TextObjectWithChildren `json:"quote"`
}

func (q *QuoteBlock) SetChildren(children []interface{}) {
	q.Quote.Children = children
}

type BulletedListBlock struct {
	Block
	BulletedList TextObjectWithChildren `json:"bulleted_list_item"`
}

func (b *BulletedListBlock) SetChildren(children []interface{}) {
	b.BulletedList.Children = children
}

type NumberedListBlock struct {
	Block
	NumberedList TextObjectWithChildren `json:"numbered_list_item"`
}

func (n *NumberedListBlock) SetChildren(children []interface{}) {
	n.NumberedList.Children = children
}

type ToDoBlock struct {
	Block
	ToDo ToDoObject `json:"to_do"`
}

func (t *ToDoBlock) SetChildren(children []interface{}) {
	t.ToDo.Children = children
}

type ToDoObject struct {
	TextObjectWithChildren
	Checked bool `json:"checked"`
}

type ToggleBlock struct {
	Block
	Toggle TextObjectWithChildren `json:"toggle"`
}

func (t *ToggleBlock) SetChildren(children []interface{}) {
	t.Toggle.Children = children
}

type TextObjectWithChildren struct {
	TextObject
	Children []interface{} `json:"children,omitempty"`
}

type TextObject struct {
	RichText []api.RichText `json:"rich_text"`
	Color    string         `json:"color"`
}

type CodeBlock struct {
	Block
	Code CodeObject `json:"code"`
}

type CodeObject struct {
	RichText []api.RichText `json:"rich_text"`
	Caption  []api.RichText `json:"caption"`
	Language string         `json:"language"`
}

type EquationBlock struct {
	Block
	Equation api.EquationObject `json:"equation"`
}
