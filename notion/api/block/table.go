package block

import (
	"github.com/anytypeio/go-notion-export/notion/api"
)

type TableBlock struct {
	Block
	Table TableObject `json:"table"`
}

type TableObject struct {
	TableWidth      int64 `json:"table_width"`
	HasColumnHeader bool  `json:"has_column_header"`
	HasRowHeader    bool  `json:"has_row_header"`
}

type TableRowBlock struct {
	Block
	TableRow TableRowObject `json:"table_row"`
}

type TableRowObject struct {
	Cells [][]api.RichText `json:"cells"`
}

type ColumnListBlock struct {
	Block
	ColumnList interface{} `json:"column_list"`
}

func (c *ColumnListBlock) SetChildren(children []interface{}) {
	c.ColumnList = children
}

type ColumnBlock struct {
	Block
	Column *ColumnObject `json:"column"`
}

type ColumnObject struct {
	Children []interface{} `json:"children"`
}

func (c *ColumnBlock) SetChildren(children []interface{}) {
	if c.Column == nil {
		c.Column = &ColumnObject{}
	}
	c.Column.Children = children
}
