package block

type DividerBlock struct {
	Block
	Divider struct{} `json:"divider"`
}

type TableOfContentsBlock struct {
	Block
	TableOfContent TableOfContentsObject `json:"table_of_contents"`
}

type TableOfContentsObject struct {
	Color string `json:"color"`
}

type BreadcrumbBlock struct {
	Block
	Breadcrumb struct{} `json:"breadcrumb"`
}

type TemplateBlock struct {
	Block
	Template TextObjectWithChildren `json:"template"`
}

type SyncedBlock struct {
	Block
	Synced SyncedObject `json:"synced_block"`
}

type SyncedObject struct {
	SyncedFrom *SyncedFrom `json:"synced_from"`
}

type SyncedFrom struct {
	BlockID string `json:"block_id"`
}

type UnsupportedBlock struct {
	Block
}

// UnknownBlock stands in for any type tag the exporter doesn't recognize.
// It keeps the head so the tag survives for logging.
type UnknownBlock struct {
	Block
}
