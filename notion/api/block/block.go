package block

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/anytypeio/go-notion-export/notion/api"
	"github.com/anytypeio/go-notion-export/notion/api/client"
	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var log = logging.Logger("notion-get-blocks")

const endpoint = "/blocks/%s/children?page_size=%s"

type Service struct {
	client *client.Client
}

// New is a constructor for Service
func New(client *client.Client) *Service {
	return &Service{
		client: client,
	}
}

// Block is the head shared by every block object from Notion
// https://developers.notion.com/reference/block
type Block struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	Parent         api.Parent `json:"parent"`
	Type           string     `json:"type"`
	CreatedTime    string     `json:"created_time"`
	LastEditedTime string     `json:"last_edited_time"`
	CreatedBy      api.User   `json:"created_by,omitempty"`
	LastEditedBy   api.User   `json:"last_edited_by,omitempty"`
	Archived       bool       `json:"archived"`
	HasChildren    bool       `json:"has_children"`
}

func (b *Block) GetID() string {
	return b.ID
}

func (b *Block) HasChild() bool {
	return b.HasChildren
}

// ChildSetter is implemented by block types that own their children. The
// children endpoint doesn't inline them, so they are fetched separately and
// attached here.
type ChildSetter interface {
	GetID() string
	HasChild() bool
	SetChildren(children []interface{})
}

type Response struct {
	Object     string            `json:"object"`
	Results    []json.RawMessage `json:"results"`
	NextCursor *string           `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}

// GetBlocksAndChildren retrieves the full child list of the given block,
// batch by batch, following the continuation cursor until the server omits
// it. Batches are appended in server order. Blocks reporting children of
// their own get them fetched and attached before the list is returned. Any
// failure mid sequence discards everything retrieved so far.
func (s *Service) GetBlocksAndChildren(ctx context.Context, blockID, apiKey string, pageSize int64) ([]interface{}, error) {
	allBlocks := make([]interface{}, 0)
	var startCursor string
	for {
		response, err := s.getBlocks(ctx, blockID, apiKey, pageSize, startCursor)
		if err != nil {
			return nil, err
		}
		for _, raw := range response.Results {
			bl, err := getBlock(raw)
			if err != nil {
				return nil, err
			}
			if cs, ok := bl.(ChildSetter); ok && cs.HasChild() {
				children, err := s.GetBlocksAndChildren(ctx, cs.GetID(), apiKey, pageSize)
				if err != nil {
					return nil, err
				}
				cs.SetChildren(children)
			}
			allBlocks = append(allBlocks, bl)
		}
		if !response.HasMore || response.NextCursor == nil {
			break
		}
		startCursor = *response.NextCursor
	}
	return allBlocks, nil
}

func (s *Service) getBlocks(ctx context.Context, blockID, apiKey string, pageSize int64, startCursor string) (*Response, error) {
	url := fmt.Sprintf(endpoint, blockID, strconv.FormatInt(pageSize, 10))
	if startCursor != "" {
		url += "&start_cursor=" + startCursor
	}

	req, err := s.client.PrepareRequest(ctx, apiKey, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, client.TransformHTTPCodeToError(b)
	}
	var response Response
	if err = json.Unmarshal(b, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// getBlock decodes one result into the variant matching its type tag.
// A tag without a matching variant decodes to UnknownBlock.
func getBlock(raw json.RawMessage) (interface{}, error) {
	var base Block
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, err
	}
	var bl interface{}
	switch base.Type {
	case "paragraph":
		bl = &ParagraphBlock{}
	case "heading_1":
		bl = &Heading1Block{}
	case "heading_2":
		bl = &Heading2Block{}
	case "heading_3":
		bl = &Heading3Block{}
	case "callout":
		bl = &CalloutBlock{}
	case "quote":
		bl = &QuoteBlock{}
	case "bulleted_list_item":
		bl = &BulletedListBlock{}
	case "numbered_list_item":
		bl = &NumberedListBlock{}
	case "to_do":
		bl = &ToDoBlock{}
	case "toggle":
		bl = &ToggleBlock{}
	case "code":
		bl = &CodeBlock{}
	case "equation":
		bl = &EquationBlock{}
	case "child_page":
		bl = &ChildPageBlock{}
	case "child_database":
		bl = &ChildDatabaseBlock{}
	case "image":
		bl = &ImageBlock{}
	case "video":
		bl = &VideoBlock{}
	case "file":
		bl = &FileBlock{}
	case "pdf":
		bl = &PdfBlock{}
	case "embed":
		bl = &EmbedBlock{}
	case "bookmark":
		bl = &BookmarkBlock{}
	case "link_preview":
		bl = &LinkPreviewBlock{}
	case "link_to_page":
		bl = &LinkToPageBlock{}
	case "divider":
		bl = &DividerBlock{}
	case "table_of_contents":
		bl = &TableOfContentsBlock{}
	case "breadcrumb":
		bl = &BreadcrumbBlock{}
	case "template":
		bl = &TemplateBlock{}
	case "synced_block":
		bl = &SyncedBlock{}
	case "table":
		bl = &TableBlock{}
	case "table_row":
		bl = &TableRowBlock{}
	case "column_list":
		bl = &ColumnListBlock{}
	case "column":
		bl = &ColumnBlock{}
	case "unsupported":
		bl = &UnsupportedBlock{}
	default:
		log.Debugf("block type %s is not supported", base.Type)
		return &UnknownBlock{Block: base}, nil
	}
	if err := json.Unmarshal(raw, bl); err != nil {
		return nil, err
	}
	return bl, nil
}
