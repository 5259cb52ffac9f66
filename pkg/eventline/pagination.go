package eventline

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Pagination defaults applied by NewCursor.
const (
	DefaultPageSize = 20
	DefaultSort     = "id"
	OrderAsc        = "asc"
	OrderDesc       = "desc"
)

// Cursor marks a position in a paginated collection.
//
// Zero fields are left out of request parameters, so a cursor received from
// a page is sent back exactly as the server produced it.
type Cursor struct {
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty"  yaml:"after,omitempty"`
	Size   int    `json:"size,omitempty"   yaml:"size,omitempty"`
	Sort   string `json:"sort,omitempty"   yaml:"sort,omitempty"`
	Order  string `json:"order,omitempty"  yaml:"order,omitempty"`
}

// NewCursor returns the cursor of the first page of a collection.
func NewCursor() *Cursor {
	return &Cursor{
		Size:  DefaultPageSize,
		Sort:  DefaultSort,
		Order: OrderAsc,
	}
}

// ObjectName implements ReadableObject.
func (c *Cursor) ObjectName() string {
	return "cursor"
}

// ReadData implements ReadableObject.
func (c *Cursor) ReadData(r *ObjectReader) {
	r.StringDefault("before", &c.Before, "")
	r.StringDefault("after", &c.After, "")
	r.IntegerDefault("size", &c.Size, 0)
	r.StringDefault("sort", &c.Sort, "")
	r.StringDefault("order", &c.Order, "")
}

// Values returns the request parameters selecting the page marked by c.
func (c *Cursor) Values() url.Values {
	values := url.Values{}
	if c == nil {
		return values
	}

	if c.Before != "" {
		values.Set("before", c.Before)
	}

	if c.After != "" {
		values.Set("after", c.After)
	}

	if c.Size != 0 {
		values.Set("size", strconv.Itoa(c.Size))
	}

	if c.Sort != "" {
		values.Set("sort", c.Sort)
	}

	if c.Order != "" {
		values.Set("order", c.Order)
	}

	return values
}

// CursorFromValues parses request parameters produced by Cursor.Values.
func CursorFromValues(values url.Values) (*Cursor, error) {
	cursor := &Cursor{
		Before: values.Get("before"),
		After:  values.Get("after"),
		Sort:   values.Get("sort"),
		Order:  values.Get("order"),
	}

	if size := values.Get("size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return nil, fmt.Errorf("parsing cursor size: %w", err)
		}

		cursor.Size = n
	}

	return cursor, nil
}

// Page is one slice of a paginated collection.
//
// Next is set iff elements exist after this page; Previous is set iff
// elements exist before it.
type Page[T any] struct {
	Elements []T    `json:"elements"           yaml:"elements"`
	Previous *Cursor `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next     *Cursor `json:"next,omitempty"     yaml:"next,omitempty"`
}

// HasNext reports whether more elements follow this page.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != nil
}

// HasPrevious reports whether elements precede this page.
func (p *Page[T]) HasPrevious() bool {
	return p != nil && p.Previous != nil
}

type pageObject[T any, P ObjectPointer[T]] struct {
	page *Page[T]
}

func (o pageObject[T, P]) ObjectName() string {
	return "page"
}

func (o pageObject[T, P]) ReadData(r *ObjectReader) {
	ReadObjectArray[T, P](r, "elements", &o.page.Elements)
	ReadOptionalObject(r, "previous", &o.page.Previous)
	ReadOptionalObject(r, "next", &o.page.Next)
}

// DecodePage decodes a page document whose elements are of type T.
func DecodePage[T any, P ObjectPointer[T]](doc Document) (*Page[T], error) {
	page := &Page[T]{}

	err := Decode(doc, pageObject[T, P]{page: page})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// PageFetcher fetches the page selected by cursor.
type PageFetcher[T any] func(ctx context.Context, cursor *Cursor) (*Page[T], error)

// FetchAll follows next cursors from cursor until the last page and returns
// every element in order. A nil cursor starts from NewCursor.
func FetchAll[T any](ctx context.Context, cursor *Cursor, fetch PageFetcher[T]) ([]T, error) {
	if cursor == nil {
		cursor = NewCursor()
	}

	seen := map[Cursor]struct{}{*cursor: {}}

	var all []T

	for {
		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("fetching pages: %w", err)
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Elements...)

		if page.Next == nil {
			return all, nil
		}

		next := *page.Next
		if _, found := seen[next]; found {
			return nil, fmt.Errorf("%w: %+v", ErrPaginationLoop, next)
		}

		seen[next] = struct{}{}
		cursor = &next
	}
}
