package pagination

import "net/url"

// PageMeta carries the paging references of a collection.
// Next and Previous are nil at the respective boundary.
type PageMeta struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Total    int64   `json:"total"`
	Offset   int     `json:"offset"`
	Limit    int     `json:"limit"`
}

// Collection is the paged list envelope served by the API
type Collection[T any] struct {
	Meta    PageMeta `json:"Meta"`
	Objects []T      `json:"Objects"`
}

// NewCollection creates a collection whose references point back at basePath
func NewCollection[T any](items []T, total int64, cursor Cursor, basePath string) *Collection[T] {
	if items == nil {
		items = make([]T, 0)
	}

	meta := PageMeta{
		Total:  total,
		Offset: cursor.Offset,
		Limit:  cursor.Limit,
	}
	if next, ok := cursor.Next(total); ok {
		ref := Reference(basePath, next)
		meta.Next = &ref
	}
	if prev, ok := cursor.Previous(); ok {
		ref := Reference(basePath, prev)
		meta.Previous = &ref
	}

	return &Collection[T]{
		Meta:    meta,
		Objects: items,
	}
}

// Reference renders basePath with the cursor embedded as query parameters.
// Existing query parameters of basePath other than offset and limit are kept.
func Reference(basePath string, c Cursor) string {
	u, err := url.Parse(basePath)
	if err != nil {
		return basePath + "?" + c.Query().Encode()
	}
	q := u.Query()
	for k, v := range c.Query() {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}
