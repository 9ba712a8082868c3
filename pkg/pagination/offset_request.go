package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
)

var (
	ErrNegativeOffset   = errors.New("offset must not be negative")
	ErrUnsupportedLimit = errors.New("unsupported limit")
	ErrInvalidNumber    = errors.New("value is not a number")
)

// Cursor is the (offset, limit) pair describing the displayed page of a list
type Cursor struct {
	Offset int `json:"offset" query:"offset"`
	Limit  int `json:"limit" query:"limit"`
}

// DefaultCursor returns the cursor of the first page with the default size
func DefaultCursor() Cursor {
	return Cursor{Offset: DefaultOffset, Limit: DefaultLimit}
}

// NewCursor builds a validated cursor
func NewCursor(offset, limit int) (Cursor, error) {
	c := Cursor{Offset: offset, Limit: limit}
	if err := c.Validate(); err != nil {
		return Cursor{}, err
	}
	return c, nil
}

// Validate checks the offset bound and that the limit is one of AllowedLimits
func (c Cursor) Validate() error {
	if c.Offset < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOffset, c.Offset)
	}
	if !IsAllowedLimit(c.Limit) {
		return fmt.Errorf("%w: %d, expected one of %v", ErrUnsupportedLimit, c.Limit, AllowedLimits)
	}
	return nil
}

// WithDefaults replaces zero fields with their defaults
func (c Cursor) WithDefaults() Cursor {
	if c.Limit == 0 {
		c.Limit = DefaultLimit
	}
	return c
}

// Query converts the cursor into HTTP GET query parameters
func (c Cursor) Query() url.Values {
	q := url.Values{}
	q.Set(offsetKey, strconv.Itoa(c.Offset))
	q.Set(limitKey, strconv.Itoa(c.Limit))
	return q
}

// Next returns the cursor of the following page, false when c is the last page
func (c Cursor) Next(total int64) (Cursor, bool) {
	if int64(c.Offset) >= total-int64(c.Limit) {
		return Cursor{}, false
	}
	return Cursor{Offset: c.Offset + c.Limit, Limit: c.Limit}, true
}

// Previous returns the cursor of the preceding page, false when c is the first page.
// The offset is clamped at zero.
func (c Cursor) Previous() (Cursor, bool) {
	if c.Offset <= 0 {
		return Cursor{}, false
	}
	return Cursor{Offset: max(c.Offset-c.Limit, 0), Limit: c.Limit}, true
}

func (c Cursor) String() string {
	return fmt.Sprintf("offset=%d limit=%d", c.Offset, c.Limit)
}

// IsAllowedLimit reports whether limit is one of AllowedLimits
func IsAllowedLimit(limit int) bool {
	return slices.Contains(AllowedLimits, limit)
}

// LimitStrings returns AllowedLimits in their display form
func LimitStrings() []string {
	out := make([]string, len(AllowedLimits))
	for i, l := range AllowedLimits {
		out[i] = strconv.Itoa(l)
	}
	return out
}

// ParseQuery parses `offset` and `limit` from a request query.
// Absent keys fall back to defaults, present but invalid values are an error.
func ParseQuery(query url.Values) (Cursor, error) {
	c := DefaultCursor()

	if s := query.Get(offsetKey); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Cursor{}, fmt.Errorf("%w: offset %q", ErrInvalidNumber, s)
		}
		c.Offset = v
	}

	if s := query.Get(limitKey); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Cursor{}, fmt.Errorf("%w: limit %q", ErrInvalidNumber, s)
		}
		c.Limit = v
	}

	if err := c.Validate(); err != nil {
		return Cursor{}, err
	}
	return c, nil
}
