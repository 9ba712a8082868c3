package paging

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
)

// ErrMalformedReference is returned when a next/previous reference does not
// carry a usable offset and limit.
var ErrMalformedReference = errors.New("malformed page reference")

// ParseReference extracts the cursor embedded in the query of a page
// reference. The reference may be absolute or relative.
func ParseReference(ref string) (pagination.Cursor, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return pagination.Cursor{}, fmt.Errorf("%w %q: %w", ErrMalformedReference, ref, err)
	}

	q := u.Query()

	offset, err := requiredInt(q, "offset")
	if err != nil {
		return pagination.Cursor{}, fmt.Errorf("%w %q: %w", ErrMalformedReference, ref, err)
	}
	limit, err := requiredInt(q, "limit")
	if err != nil {
		return pagination.Cursor{}, fmt.Errorf("%w %q: %w", ErrMalformedReference, ref, err)
	}

	c, err := pagination.NewCursor(offset, limit)
	if err != nil {
		return pagination.Cursor{}, fmt.Errorf("%w %q: %w", ErrMalformedReference, ref, err)
	}
	return c, nil
}

func requiredInt(q url.Values, key string) (int, error) {
	if !q.Has(key) {
		return 0, fmt.Errorf("missing %s parameter", key)
	}
	v, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s parameter: %w", key, pagination.ErrInvalidNumber)
	}
	return v, nil
}
