package paging

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
)

var trailingCursor = regexp.MustCompile(`/(\d+)/(\d+)/?$`)

// RewritePath replaces the trailing /<offset>/<limit> segment pair of path
// with the one of c, appending the pair when path has none.
func RewritePath(path string, c pagination.Cursor) string {
	base := trailingCursor.ReplaceAllString(path, "")
	base = strings.TrimRight(base, "/")

	return base + "/" + strconv.Itoa(c.Offset) + "/" + strconv.Itoa(c.Limit)
}

// CursorFromPath reads the trailing /<offset>/<limit> segment pair of path.
// The boolean is false when path carries no pair.
func CursorFromPath(path string) (pagination.Cursor, bool, error) {
	m := trailingCursor.FindStringSubmatch(path)
	if m == nil {
		return pagination.Cursor{}, false, nil
	}

	offset, err := strconv.Atoi(m[1])
	if err != nil {
		return pagination.Cursor{}, true, pagination.ErrInvalidNumber
	}
	limit, err := strconv.Atoi(m[2])
	if err != nil {
		return pagination.Cursor{}, true, pagination.ErrInvalidNumber
	}

	c, err := pagination.NewCursor(offset, limit)
	return c, true, err
}
