package paging

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
)

// Location is a navigable address the list view reads and rewrites
type Location interface {
	Path() string
	SetPath(path string)
}

// RefreshFunc reloads the list for the given cursor. It may start
// asynchronous work; the controller never waits for it.
type RefreshFunc func(c pagination.Cursor)

type subscriber struct {
	id int
	fn func(pagination.Cursor)
}

// Controller keeps a cursor consistent with a refresh callback and the path
// of a Location.
type Controller struct {
	mu      sync.Mutex
	loc     Location
	refresh RefreshFunc
	cursor  pagination.Cursor
	meta    *pagination.PageMeta

	subs   []subscriber
	nextID int
}

// Attach binds a controller to loc starting at initial. Zero fields of
// initial fall back to the defaults. Attach neither refreshes nor navigates.
func Attach(loc Location, initial pagination.Cursor, refresh RefreshFunc) (*Controller, error) {
	c := initial.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("initial cursor: %w", err)
	}
	if refresh == nil {
		refresh = func(pagination.Cursor) {}
	}

	return &Controller{
		loc:     loc,
		refresh: refresh,
		cursor:  c,
	}, nil
}

// AttachFromLocation seeds the cursor from the trailing /<offset>/<limit>
// pair of the current path. Missing or unusable values fall back to the
// defaults.
func AttachFromLocation(loc Location, refresh RefreshFunc) *Controller {
	initial := pagination.DefaultCursor()

	c, ok, err := CursorFromPath(loc.Path())
	switch {
	case err != nil:
		slog.Warn("Ignoring cursor in location path", "path", loc.Path(), "error", err)
	case ok:
		initial = c
	}

	ctl, _ := Attach(loc, initial, refresh)
	return ctl
}

// Cursor returns the live cursor
func (ctl *Controller) Cursor() pagination.Cursor {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.cursor
}

// Limits returns the selectable page sizes in display form
func (ctl *Controller) Limits() []string {
	return pagination.LimitStrings()
}

// Observe records the metadata of the most recently loaded collection
func (ctl *Controller) Observe(meta pagination.PageMeta) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.meta = &meta
}

// NextPage moves to the page referenced by the observed next reference.
// It is a no-op when there is none.
func (ctl *Controller) NextPage() error {
	return ctl.follow("next", func(m pagination.PageMeta) *string { return m.Next })
}

// PreviousPage moves to the page referenced by the observed previous
// reference. It is a no-op when there is none.
func (ctl *Controller) PreviousPage() error {
	return ctl.follow("previous", func(m pagination.PageMeta) *string { return m.Previous })
}

func (ctl *Controller) follow(direction string, pick func(pagination.PageMeta) *string) error {
	ctl.mu.Lock()
	var ref *string
	if ctl.meta != nil {
		ref = pick(*ctl.meta)
	}
	ctl.mu.Unlock()

	if ref == nil {
		return nil
	}

	c, err := ParseReference(*ref)
	if err != nil {
		return fmt.Errorf("%s page: %w", direction, err)
	}

	ctl.commit(c, true)
	return nil
}

// SetLimit commits a page size chosen in the UI. The offset is kept.
func (ctl *Controller) SetLimit(limit int) error {
	current := ctl.Cursor()
	if limit == current.Limit {
		return nil
	}

	c, err := pagination.NewCursor(current.Offset, limit)
	if err != nil {
		return err
	}

	ctl.commit(c, true)
	return nil
}

// SetLimitString is SetLimit for values bound as strings
func (ctl *Controller) SetLimitString(limit string) error {
	v, err := strconv.Atoi(limit)
	if err != nil {
		return fmt.Errorf("limit %q: %w", limit, pagination.ErrInvalidNumber)
	}
	return ctl.SetLimit(v)
}

// SetOffset commits an offset chosen in the UI. The limit is kept.
func (ctl *Controller) SetOffset(offset int) error {
	current := ctl.Cursor()
	if offset == current.Offset {
		return nil
	}

	c, err := pagination.NewCursor(offset, current.Limit)
	if err != nil {
		return err
	}

	ctl.commit(c, true)
	return nil
}

// Navigated handles an inbound navigation to path. When path carries a
// cursor different from the current one the list is refreshed; the location
// is left as is.
func (ctl *Controller) Navigated(path string) error {
	c, ok, err := CursorFromPath(path)
	if err != nil {
		return fmt.Errorf("navigation to %q: %w", path, err)
	}
	if !ok || c == ctl.Cursor() {
		return nil
	}

	ctl.commit(c, false)
	return nil
}

// Subscribe registers fn to be called after every cursor change
func (ctl *Controller) Subscribe(fn func(pagination.Cursor)) (unsubscribe func()) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	id := ctl.nextID
	ctl.nextID++
	ctl.subs = append(ctl.subs, subscriber{id: id, fn: fn})

	return func() {
		ctl.mu.Lock()
		defer ctl.mu.Unlock()
		for i, s := range ctl.subs {
			if s.id == id {
				ctl.subs = append(ctl.subs[:i:i], ctl.subs[i+1:]...)
				return
			}
		}
	}
}

// commit stores c, fires the refresh, rewrites the location when asked and
// notifies subscribers, in that order. The metadata observed for the previous
// cursor is dropped so next/previous wait for the new page.
func (ctl *Controller) commit(c pagination.Cursor, rewrite bool) {
	ctl.mu.Lock()
	ctl.cursor = c
	ctl.meta = nil
	subs := make([]subscriber, len(ctl.subs))
	copy(subs, ctl.subs)
	ctl.mu.Unlock()

	slog.Debug("Paging cursor changed", "offset", c.Offset, "limit", c.Limit, "rewrite", rewrite)

	ctl.refresh(c)

	if rewrite {
		ctl.loc.SetPath(RewritePath(ctl.loc.Path(), c))
	}

	for _, s := range subs {
		s.fn(c)
	}
}
