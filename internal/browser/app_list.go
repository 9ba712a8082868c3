package browser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/internal/location"
	"github.com/DjordjeVuckovic/ship-console/pkg/objdiff"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/DjordjeVuckovic/ship-console/pkg/paging"
	"github.com/DjordjeVuckovic/ship-console/pkg/urlutil"
)

const helpText = `commands:
  n            next page
  p            previous page
  l <limit>    page size, one of %s
  o <offset>   jump to offset
  f [prefix]   filter apps by name prefix
  g <url>      navigate to a console path or URL
  b            back
  r            reload the current page
  s <name>     show one app
  q            quit
`

// AppSource is where the list view loads apps from
type AppSource interface {
	List(ctx context.Context, cursor pagination.Cursor, query string) (*pagination.Collection[domain.App], error)
	Get(ctx context.Context, name string) (*domain.App, error)
}

// AppList is the terminal app list view. Its cursor lives in the path of an
// in-memory history. Cursor changes schedule a reload that runs once the
// current command is done.
type AppList struct {
	source AppSource
	loc    *location.History
	ctl    *paging.Controller
	out    io.Writer

	query   string
	shown   map[string]domain.App
	pending *pagination.Cursor
	lastErr error
}

// NewAppList enters the list view at the path loc currently holds
func NewAppList(source AppSource, loc *location.History, out io.Writer) *AppList {
	a := &AppList{
		source: source,
		loc:    loc,
		out:    out,
		shown:  map[string]domain.App{},
	}
	a.ctl = paging.AttachFromLocation(loc, a.schedule)
	return a
}

// Cursor returns the cursor of the displayed page
func (a *AppList) Cursor() pagination.Cursor {
	return a.ctl.Cursor()
}

// Err returns the error of the last load, nil when it succeeded
func (a *AppList) Err() error {
	return a.lastErr
}

// SetQuery sets the name prefix filter without reloading
func (a *AppList) SetQuery(prefix string) {
	a.query = prefix
}

// Start loads the first page
func (a *AppList) Start(ctx context.Context) {
	a.load(ctx, a.ctl.Cursor())
}

// schedule is the refresh callback of the paging controller
func (a *AppList) schedule(c pagination.Cursor) {
	a.pending = &c
}

// flush runs the reload scheduled by the last command, if any
func (a *AppList) flush(ctx context.Context) {
	if a.pending == nil {
		return
	}
	c := *a.pending
	a.pending = nil
	a.load(ctx, c)
}

func (a *AppList) load(ctx context.Context, c pagination.Cursor) {
	col, err := a.source.List(ctx, c, a.query)
	a.lastErr = err
	if err != nil {
		slog.Error("Failed to load apps", "offset", c.Offset, "limit", c.Limit, "error", err)
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.ctl.Observe(col.Meta)
	a.render(c, col)
}

func (a *AppList) render(c pagination.Cursor, col *pagination.Collection[domain.App]) {
	meta := col.Meta
	fmt.Fprintf(a.out, "\napps %s  (%d-%d of %d)", c, min(meta.Offset+1, int(meta.Total)), min(meta.Offset+len(col.Objects), int(meta.Total)), meta.Total)
	if a.query != "" {
		fmt.Fprintf(a.out, "  filter: %q", a.query)
	}
	fmt.Fprintln(a.out)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tENVIRONMENT\tVERSION\tMAINTENANCE\tDOMAINS")
	fmt.Fprintln(tw, "---\t---\t---\t---\t---")
	for _, app := range col.Objects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", app.Name, app.Environment, app.Version, app.Maintenance, strings.Join(app.Domains, ","))
	}
	tw.Flush()

	a.printChanges(col.Objects)

	var nav []string
	if meta.Previous != nil {
		nav = append(nav, "[p]revious")
	}
	if meta.Next != nil {
		nav = append(nav, "[n]ext")
	}
	if len(nav) > 0 {
		fmt.Fprintln(a.out, strings.Join(nav, "  "))
	}
}

// printChanges reports apps that changed since they were last displayed
func (a *AppList) printChanges(apps []domain.App) {
	for _, app := range apps {
		prev, ok := a.shown[app.Name]
		a.shown[app.Name] = app
		if !ok {
			continue
		}

		diff, err := objdiff.DifferenceOf(prev, app)
		if err != nil {
			slog.Warn("Failed to diff app", "app", app.Name, "error", err)
			continue
		}
		if len(diff) == 0 {
			continue
		}

		keys := make([]string, 0, len(diff))
		for k := range diff {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, diff[k]))
		}
		fmt.Fprintf(a.out, "~ %s changed: %s\n", app.Name, strings.Join(parts, " "))
	}
}

// Execute runs one command line and then the reload it scheduled. It
// returns io.EOF on quit.
func (a *AppList) Execute(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	err := a.dispatch(ctx, cmd, arg)
	a.flush(ctx)
	return err
}

func (a *AppList) dispatch(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "":
		return nil
	case "n":
		return a.ctl.NextPage()
	case "p":
		return a.ctl.PreviousPage()
	case "l":
		return a.ctl.SetLimitString(arg)
	case "o":
		offset, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("offset %q: %w", arg, pagination.ErrInvalidNumber)
		}
		return a.ctl.SetOffset(offset)
	case "f":
		return a.filter(arg)
	case "g":
		return a.navigate(arg)
	case "b":
		path, ok := a.loc.Back()
		if !ok {
			return nil
		}
		return a.enter(path)
	case "r":
		a.schedule(a.ctl.Cursor())
		return nil
	case "s":
		return a.show(ctx, arg)
	case "h", "?":
		fmt.Fprintf(a.out, helpText, strings.Join(a.ctl.Limits(), ","))
		return nil
	case "q":
		return io.EOF
	default:
		return fmt.Errorf("unknown command %q, try h", cmd)
	}
}

func (a *AppList) filter(prefix string) error {
	a.query = prefix
	if a.ctl.Cursor().Offset != 0 {
		return a.ctl.SetOffset(0)
	}
	a.schedule(a.ctl.Cursor())
	return nil
}

// navigate follows a console path or a full console URL. A `q` parameter in
// the URL becomes the filter. A path with an unusable cursor leaves the
// history, the cursor and the filter untouched.
func (a *AppList) navigate(target string) error {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		return fmt.Errorf("invalid navigation target %q", target)
	}
	if _, _, err := paging.CursorFromPath(u.Path); err != nil {
		return fmt.Errorf("navigation to %q: %w", u.Path, err)
	}

	if q := urlutil.Parameter(target, "q"); q != "" {
		a.query = q
	}

	a.loc.SetPath(u.Path)
	return a.enter(u.Path)
}

// enter hands a navigation to the paging controller and reloads the page
// when the cursor stays the same
func (a *AppList) enter(path string) error {
	before := a.ctl.Cursor()
	if err := a.ctl.Navigated(path); err != nil {
		return err
	}
	if a.ctl.Cursor() == before {
		a.schedule(before)
	}
	return nil
}

func (a *AppList) show(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("app name is required")
	}

	app, err := a.source.Get(ctx, name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\t%s\n", app.ID)
	fmt.Fprintf(tw, "name\t%s\n", app.Name)
	fmt.Fprintf(tw, "environment\t%s\n", app.Environment)
	fmt.Fprintf(tw, "version\t%s\n", app.Version)
	fmt.Fprintf(tw, "maintenance\t%t\n", app.Maintenance)
	fmt.Fprintf(tw, "domains\t%s\n", strings.Join(app.Domains, ","))
	fmt.Fprintf(tw, "updated\t%s\n", app.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.Flush()
}

// Run reads commands from in until quit or end of input
func (a *AppList) Run(ctx context.Context, in io.Reader) error {
	a.Start(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		err := a.Execute(ctx, scanner.Text())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}
