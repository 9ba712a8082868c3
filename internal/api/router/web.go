package router

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/DjordjeVuckovic/ship-console/pkg/paging"
	"github.com/labstack/echo/v4"
)

const (
	WebPrefix  = "/web"
	WebHome    = WebPrefix + "/"
	WebAppList = WebPrefix + "/apps"
)

// WebRouter serves the console shell. Every console route answers with
// index.html; the page itself resolves the view.
type WebRouter struct {
	e       *echo.Echo
	webRoot string
}

func NewWebRouter(e *echo.Echo, webRoot string) *WebRouter {
	return &WebRouter{
		e:       e,
		webRoot: webRoot,
	}
}

func (r *WebRouter) Bind() {
	for _, p := range []string{
		WebPrefix + "/login",
		WebHome,
		WebAppList,
	} {
		r.e.GET(p, r.indexHandler)
	}
	r.e.GET(WebAppList+"/:offset/:limit", r.appListHandler)
	r.e.GET(WebPrefix, func(c echo.Context) error {
		return c.Redirect(http.StatusFound, WebHome)
	})
	r.e.GET(WebPrefix+"/*", r.staticHandler)
}

func (r *WebRouter) indexHandler(c echo.Context) error {
	return c.File(filepath.Join(r.webRoot, "index.html"))
}

// appListHandler serves the list view for a cursor embedded in the path.
// Unusable cursors redirect to the bare list route.
func (r *WebRouter) appListHandler(c echo.Context) error {
	cursor, ok, err := paging.CursorFromPath(c.Request().URL.Path)
	if err != nil || !ok {
		slog.Debug("Redirecting list view with unusable cursor", "path", c.Request().URL.Path, "error", err)
		return c.Redirect(http.StatusFound, WebAppList)
	}

	c.SetCookie(&http.Cookie{
		Name:     LimitCookie,
		Value:    strconv.Itoa(cursor.Limit),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return r.indexHandler(c)
}

// staticHandler serves assets from the web root and redirects anything else
// to the console home.
func (r *WebRouter) staticHandler(c echo.Context) error {
	name := path.Clean("/" + c.Param("*"))
	full := filepath.Join(r.webRoot, filepath.FromSlash(name))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to stat web asset", "path", full, "error", err)
		}
		return c.Redirect(http.StatusFound, WebHome)
	}
	return c.File(full)
}
