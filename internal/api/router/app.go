package router

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/DjordjeVuckovic/ship-console/internal/apperr"
	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/DjordjeVuckovic/ship-console/pkg/urlutil"
	"github.com/labstack/echo/v4"
)

const (
	AppsPath = "/api/v1/app"

	// LimitCookie remembers the page size last chosen in the web console
	LimitCookie = "sc_limit"
)

type objectResponse struct {
	Meta    map[string]any `json:"Meta"`
	Objects any            `json:"Objects"`
}

type AppRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewAppRouter(e *echo.Echo, reader storage.Reader) *AppRouter {
	return &AppRouter{
		e:      e,
		reader: reader,
	}
}

func (r *AppRouter) Bind() {
	r.e.GET(AppsPath, r.listHandler)
	r.e.GET(AppsPath+"/:name", r.getHandler)
}

// listHandler godoc
// @Summary List apps
// @Description Returns one page of the app catalog ordered by name, with next/previous references
// @Tags apps
// @Produce json
// @Param offset query int false "Number of apps to skip" default(0)
// @Param limit query int false "Page size, one of 5, 10, 25, 50 or 100" default(50)
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} pagination.Collection[domain.App]
// @Failure 400 {object} map[string]string
// @Router /api/v1/app [get]
func (r *AppRouter) listHandler(c echo.Context) error {
	query := url.Values{}
	for k, v := range c.QueryParams() {
		query[k] = v
	}
	if query.Get("limit") == "" {
		if limit, ok := cookieLimit(c.Request()); ok {
			query.Set("limit", strconv.Itoa(limit))
		}
	}

	cursor, err := pagination.ParseQuery(query)
	if err != nil {
		return apperr.NewValidationWrap("invalid paging parameters", err)
	}

	q := query.Get("q")
	page, err := r.reader.ListApps(c.Request().Context(), storage.ListOptions{
		Cursor: cursor,
		Query:  q,
	})
	if err != nil {
		return err
	}

	basePath := AppsPath
	if q != "" {
		basePath += "?" + url.Values{"q": {q}}.Encode()
	}

	return c.JSON(http.StatusOK, pagination.NewCollection(page.Items, page.Total, cursor, basePath))
}

// getHandler godoc
// @Summary Get app
// @Description Returns a single app by its unique name
// @Tags apps
// @Produce json
// @Param name path string true "App name"
// @Success 200 {object} objectResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/app/{name} [get]
func (r *AppRouter) getHandler(c echo.Context) error {
	app, err := r.reader.GetApp(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, objectResponse{
		Meta:    map[string]any{},
		Objects: app,
	})
}

func cookieLimit(req *http.Request) (int, bool) {
	v, ok := urlutil.CookieFromRequest(req, LimitCookie)
	if !ok {
		return 0, false
	}
	limit, err := strconv.Atoi(v)
	if err != nil || !pagination.IsAllowedLimit(limit) {
		return 0, false
	}
	return limit, true
}
