package urlutil

import (
	"net/http"
	"net/url"

	"github.com/go-http-utils/headers"
)

// Parameter returns the decoded value of the named query parameter of
// rawURL, or an empty string when it is absent or rawURL does not parse.
func Parameter(rawURL, name string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(name)
}

// Cookie returns the value of the named cookie in a raw Cookie header
func Cookie(header, name string) (string, bool) {
	r := &http.Request{Header: http.Header{headers.Cookie: {header}}}
	return CookieFromRequest(r, name)
}

// CookieFromRequest returns the value of the named cookie sent with r
func CookieFromRequest(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}
