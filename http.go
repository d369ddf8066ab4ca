package troute

import (
	"strings"

	"github.com/rohanthewiz/troute/consts"
)

// isValidRequestMethod returns true if the given string is a valid HTTP request method.
func isValidRequestMethod(method string) bool {
	switch method {
	case consts.MethodGet, consts.MethodHead, consts.MethodPost, consts.MethodPut,
		consts.MethodDelete, consts.MethodConnect, consts.MethodOptions, consts.MethodTrace, consts.MethodPatch:
		return true
	default:
		return false
	}
}

// parseURL splits a request target of the form "scheme://host/path?query"
// into its pieces. The usual request-line form is an absolute path, which
// leaves scheme empty and host defaulting to localhost. A trailing slash
// on a non-root path is dropped so "/items/" and "/items" route the same.
func parseURL(url string) (scheme string, host string, path string, query string) {
	if pos := strings.Index(url, consts.SchemeDelimiter); pos != -1 {
		scheme = url[:pos]
		url = url[pos+len(consts.SchemeDelimiter):]
	}

	if pos := strings.IndexByte(url, consts.RuneFwdSlash); pos != -1 {
		host = url[:pos]
		url = url[pos:]
	}

	path = url
	if pos := strings.IndexByte(url, consts.RuneQuestion); pos != -1 {
		path = url[:pos]
		query = url[pos+1:]
	}

	if path == "" {
		path = "/"
	} else if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	if host == "" {
		host = consts.Localhost
	}

	return
}
