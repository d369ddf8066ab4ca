package rtr

import (
	"errors"
	"regexp"
	"strings"
)

// A url template is a string of '/'-separated segments. A segment of
// the form <name> or <type:name> is a placeholder bound to a request
// path segment; every other segment is a literal that must match
// character for character. Supported type tags are "int" and "float";
// anything else (or no tag) means string.

var (
	placeholderFinder = regexp.MustCompile(`<.+?>`)
	placeholderParser = regexp.MustCompile(`^<(?:(.+):)?(.+)>$`)
)

// ErrURLFormat reports that a concrete path cannot be matched against a
// url template. It never leaves this package: ValidateURL converts it
// to a plain false.
var ErrURLFormat = errors.New("path does not fit the url template")

// parsePlaceholder splits a <type:name> or <name> token into its type
// tag and name. ok is false when token is not a placeholder at all.
// A bare <name> yields an empty type tag.
func parsePlaceholder(token string) (typeTag, name string, ok bool) {
	m := placeholderParser.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}

	return m[1], m[2], true
}

// MatchPath extracts the raw placeholder values of path against
// template, e.g. template "/url/format/<int:n1>/<n2>" and path
// "/url/format/1/oh_yeah" yield {"n1": "1", "n2": "oh_yeah"}.
//
// It fails with ErrURLFormat when the segment counts differ, or when a
// non-placeholder template segment does not equal its path segment.
func MatchPath(template, path string) (map[string]string, error) {
	tmplSegs := strings.Split(template, "/")
	pathSegs := strings.Split(path, "/")

	if len(tmplSegs) != len(pathSegs) {
		return nil, ErrURLFormat
	}

	raw := map[string]string{}

	for i, tmplSeg := range tmplSegs {
		if tmplSeg == pathSegs[i] {
			continue
		}

		_, name, ok := parsePlaceholder(tmplSeg)
		if !ok {
			return nil, ErrURLFormat
		}

		raw[name] = pathSegs[i]
	}

	return raw, nil
}

// requiredFormatters maps every placeholder name of template to the
// formatter for its type tag.
func requiredFormatters(template string) map[string]Formatter {
	formatters := map[string]Formatter{}

	for _, token := range placeholderFinder.FindAllString(template, -1) {
		typeTag, name, ok := parsePlaceholder(token)
		if !ok {
			continue
		}
		formatters[name] = formatterFor(typeTag)
	}

	return formatters
}

// requiredParamNames yields placeholder names in template order.
// Nested routes rely on the ordering to line default values up with the
// mapped route's trailing placeholders.
func requiredParamNames(template string) (names []string) {
	for _, token := range placeholderFinder.FindAllString(template, -1) {
		if _, name, ok := parsePlaceholder(token); ok {
			names = append(names, name)
		}
	}

	return names
}
