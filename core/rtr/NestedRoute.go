package rtr

import (
	"fmt"
	"strings"
)

// NestedRoute routes a short external path through another route's
// matcher. At construction it pre-renders a path suffix from the mapped
// route's placeholder names filled in from the supplied defaults; both
// validation and parsing delegate to the mapped route against
// path + "/" + suffix. The missing trailing placeholders are thereby
// supplied from fixed values chosen at registration time.
//
// The mapped route is held by reference and must outlive this route.
type NestedRoute struct {
	mappedURL     string
	methods       []Method
	mappedRoute   *SimpleRoute
	defaultSuffix string
}

// NewNestedRoute wraps mappedRoute under its own url and methods.
// Only the names present in defaultParams are rendered into the suffix,
// in the mapped template's placeholder order.
func NewNestedRoute(url string, mappedRoute *SimpleRoute, methods []Method, defaultParams map[string]any) *NestedRoute {
	vals := make([]string, 0, len(defaultParams))

	for _, name := range requiredParamNames(mappedRoute.MappedURL()) {
		if v, ok := defaultParams[name]; ok {
			vals = append(vals, fmt.Sprint(v))
		}
	}

	return &NestedRoute{
		mappedURL:     url,
		methods:       methods,
		mappedRoute:   mappedRoute,
		defaultSuffix: strings.Join(vals, "/"),
	}
}

// MappedURL returns this route's own url template, not the mapped one.
func (r *NestedRoute) MappedURL() string {
	return r.mappedURL
}

// Methods returns the accepted verbs.
func (r *NestedRoute) Methods() []Method {
	return r.methods
}

// ValidateMethod checks against this route's own methods; the mapped
// route's methods are not consulted.
func (r *NestedRoute) ValidateMethod(m Method) bool {
	return methodAccepted(r.methods, m)
}

// ValidateURL delegates to the mapped route with the default suffix
// appended.
func (r *NestedRoute) ValidateURL(path string) bool {
	return r.mappedRoute.ValidateURL(r.extend(path))
}

// ParseURL delegates to the mapped route, so the returned params carry
// the default-filled placeholders too, typed by the mapped route's
// formatters.
func (r *NestedRoute) ParseURL(path string) (Handler, Params) {
	return r.mappedRoute.ParseURL(r.extend(path))
}

func (r *NestedRoute) extend(path string) string {
	return path + "/" + r.defaultSuffix
}
