package rtr

import "github.com/rohanthewiz/serr"

// Router is the registry tying a RouteSet to the registration and
// resolution entry points. Construct one at the composition root and
// hand it to the network layer; there is no implicit global instance.
type Router struct {
	routes *RouteSet
}

// NewRouter creates a router whose default handler answers any request
// that matches no registered route.
func NewRouter(defaultHandler Handler) *Router {
	return &Router{routes: NewRouteSet(NewDefaultRoute(defaultHandler))}
}

// SetDefaultHandler replaces the fallback handler.
func (router *Router) SetDefaultHandler(handler Handler) {
	router.routes.SetDefaultRouteHandler(handler)
}

// AddRoute registers url. handler is either a Handler (or a bare func
// of the same shape), producing a SimpleRoute, or an already-built
// *SimpleRoute, producing a NestedRoute that borrows its matcher; in
// the nested case defaultParams must be non-empty. Anything else is a
// registration-time error.
//
// The new route is returned for further composition. Registering an
// identical template+method combination twice is silently a no-op.
func (router *Router) AddRoute(url string, handler any, methods []Method, defaultParams map[string]any) (Route, error) {
	var newRoute Route

	switch h := handler.(type) {
	case *SimpleRoute:
		if len(defaultParams) == 0 {
			return nil, serr.New("default params are required for a nested route", "url", url)
		}
		newRoute = NewNestedRoute(url, h, methods, defaultParams)
	case Handler:
		newRoute = NewSimpleRoute(url, h, methods)
	case func(Params) (any, error):
		newRoute = NewSimpleRoute(url, h, methods)
	default:
		return nil, serr.New("routing is not implemented for this handler type", "url", url)
	}

	router.routes.AddRoute(newRoute)
	return newRoute, nil
}

// GetHandler resolves path and method to the bound handler plus its
// typed params. nil params mean the default route was reached.
// This is the sole lookup entry point for the network layer.
func (router *Router) GetHandler(path string, method Method) (Handler, Params) {
	return router.routes.GetRoute(path, method).ParseURL(path)
}

// ListRoutes snapshots the registered routes for inspection.
func (router *Router) ListRoutes() []RouteInfo {
	return router.routes.ListRoutes()
}
