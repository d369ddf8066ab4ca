package rtr

import "sync"

// RouteSet is an ordered collection of distinct routes with
// first-match-wins lookup and exactly one fallback default route.
// Insertion order is precedence order; routes are never removed.
//
// The route list is guarded by a read-write lock, so registration may
// interleave with lookups. Registering everything at startup and then
// serving pays only for read locks on the hot path.
type RouteSet struct {
	mu           sync.RWMutex
	routes       []Route
	defaultRoute *DefaultRoute
}

// NewRouteSet creates an empty set around its fallback route.
func NewRouteSet(defaultRoute *DefaultRoute) *RouteSet {
	return &RouteSet{defaultRoute: defaultRoute}
}

// AddRoute appends newRoute unless an equal route (same template, same
// accepted-method set) is already present. A duplicate is rejected by
// returning false. It is a no-op, not an error.
func (rs *RouteSet) AddRoute(newRoute Route) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, route := range rs.routes {
		if equalRoutes(route, newRoute) {
			return false
		}
	}

	rs.routes = append(rs.routes, newRoute)
	return true
}

// GetRoute returns the first route, in registration order, whose method
// and url both validate. Earlier registrations shadow later ones with
// overlapping templates. The default route is returned when nothing
// matches.
func (rs *RouteSet) GetRoute(path string, method Method) Route {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	for _, route := range rs.routes {
		if route.ValidateMethod(method) && route.ValidateURL(path) {
			return route
		}
	}

	return rs.defaultRoute
}

// SetDefaultRouteHandler replaces the fallback handler. The default
// route itself is fixed at construction and guards its own handler
// slot, so lookups that already hold the route can still parse safely
// while the handler is being swapped.
func (rs *RouteSet) SetDefaultRouteHandler(handler Handler) {
	rs.defaultRoute.SetHandler(handler)
}

// ListRoutes snapshots the registered routes for inspection.
func (rs *RouteSet) ListRoutes() []RouteInfo {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	infos := make([]RouteInfo, 0, len(rs.routes))
	for _, route := range rs.routes {
		infos = append(infos, RouteInfo{
			Path:    route.MappedURL(),
			Methods: route.Methods(),
			Params:  requiredParamNames(route.MappedURL()),
		})
	}

	return infos
}
