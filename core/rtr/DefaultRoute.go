package rtr

import "sync"

// DefaultRoute is the fallback returned when no registered route
// validates a request. It maps the empty url, accepts no methods, and
// its handler may be swapped after construction. The handler slot has
// its own lock so a swap may run while lookups are in flight.
type DefaultRoute struct {
	SimpleRoute
	mu sync.RWMutex
}

// NewDefaultRoute builds the fallback route around handler.
func NewDefaultRoute(handler Handler) *DefaultRoute {
	return &DefaultRoute{SimpleRoute: *NewSimpleRoute("", handler, nil)}
}

// SetHandler replaces the fallback handler.
func (r *DefaultRoute) SetHandler(handler Handler) {
	r.mu.Lock()
	r.handler = handler
	r.mu.Unlock()
}

// ParseURL always reports nil params, the explicit "no parameters"
// marker, so callers can tell an unrouted request from a routed one
// whose template simply has no placeholders.
func (r *DefaultRoute) ParseURL(string) (Handler, Params) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.handler, nil
}
