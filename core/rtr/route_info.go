package rtr

// RouteInfo describes one registered route in a human-readable form.
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging shadowed routes (first match wins)
//   - Testing route registration
type RouteInfo struct {
	Path    string
	Methods []Method
	Params  []string // placeholder names in template order
}
