package rtr

// Method identifies an HTTP verb accepted by a route.
// It is a plain string type so callers can introduce further verbs
// without touching this package.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Params carries the typed values extracted from a request path, keyed
// by placeholder name. A nil Params means "no parameters at all" and is
// produced only by the default route, letting callers tell an unrouted
// request from a routed one with no placeholders.
type Params map[string]any

// Handler is the callable bound to a route. It receives the merged
// parameter mapping and returns a response payload.
type Handler func(params Params) (any, error)

// Route is the capability set shared by all route variants.
type Route interface {
	// MappedURL returns the registration-time url template.
	MappedURL() string

	// Methods returns the accepted verbs.
	Methods() []Method

	// ValidateMethod reports whether m is one of the accepted verbs.
	ValidateMethod(m Method) bool

	// ValidateURL reports whether path matches the template shape and
	// every extracted value converts cleanly. Match failures never
	// propagate as errors.
	ValidateURL(path string) bool

	// ParseURL extracts the typed parameters of path and returns them
	// with the bound handler. Callers are expected to have validated
	// path first (RouteSet.GetRoute does).
	ParseURL(path string) (Handler, Params)
}

// equalRoutes reports whether two routes map the same url template with
// the same accepted-method set. Used for deduplication, not identity.
func equalRoutes(a, b Route) bool {
	return a.MappedURL() == b.MappedURL() && sameMethodSet(a.Methods(), b.Methods())
}

// sameMethodSet compares accepted methods as sets, so registration
// order and duplicates don't matter.
func sameMethodSet(a, b []Method) bool {
	setA := make(map[Method]struct{}, len(a))
	for _, m := range a {
		setA[m] = struct{}{}
	}

	setB := make(map[Method]struct{}, len(b))
	for _, m := range b {
		setB[m] = struct{}{}
	}

	if len(setA) != len(setB) {
		return false
	}

	for m := range setA {
		if _, ok := setB[m]; !ok {
			return false
		}
	}

	return true
}

// methodAccepted is the shared ValidateMethod implementation.
func methodAccepted(methods []Method, m Method) bool {
	for _, method := range methods {
		if method == m {
			return true
		}
	}

	return false
}
