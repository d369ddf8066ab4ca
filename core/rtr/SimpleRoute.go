package rtr

// SimpleRoute binds one url template and its accepted methods to a
// handler. The formatters for its placeholders are derived once at
// construction time.
type SimpleRoute struct {
	mappedURL  string
	methods    []Method
	handler    Handler
	formatters map[string]Formatter
}

// NewSimpleRoute builds a route for the given template, compiling its
// placeholder formatters up front.
func NewSimpleRoute(url string, handler Handler, methods []Method) *SimpleRoute {
	return &SimpleRoute{
		mappedURL:  url,
		methods:    methods,
		handler:    handler,
		formatters: requiredFormatters(url),
	}
}

// MappedURL returns the registration-time url template.
func (r *SimpleRoute) MappedURL() string {
	return r.mappedURL
}

// Methods returns the accepted verbs.
func (r *SimpleRoute) Methods() []Method {
	return r.methods
}

// ValidateMethod reports whether m is one of the accepted verbs.
func (r *SimpleRoute) ValidateMethod(m Method) bool {
	return methodAccepted(r.methods, m)
}

// ValidateURL reports whether path fits the template shape and every
// extracted raw value is convertible by its formatter. An unconvertible
// value ("abc" against <int:id>) yields false, never an error, so the
// route set can fall through to the next candidate.
func (r *SimpleRoute) ValidateURL(path string) bool {
	raw, err := MatchPath(r.mappedURL, path)
	if err != nil {
		return false
	}

	for name, value := range raw {
		formatter, ok := r.formatters[name]
		if !ok || !formatter.IsConvertible(value) {
			return false
		}
	}

	return true
}

// ParseURL re-derives the raw values and converts each through its
// formatter. Call only after ValidateURL has succeeded.
func (r *SimpleRoute) ParseURL(path string) (Handler, Params) {
	params := Params{}

	raw, err := MatchPath(r.mappedURL, path)
	if err != nil {
		return r.handler, params
	}

	for name, value := range raw {
		formatter, ok := r.formatters[name]
		if !ok {
			continue
		}
		if typed, err := formatter.Convert(value); err == nil {
			params[name] = typed
		}
	}

	return r.handler, params
}
