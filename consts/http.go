package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	ProtocolTCP = "tcp"

	Localhost       = "localhost"
	SchemeDelimiter = "://"

	CRLF = "\r\n"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"
	HTTPBadMethod  = "BAD-METHOD / HTTP/1.1\r\n\r\n"
)

const (
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
	RuneColon       = ':'
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
)

const (
	StatusOK             = 200
	StatusBadRequest     = 400
	StatusNotImplemented = 501
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderRequestID     = "X-Request-Id"
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAllowMethods  = "Access-Control-Allow-Methods"
)

// FaviconPath is the request path browsers poll for the site icon.
const FaviconPath = "/favicon.ico"
