package troute

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/troute/consts"
	"github.com/rohanthewiz/troute/core/rtr"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP Server. It owns one rtr.Router: handlers are
// registered through the Server and resolved per request through the
// router's template matching.
type Server struct {
	router      *rtr.Router
	contextPool sync.Pool
	opts        ServerOptions
	favicon     []byte
}

// context pairs the request being read with the response being built
// for one connection.
type context struct {
	request
	response
	reader *bufio.Reader
}

// Response returns the HTTP response.
func (ctx *context) Response() Response {
	return &ctx.response
}

// reset clears per-request state so the context can serve another
// request. Pooled contexts must be reset on every draw: a connection
// that bailed out mid-request puts its context back dirty.
func (ctx *context) reset() {
	ctx.request.method = ""
	ctx.request.host = ""
	ctx.request.path = ""
	ctx.request.query = ""
	ctx.request.contentType = ""
	ctx.request.headers = ctx.request.headers[:0]
	ctx.request.body = ctx.request.body[:0]
	ctx.response.headers = ctx.response.headers[:0]
	ctx.response.body = ctx.response.body[:0]
	ctx.response.status = consts.StatusOK
}

// defaultHandlerNotSet answers unrouted requests until the caller
// installs a real fallback via SetDefaultHandler.
func defaultHandlerNotSet(params rtr.Params) (any, error) {
	return nil, nil
}

// NewServer creates a new HTTP server.
func NewServer(options ...ServerOptions) *Server {
	opts := ServerOptions{}
	if len(options) == 1 {
		opts = options[0]
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	s := &Server{
		router:  rtr.NewRouter(defaultHandlerNotSet),
		opts:    opts,
		favicon: loadFavicon(opts.FaviconPath),
	}

	s.contextPool.New = func() any { return s.newContext() }
	return s
}

// loadFavicon reads the icon served for /favicon.ico. The options path
// wins; the FAVICO_PATH environment variable is the fallback. A missing
// file is only worth a warning - we then serve an empty icon.
func loadFavicon(path string) []byte {
	if path == "" {
		path = os.Getenv("FAVICO_PATH")
	}

	if path == "" {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("favicon file not found -> %s", path)
		return nil
	}

	return content
}

// Get registers your function to be called when the given GET url template has been requested.
func (s *Server) Get(url string, handler rtr.Handler) rtr.Route {
	route, _ := s.router.AddRoute(url, handler, []rtr.Method{rtr.MethodGet}, nil)
	return route
}

// Post registers your function to be called when the given POST url template has been requested.
func (s *Server) Post(url string, handler rtr.Handler) rtr.Route {
	route, _ := s.router.AddRoute(url, handler, []rtr.Method{rtr.MethodPost}, nil)
	return route
}

// AddRoute is the full registration form: handler may be an
// rtr.Handler, or an existing *rtr.SimpleRoute to nest under url with
// the given default params. The returned route can itself be nested.
func (s *Server) AddRoute(url string, handler any, methods []rtr.Method, defaultParams map[string]any) (rtr.Route, error) {
	return s.router.AddRoute(url, handler, methods, defaultParams)
}

// SetDefaultHandler installs the fallback invoked for requests that
// match no registered route. Its payload (if any) is still sent with
// status 501 Not Implemented.
func (s *Server) SetDefaultHandler(handler rtr.Handler) {
	s.router.SetDefaultHandler(handler)
}

// ListRoutes returns the registered routes for inspection.
func (s *Server) ListRoutes() []rtr.RouteInfo {
	return s.router.ListRoutes()
}

// Router returns the router used by the server.
func (s *Server) Router() *rtr.Router {
	return s.router
}

// Request performs a synthetic request and returns the response.
// This function keeps the response in memory so it's slightly slower than a real request.
// However it is very useful inside tests where you don't want to spin up a real web server.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := s.newContext()
	ctx.request.headers = headers

	for _, header := range headers {
		if strings.EqualFold(header.Key, consts.HeaderContentType) {
			ctx.request.contentType = header.Value
		}
	}

	if body != nil {
		if data, err := io.ReadAll(body); err == nil {
			ctx.request.body = data
		}
	}

	s.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

type RunOpts struct {
	Verbose bool
	// StatusChan is a channel signalling that the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run starts the server on the given address.
func (s *Server) Run(address string, runOpts ...RunOpts) error {
	opts := RunOpts{}

	if len(runOpts) == 1 {
		opts.Verbose = runOpts[0].Verbose

		// Running Channel
		if runOpts[0].StatusChan != nil && cap(runOpts[0].StatusChan) < 1 && opts.Verbose {
			fmt.Println("Running channel capacity should be at least 1, or we may hang")
		}
		// Assign even if it is nil as we will do nil check on use
		opts.StatusChan = runOpts[0].StatusChan
	}

	if address == "" {
		address = s.opts.Address
	}

	listener, err := net.Listen(consts.ProtocolTCP, address)
	if err != nil {
		return err
	}

	defer listener.Close()

	go func() {
		if opts.StatusChan != nil { // don't forget nil check!
			opts.StatusChan <- struct{}{} // Let the caller know we are running
		}

		if opts.Verbose {
			log.Infof("Server is running at %s", address)
		}

		for {
			conn, err := listener.Accept()
			if err != nil {
				continue
			}

			go s.handleConnection(conn)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// handleConnection handles an accepted connection.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ctx    = s.contextPool.Get().(*context)
		method string
		url    string
	)

	ctx.reset()
	ctx.reader.Reset(conn)

	defer conn.Close()
	defer s.contextPool.Put(ctx)

	for {
		// Read the HTTP request line
		message, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadMethod)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64

		// Add headers until we meet an empty line
		for {
			message, err = ctx.reader.ReadString(consts.RuneNewLine) // read a line
			if err != nil {
				return
			}

			if message == consts.CRLF { // "empty" line // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			value := strings.TrimSpace(message[colon+1:])

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			if strings.EqualFold(key, consts.HeaderContentLength) {
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			} else if strings.EqualFold(key, consts.HeaderContentType) {
				ctx.request.contentType = value
			}
		}

		// Read the request body if present. Streaming/chunked bodies
		// are not supported.
		if contentLen > 0 {
			body := make([]byte, contentLen)
			_, err = io.ReadFull(ctx.reader, body)
			if err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)
		}

		// Handle the request
		s.handleRequest(ctx, method, url, conn)

		// Clean up for the next request on this connection
		ctx.reset()
	}
}

// handleRequest routes the given request and writes the response.
func (s *Server) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	start := time.Now()
	reqID := uuid.NewString()

	ctx.request.method = method
	_, ctx.request.host, ctx.request.path, ctx.request.query = parseURL(url)

	ctx.response.SetHeader(consts.HeaderRequestID, reqID)
	ctx.response.SetHeader(consts.HeaderAllowMethods, "POST, GET")

	if ctx.request.path == consts.FaviconPath && method == consts.MethodGet {
		s.sendFavicon(ctx)
	} else {
		s.dispatch(ctx)
	}

	tmp := bytes.Buffer{}
	tmp.WriteString("HTTP/1.1 ")
	tmp.WriteString(strconv.Itoa(int(ctx.response.status)))
	tmp.WriteString("\r\nContent-Length: ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString(consts.CRLF)

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	tmp.Write(ctx.response.body)
	_, _ = writer.Write(tmp.Bytes())

	log.WithFields(log.Fields{
		"id":       reqID,
		"host":     ctx.request.host,
		"status":   ctx.response.Status(),
		"duration": time.Since(start).String(),
	}).Infof("%s %s", method, ctx.request.path)
}

// dispatch resolves the request path through the router and invokes the
// bound handler with route params merged over query/body params.
func (s *Server) dispatch(ctx *context) {
	method := rtr.Method(ctx.request.method)

	reqParams := ctx.request.queryParams()
	for key, value := range ctx.request.bodyParams() {
		reqParams[key] = value
	}
	reqParams["method"] = string(method)

	handler, routeParams := s.router.GetHandler(ctx.request.path, method)

	// nil params mean the default route was reached: the request is not
	// mapped. The fallback handler still gets a say in the payload.
	if routeParams == nil {
		log.Warnf("%s request not mapped for %s method", ctx.request.path, method)
		ctx.response.SetStatus(consts.StatusNotImplemented)
		if payload, err := handler(reqParams); err == nil && payload != nil {
			s.sendJSON(ctx, payload)
		}
		return
	}

	// Route params win over request params of the same name
	for key, value := range routeParams {
		reqParams[key] = value
	}

	payload, err := handler(reqParams)
	if err != nil {
		ctx.response.SetStatus(consts.StatusBadRequest)
		s.sendJSON(ctx, map[string]any{"error": err.Error()})
		return
	}

	if payload != nil {
		s.sendJSON(ctx, payload)
	}
}

// sendJSON encodes payload into the response body.
func (s *Server) sendJSON(ctx *context, payload any) {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEJSON)

	if err := json.NewEncoder(&ctx.response).Encode(payload); err != nil {
		log.Errorf("can't encode response payload - %s", err)
		ctx.response.SetBody(nil)
		ctx.response.SetStatus(consts.StatusBadRequest)
	}
}

func (s *Server) sendFavicon(ctx *context) {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEIcon)
	ctx.response.SetHeader(consts.HeaderAllowOrigin, "*")
	ctx.response.SetBody(s.favicon)
}

// newContext allocates a new context with the default state.
func (s *Server) newContext() *context {
	return &context{
		reader: bufio.NewReader(nil),
		request: request{
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  consts.StatusOK,
		},
	}
}
