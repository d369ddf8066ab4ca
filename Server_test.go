package troute_test

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/troute"
	"github.com/rohanthewiz/troute/core/rtr"
)

func TestRequestRoundTrip(t *testing.T) {
	s := troute.NewServer()

	s.Get("/items/<int:id>", func(params rtr.Params) (any, error) {
		return map[string]any{"id": params["id"]}, nil
	})

	res := s.Request("GET", "/items/42", nil, nil)
	assert.Equal(t, res.Status(), 200)
	assert.Equal(t, res.Header("Content-Type"), "application/json")
	assert.True(t, strings.Contains(string(res.Body()), `"id":42`))
	assert.True(t, res.Header("X-Request-Id") != "")
}

func TestUnroutedGets501(t *testing.T) {
	s := troute.NewServer()

	res := s.Request("GET", "/missing", nil, nil)
	assert.Equal(t, res.Status(), 501)
	assert.Equal(t, len(res.Body()), 0)

	// The fallback handler is mutable and its payload still ships with 501
	s.SetDefaultHandler(func(params rtr.Params) (any, error) {
		return map[string]any{"error": "nothing here"}, nil
	})

	res = s.Request("GET", "/missing", nil, nil)
	assert.Equal(t, res.Status(), 501)
	assert.True(t, strings.Contains(string(res.Body()), "nothing here"))
}

func TestUnconvertibleParamGets501(t *testing.T) {
	s := troute.NewServer()

	s.Get("/items/<int:id>", func(params rtr.Params) (any, error) {
		return map[string]any{"id": params["id"]}, nil
	})

	// "abc" against <int:id> is a miss, not an error
	res := s.Request("GET", "/items/abc", nil, nil)
	assert.Equal(t, res.Status(), 501)
}

func TestWrongVerbGets501(t *testing.T) {
	s := troute.NewServer()

	s.Get("/items", func(params rtr.Params) (any, error) {
		return map[string]any{"ok": true}, nil
	})

	res := s.Request("POST", "/items", nil, nil)
	assert.Equal(t, res.Status(), 501)
}

func TestHandlerErrorGets400(t *testing.T) {
	s := troute.NewServer()

	s.Get("/broken", func(params rtr.Params) (any, error) {
		return nil, errors.New("missing argument: name")
	})

	res := s.Request("GET", "/broken", nil, nil)
	assert.Equal(t, res.Status(), 400)
	assert.True(t, strings.Contains(string(res.Body()), "missing argument: name"))
}

func TestQueryParams(t *testing.T) {
	s := troute.NewServer()

	s.Get("/search", func(params rtr.Params) (any, error) {
		return map[string]any{"q": params["q"]}, nil
	})

	// Repeated query keys accumulate into a list of values
	res := s.Request("GET", "/search?q=foo&q=bar", nil, nil)
	assert.Equal(t, res.Status(), 200)
	assert.True(t, strings.Contains(string(res.Body()), `"q":["foo","bar"]`))
}

func TestRouteParamsWinOverQuery(t *testing.T) {
	s := troute.NewServer()

	s.Get("/items/<int:id>", func(params rtr.Params) (any, error) {
		return map[string]any{"id": params["id"]}, nil
	})

	res := s.Request("GET", "/items/42?id=99", nil, nil)
	assert.True(t, strings.Contains(string(res.Body()), `"id":42`))
}

func TestMethodParamInjected(t *testing.T) {
	s := troute.NewServer()

	s.Post("/echo", func(params rtr.Params) (any, error) {
		return map[string]any{"method": params["method"]}, nil
	})

	res := s.Request("POST", "/echo", nil, nil)
	assert.True(t, strings.Contains(string(res.Body()), `"method":"POST"`))
}

func TestJSONBodyParams(t *testing.T) {
	s := troute.NewServer()

	s.Post("/items", func(params rtr.Params) (any, error) {
		return map[string]any{"created": params["name"]}, nil
	})

	headers := []troute.Header{{Key: "Content-Type", Value: "application/json"}}
	res := s.Request("POST", "/items", headers, strings.NewReader(`{"name":"widget"}`))
	assert.Equal(t, res.Status(), 200)
	assert.True(t, strings.Contains(string(res.Body()), `"created":"widget"`))
}

func TestMalformedJSONBodyIgnored(t *testing.T) {
	s := troute.NewServer()

	s.Post("/items", func(params rtr.Params) (any, error) {
		return map[string]any{"created": params["name"]}, nil
	})

	headers := []troute.Header{{Key: "Content-Type", Value: "application/json"}}
	res := s.Request("POST", "/items", headers, strings.NewReader(`{oops`))
	assert.Equal(t, res.Status(), 200)
	assert.True(t, strings.Contains(string(res.Body()), `"created":null`))
}

func TestNestedRouteOverServer(t *testing.T) {
	s := troute.NewServer()

	long, err := s.AddRoute("/test/<int:this>/<url>", rtr.Handler(func(params rtr.Params) (any, error) {
		return map[string]any{"this": params["this"], "url": params["url"]}, nil
	}), []rtr.Method{rtr.MethodGet, rtr.MethodPost}, nil)
	assert.Nil(t, err)

	_, err = s.AddRoute("/test/<int:this>", long.(*rtr.SimpleRoute),
		[]rtr.Method{rtr.MethodGet, rtr.MethodPost}, map[string]any{"url": "bar"})
	assert.Nil(t, err)

	res := s.Request("POST", "/test/1/foo", nil, nil)
	assert.True(t, strings.Contains(string(res.Body()), `"url":"foo"`))

	res = s.Request("POST", "/test/1", nil, nil)
	assert.True(t, strings.Contains(string(res.Body()), `"this":1`))
	assert.True(t, strings.Contains(string(res.Body()), `"url":"bar"`))
}

func TestTrailingSlashNormalized(t *testing.T) {
	s := troute.NewServer()

	s.Get("/hello", func(params rtr.Params) (any, error) {
		return map[string]any{"ok": true}, nil
	})

	res := s.Request("GET", "/hello/", nil, nil)
	assert.Equal(t, res.Status(), 200)
}

func TestFavicon(t *testing.T) {
	iconPath := filepath.Join(t.TempDir(), "favicon.ico")
	err := os.WriteFile(iconPath, []byte("ICONDATA"), 0644)
	assert.Nil(t, err)

	s := troute.NewServer(troute.ServerOptions{FaviconPath: iconPath})

	res := s.Request("GET", "/favicon.ico", nil, nil)
	assert.Equal(t, res.Status(), 200)
	assert.Equal(t, res.Header("Content-Type"), "image/x-icon")
	assert.Equal(t, string(res.Body()), "ICONDATA")
}

func TestMissingFavicon(t *testing.T) {
	s := troute.NewServer(troute.ServerOptions{FaviconPath: "/no/such/file.ico"})

	// Missing icon file serves an empty icon, not an error
	res := s.Request("GET", "/favicon.ico", nil, nil)
	assert.Equal(t, res.Status(), 200)
	assert.Equal(t, len(res.Body()), 0)
}

func TestListRoutesOverServer(t *testing.T) {
	s := troute.NewServer()

	s.Get("/items/<int:id>", func(params rtr.Params) (any, error) { return nil, nil })
	s.Post("/items/<int:id>", func(params rtr.Params) (any, error) { return nil, nil })

	infos := s.ListRoutes()
	assert.Equal(t, len(infos), 2)
	assert.Equal(t, infos[0].Path, "/items/<int:id>")
	assert.Equal(t, infos[0].Params[0], "id")
}

func TestRun(t *testing.T) {
	s := troute.NewServer()

	s.Get("/ping", func(params rtr.Params) (any, error) {
		return map[string]any{"pong": true}, nil
	})

	ready := make(chan struct{}, 1)

	go func() {
		defer syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
		<-ready

		res, err := http.Get("http://127.0.0.1:8163/ping")
		assert.Nil(t, err)
		if err != nil {
			return
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		assert.Nil(t, err)
		assert.Equal(t, res.StatusCode, 200)
		assert.True(t, strings.Contains(string(body), "pong"))
	}()

	err := s.Run(":8163", troute.RunOpts{StatusChan: ready})
	assert.Nil(t, err)
}
