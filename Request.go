package troute

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/rohanthewiz/troute/consts"
	"github.com/rohanthewiz/troute/core/rtr"
	log "github.com/sirupsen/logrus"
)

// request holds the parsed pieces of the HTTP request being handled.
// Its only consumers are the dispatch path (method, path) and the
// parameter extractors below, so it stays unexported.
type request struct {
	method string
	host   string
	path   string
	query  string

	contentType string
	headers     []Header
	body        []byte
}

// queryParams parses the query string into a parameter map. Repeated
// keys accumulate into a slice of values, form-parser style.
func (req *request) queryParams() rtr.Params {
	params := rtr.Params{}

	values, err := url.ParseQuery(req.query)
	if err != nil {
		log.Warnf("can't parse query string %q - %s", req.query, err)
		return params
	}

	for key, vals := range values {
		params[key] = vals
	}

	return params
}

// bodyParams decodes an application/json body into a parameter map.
// A malformed or non-JSON body yields an empty map, not an error.
func (req *request) bodyParams() rtr.Params {
	params := rtr.Params{}

	if len(req.body) == 0 {
		return params
	}

	if !strings.HasPrefix(strings.ToLower(req.contentType), consts.MIMEJSON) {
		log.Errorf("request body is not %s", consts.MIMEJSON)
		return params
	}

	if err := json.Unmarshal(req.body, &params); err != nil {
		log.Errorf("can't decode request body - %s", err)
		return rtr.Params{}
	}

	return params
}
