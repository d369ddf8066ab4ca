package troute

import "io"

// Response is the server's view of an outgoing response while it is
// being built, and the synthetic test client's view of a finished one.
// io.Writer is satisfied so a json.Encoder can stream straight into
// the body.
type Response interface {
	io.Writer
	Status() int
	SetStatus(int)
	Header(key string) string
	SetHeader(key string, value string)
	Body() []byte
	SetBody([]byte)
}

// response accumulates the status, headers and body for one request.
type response struct {
	status  uint16
	headers []Header
	body    []byte
}

// Status returns the HTTP status code.
func (res *response) Status() int {
	return int(res.status)
}

// SetStatus sets the HTTP status code.
func (res *response) SetStatus(status int) {
	res.status = uint16(status)
}

// Header returns the value of the first header with the given key,
// or an empty string when the header was never set.
func (res *response) Header(key string) string {
	for _, header := range res.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// SetHeader sets the header, overwriting an earlier value for the key.
func (res *response) SetHeader(key string, value string) {
	for i := range res.headers {
		if res.headers[i].Key == key {
			res.headers[i].Value = value
			return
		}
	}

	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// Body returns the response body accumulated so far.
func (res *response) Body() []byte {
	return res.body
}

// SetBody replaces the body wholesale.
func (res *response) SetBody(body []byte) {
	res.body = body
}

// Write appends to the body.
func (res *response) Write(p []byte) (int, error) {
	res.body = append(res.body, p...)
	return len(p), nil
}
