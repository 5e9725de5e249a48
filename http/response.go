package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/http/status"
	"github.com/lilac-web/lilac/internal/render"
	"github.com/lilac-web/lilac/internal/response"
	"github.com/lilac-web/lilac/kv"
)

const preallocRespHeaders = 7

// Response is a builder accumulating the status line components, headers and
// the body. Nothing is written anywhere until Build is called; the produced
// string is handed to an external I/O layer as-is.
type Response struct {
	fields *response.Fields
}

// NewResponse returns a builder with the status line set to HTTP/1.1 200 OK,
// no headers and an empty body.
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Headers:  kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets the response code. The status text is derived from it at build
// time unless overridden via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text. Clients ignore it almost universally, so
// the only reason to call it is reproducing an exact status line.
func (r *Response) Status(text status.Status) *Response {
	r.fields.Status = text
	return r
}

// Protocol overrides the protocol of the status line.
func (r *Response) Protocol(protocol proto.Proto) *Response {
	r.fields.Protocol = protocol
	return r
}

// Header sets the header, overwriting any previously set value of the key.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// String sets the message body.
func (r *Response) String(body string) *Response {
	r.fields.Body = body
	return r
}

// JSON serializes the model into the message body and sets the Content-Type.
func (r *Response) JSON(model any) (*Response, error) {
	data, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.Header("Content-Type", "application/json").String(uf.B2S(data)), nil
}

// Build produces the response text. It is idempotent: repeated calls without
// intervening mutation yield identical strings. Building never fails; a
// response with no headers and no body is still well-formed.
func (r *Response) Build() string {
	return render.NewEngine().Render(r.fields)
}

// Expose reveals the underlying fields. Prefer the builder methods; the render
// engine and tests are the intended consumers.
func (r *Response) Expose() *response.Fields {
	return r.fields
}
