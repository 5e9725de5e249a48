package render

import (
	"strconv"

	"github.com/indigo-web/utils/uf"
	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/http/status"
	"github.com/lilac-web/lilac/internal/response"
)

const crlf = "\r\n"

// Engine renders a response into an owned buffer. An instance must not be
// shared between goroutines. The string returned by Render aliases the buffer,
// so the engine must be discarded (not reused) once the string escapes.
type Engine struct {
	buff []byte
}

func NewEngine() *Engine {
	return new(Engine)
}

// Render serializes the fields into the final response text: status line,
// header lines in insertion order, the header block terminator and the body
// verbatim. It never fails; a response with no headers and no body renders as
// the status line followed by a blank line only.
func (e *Engine) Render(fields *response.Fields) string {
	e.renderStatusLine(fields)
	e.renderHeaders(fields)
	e.crlf()
	e.buff = append(e.buff, fields.Body...)

	return uf.B2S(e.buff)
}

func (e *Engine) renderStatusLine(fields *response.Fields) {
	protocol := fields.Protocol
	if protocol == proto.Unknown {
		// the builder had no chance of knowing better. Any response we produce
		// speaks HTTP/1.1 anyway.
		protocol = proto.HTTP11
	}

	e.buff = append(e.buff, protocol.String()...)
	e.sp()
	e.buff = strconv.AppendUint(e.buff, uint64(fields.Code), 10)
	e.sp()

	text := fields.Status
	if len(text) == 0 {
		text = status.Text(fields.Code)
	}

	e.buff = append(e.buff, text...)
	e.crlf()
}

func (e *Engine) renderHeaders(fields *response.Fields) {
	for key, value := range fields.Headers.Iter() {
		e.buff = append(e.buff, key...)
		e.colonsp()
		e.buff = append(e.buff, value...)
		e.crlf()
	}

	if len(fields.Body) > 0 && !fields.Headers.Has("content-length") {
		e.buff = append(e.buff, "Content-Length: "...)
		e.buff = strconv.AppendUint(e.buff, uint64(len(fields.Body)), 10)
		e.crlf()
	}
}

func (e *Engine) sp() {
	e.buff = append(e.buff, ' ')
}

func (e *Engine) colonsp() {
	e.buff = append(e.buff, ':', ' ')
}

func (e *Engine) crlf() {
	e.buff = append(e.buff, crlf...)
}
