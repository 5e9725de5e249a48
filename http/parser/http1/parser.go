package http1

import (
	"strings"

	"github.com/lilac-web/lilac/http"
	"github.com/lilac-web/lilac/http/method"
	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/kv"
)

const crlf = "\r\n"

const preallocHeaders = 8

// Parse converts a raw request into a structured record in a single pass. It is
// total: whatever the input looks like, a fully populated request comes back,
// with defaults substituted for everything missing or malformed (method.Unknown,
// empty path, proto.Unknown, dropped header lines, empty body). The parser
// performs no I/O; reading the raw bytes off a socket is the caller's job.
//
// Lines are delimited strictly by CRLF; a bare LF is ordinary line content.
// The first empty line terminates the header block and everything past it is
// the body, preserved byte-for-byte including any embedded CRLFs.
func Parse(raw string) *http.Request {
	request := http.NewRequest(kv.NewPrealloc(preallocHeaders))

	line, rest, _ := strings.Cut(raw, crlf)
	parseRequestLine(line, request)

	for {
		line, tail, found := strings.Cut(rest, crlf)
		if !found {
			// the input ran out before the header block boundary. Tolerate the
			// unterminated trailer as a header line; there is no body then.
			parseHeaderLine(line, request.Headers)
			return request
		}

		rest = tail
		if len(line) == 0 {
			request.Body = rest
			return request
		}

		parseHeaderLine(line, request.Headers)
	}
}

// parseRequestLine expects exactly three space-separated tokens: method,
// resource path and protocol. Missing tokens keep their defaults, extra
// tokens are ignored.
func parseRequestLine(line string, request *http.Request) {
	tokens := strings.Split(line, " ")

	request.Method = method.Parse(tokens[0])
	if len(tokens) > 1 {
		request.Resource = http.Resource{Path: tokens[1]}
	}
	if len(tokens) > 2 {
		request.Protocol = proto.FromToken(tokens[2])
	}
}

// parseHeaderLine splits the line on the first colon and trims both sides.
// A line with no colon is not a field line and is silently dropped. Duplicate
// keys overwrite: the last occurrence wins.
func parseHeaderLine(line string, headers http.Headers) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return
	}

	headers.Set(strings.TrimSpace(key), strings.TrimSpace(value))
}
