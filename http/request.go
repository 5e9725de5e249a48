package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/lilac-web/lilac/http/method"
	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Resource is the request target. The only form the parser recognizes is the
// origin-form path, stored verbatim: no normalization, no percent-decoding.
// Two resources are equal iff their paths match.
type Resource struct {
	Path string
}

// Request is a parsed HTTP request. The parser populates it exactly once;
// consumers read the fields directly and never mutate them.
type Request struct {
	Method   method.Method
	Resource Resource
	Protocol proto.Proto
	// Headers holds unique header keys with last-write-wins semantics. Keys keep
	// the spelling they arrived with, lookup is case-insensitive.
	Headers Headers
	// Body is the message body verbatim, including any embedded line breaks.
	Body string
}

func NewRequest(headers Headers) *Request {
	return &Request{
		Method:  method.Unknown,
		Headers: headers,
	}
}

// JSON decodes the message body into the model.
func (r *Request) JSON(model any) error {
	iterator := json.ConfigDefault.BorrowIterator(uf.S2B(r.Body))
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
