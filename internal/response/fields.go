package response

import (
	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/http/status"
	"github.com/lilac-web/lilac/kv"
)

// Fields is the set of response attributes shared between the public builder
// and the render engine. Headers must be non-nil.
type Fields struct {
	Protocol proto.Proto
	Code     status.Code
	// Status overrides the text derived from Code when non-empty.
	Status  status.Status
	Headers *kv.Storage
	Body    string
}
