package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromToken(t *testing.T) {
	assert.Equal(t, HTTP11, FromToken("HTTP/1.1"))
	assert.Equal(t, HTTP2, FromToken("HTTP/2.0"))

	for _, token := range []string{"", "http/1.1", "HTTP/1.0", "HTTP/2", "321dshaui"} {
		assert.Equal(t, Unknown, FromToken(token), "token: %q", token)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "HTTP/1.1", HTTP11.String())
	assert.Equal(t, "HTTP/2.0", HTTP2.String())
	assert.Equal(t, "", Unknown.String())
}
