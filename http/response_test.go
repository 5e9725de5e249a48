package http

import (
	"testing"

	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/http/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBuild(t *testing.T) {
	t.Run("empty response", func(t *testing.T) {
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", NewResponse().Build())
	})

	t.Run("build is idempotent", func(t *testing.T) {
		resp := NewResponse().
			Code(status.NotFound).
			Header("Content-Type", "text/plain").
			String("nothing here")

		first := resp.Build()
		second := resp.Build()
		require.Equal(t, first, second)
	})

	t.Run("mutation between builds", func(t *testing.T) {
		resp := NewResponse()
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", resp.Build())

		resp.Code(status.Teapot)
		require.Equal(t, "HTTP/1.1 418 I'm a teapot\r\n\r\n", resp.Build())
	})

	t.Run("full response", func(t *testing.T) {
		resp := NewResponse().
			Code(status.NotFound).
			Header("Content-Type", "text/html").
			String("Item was shipped on 21st Dec 2020")

		want := "HTTP/1.1 404 Not Found\r\n" +
			"Content-Type: text/html\r\n" +
			"Content-Length: 33\r\n" +
			"\r\n" +
			"Item was shipped on 21st Dec 2020"
		require.Equal(t, want, resp.Build())
	})

	t.Run("header overwrites", func(t *testing.T) {
		resp := NewResponse().
			Header("Server", "first").
			Header("Server", "second")

		require.Equal(t, "HTTP/1.1 200 OK\r\nServer: second\r\n\r\n", resp.Build())
	})

	t.Run("custom protocol and status", func(t *testing.T) {
		resp := NewResponse().
			Protocol(proto.HTTP2).
			Code(status.Code(599)).
			Status("Custom")

		require.Equal(t, "HTTP/2.0 599 Custom\r\n\r\n", resp.Build())
	})
}

func TestResponseJSON(t *testing.T) {
	resp, err := NewResponse().JSON(map[string]string{"hello": "world"})
	require.NoError(t, err)

	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 17\r\n" +
		"\r\n" +
		`{"hello":"world"}`
	assert.Equal(t, want, resp.Build())
}
