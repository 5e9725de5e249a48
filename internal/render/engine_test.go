package render

import (
	"testing"

	"github.com/lilac-web/lilac/http/proto"
	"github.com/lilac-web/lilac/http/status"
	"github.com/lilac-web/lilac/internal/response"
	"github.com/lilac-web/lilac/kv"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("status line only", func(t *testing.T) {
		fields := &response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Headers:  kv.New(),
		}

		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", NewEngine().Render(fields))
	})

	t.Run("headers in insertion order", func(t *testing.T) {
		fields := &response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.NotFound,
			Headers: kv.New().
				Set("Content-Type", "text/html").
				Set("Server", "lilac"),
			Body: "Item was shipped on 21st Dec 2020",
		}

		want := "HTTP/1.1 404 Not Found\r\n" +
			"Content-Type: text/html\r\n" +
			"Server: lilac\r\n" +
			"Content-Length: 33\r\n" +
			"\r\n" +
			"Item was shipped on 21st Dec 2020"
		require.Equal(t, want, NewEngine().Render(fields))
	})

	t.Run("explicit content-length is not duplicated", func(t *testing.T) {
		fields := &response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Headers:  kv.New().Set("content-length", "5"),
			Body:     "hello",
		}

		want := "HTTP/1.1 200 OK\r\ncontent-length: 5\r\n\r\nhello"
		require.Equal(t, want, NewEngine().Render(fields))
	})

	t.Run("unknown protocol falls back to HTTP/1.1", func(t *testing.T) {
		fields := &response.Fields{
			Code:    status.OK,
			Headers: kv.New(),
		}

		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", NewEngine().Render(fields))
	})

	t.Run("custom status text", func(t *testing.T) {
		fields := &response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.Code(999),
			Status:   "Custom Enough",
			Headers:  kv.New(),
		}

		require.Equal(t, "HTTP/1.1 999 Custom Enough\r\n\r\n", NewEngine().Render(fields))
	})

	t.Run("unknown code without text renders empty status", func(t *testing.T) {
		fields := &response.Fields{
			Protocol: proto.HTTP11,
			Code:     status.Code(799),
			Headers:  kv.New(),
		}

		require.Equal(t, "HTTP/1.1 799 \r\n\r\n", NewEngine().Render(fields))
	})
}
