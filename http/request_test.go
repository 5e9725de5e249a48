package http

import (
	"testing"

	"github.com/lilac-web/lilac/kv"
	"github.com/stretchr/testify/require"
)

func TestRequestJSON(t *testing.T) {
	type greeting struct {
		Hello string `json:"hello"`
	}

	t.Run("well-formed body", func(t *testing.T) {
		request := NewRequest(kv.New())
		request.Body = `{"hello": "world"}`

		var model greeting
		require.NoError(t, request.JSON(&model))
		require.Equal(t, "world", model.Hello)
	})

	t.Run("malformed body", func(t *testing.T) {
		request := NewRequest(kv.New())
		request.Body = `{"hello":`

		var model greeting
		require.Error(t, request.JSON(&model))
	})
}

func TestResourceEquality(t *testing.T) {
	require.Equal(t, Resource{Path: "/example"}, Resource{Path: "/example"})
	require.NotEqual(t, Resource{Path: "/example"}, Resource{Path: "/"})
}
