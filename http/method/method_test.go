package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, method := range List {
		assert.Equal(t, method, Parse(method.String()))
	}
}

func TestParseUnknown(t *testing.T) {
	for _, token := range []string{"", "get", "GETT", "G", "LOREMIPSUM"} {
		assert.Equal(t, Unknown, Parse(token), "token: %q", token)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "", Unknown.String())
	assert.Equal(t, "", Method(200).String())
}

func BenchmarkParse(b *testing.B) {
	var parsed Method

	for _, method := range List {
		b.Run(method.String(), func(b *testing.B) {
			token := method.String()
			b.SetBytes(int64(len(token)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				parsed = Parse(token)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}
