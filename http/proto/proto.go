package proto

type Proto uint8

const (
	// Unknown is the fallback for a missing or unrecognized protocol token.
	Unknown Proto = iota
	HTTP11
	HTTP2
)

const (
	tokenHTTP11 = "HTTP/1.1"
	tokenHTTP2  = "HTTP/2.0"
)

// FromToken is a total conversion of the trailing request line token. The match
// is case-sensitive: anything except the known literals results in Unknown.
func FromToken(token string) Proto {
	switch token {
	case tokenHTTP11:
		return HTTP11
	case tokenHTTP2:
		return HTTP2
	default:
		return Unknown
	}
}

func (p Proto) String() string {
	lut := [...]string{Unknown: "", HTTP11: tokenHTTP11, HTTP2: tokenHTTP2}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}
