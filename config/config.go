package config

import "time"

type NET struct {
	// ReadBufferSize is a size of buffer in bytes which will be used to read
	// from a socket.
	ReadBufferSize int
	// ReadTimeout limits how long a connection may take to deliver its request.
	// Zero disables the deadline.
	ReadTimeout time.Duration
}

// Config holds the settings of the driver around the message core. The core
// itself is purely syntactic and has no knobs.
//
// Always modify defaults (returned via Default()) instead of initializing the
// config manually.
type Config struct {
	NET NET
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 2048,
			ReadTimeout:    90 * time.Second,
		},
	}
}
