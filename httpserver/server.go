package httpserver

import (
	"bytes"
	"io"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/indigo-web/utils/uf"
	"github.com/lilac-web/lilac/config"
	"github.com/lilac-web/lilac/http"
	"github.com/lilac-web/lilac/http/parser/http1"
)

/*
The server is a first layer around the message core, responsible for all the
low-level activity directly with sockets: it assembles a whole request string,
hands it to the parser and writes back whatever the handler built. The core
never touches the connection.
*/

const headersEnd = "\r\n\r\n"

// Handler produces a response for a parsed request.
type Handler func(*http.Request) *http.Response

// Server serves a single request per connection and closes it afterwards.
// Keep-alive and pipelining are intentionally not implemented.
type Server struct {
	cfg     *config.Config
	handler Handler
	sock    net.Listener
}

func New(handler Handler) *Server {
	return NewWithConfig(config.Default(), handler)
}

func NewWithConfig(cfg *config.Config, handler Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
	}
}

// Listen binds the address and serves it until the listener breaks.
func (s *Server) Listen(addr string) error {
	sock, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(sock)
}

// Serve runs the accept loop on an externally constructed listener.
func (s *Server) Serve(sock net.Listener) error {
	s.sock = sock

	for {
		conn, err := sock.Accept()
		if err != nil {
			// the listener is either closed via Stop or broken. Either way,
			// there is nothing to restart here by ourselves.
			return err
		}

		go s.serveConn(conn)
	}
}

// Stop closes the listener, releasing Serve. Connections already accepted
// finish their exchange.
func (s *Server) Stop() error {
	return s.sock.Close()
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	if s.cfg.NET.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.cfg.NET.ReadTimeout))
	}

	raw, err := readRequest(conn, s.cfg.NET.ReadBufferSize)
	if err != nil {
		return
	}

	response := s.handler(http1.Parse(raw))

	if _, err = conn.Write(uf.S2B(response.Build())); err != nil {
		log.Printf("httpserver: write: %s", err)
	}
}

// readRequest accumulates reads until the header block boundary appears, then
// drains as many more bytes as the advertised Content-Length promises. The
// parser itself never blocks on I/O, so the assembly must happen here.
func readRequest(conn net.Conn, buffsize int) (string, error) {
	var raw []byte
	buff := make([]byte, buffsize)

	for {
		n, err := conn.Read(buff)
		raw = append(raw, buff[:n]...)

		if i := bytes.Index(raw, []byte(headersEnd)); i != -1 {
			want := i + len(headersEnd) + contentLength(uf.B2S(raw[:i]))

			for len(raw) < want {
				n, err = conn.Read(buff)
				if n == 0 || err != nil {
					break
				}

				raw = append(raw, buff[:n]...)
			}

			return uf.B2S(raw), nil
		}

		if err != nil {
			if err == io.EOF && len(raw) > 0 {
				return uf.B2S(raw), nil
			}

			return "", err
		}
	}
}

// contentLength extracts the advertised body length from the header block by
// running it through the very parser the head will be fed to anyway. A missing
// or malformed value counts as no body.
func contentLength(head string) int {
	length, err := strconv.Atoi(http1.Parse(head).Headers.Value("content-length"))
	if err != nil || length < 0 {
		return 0
	}

	return length
}
