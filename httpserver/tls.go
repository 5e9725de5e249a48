package httpserver

import (
	"crypto/tls"
	"os"
	"path/filepath"

	"golang.org/x/crypto/acme/autocert"
)

// ListenTLS serves the address using the certificate and key files.
func (s *Server) ListenTLS(addr, cert, key string) error {
	certificate, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		return err
	}

	sock, err := tls.Listen("tcp", addr, &tls.Config{
		Certificates: []tls.Certificate{certificate},
	})
	if err != nil {
		return err
	}

	return s.Serve(sock)
}

// ListenAutoTLS serves the address with certificates obtained automatically
// via ACME. Domains, when given, restrict the hosts certificates are issued
// for. Calling it implies accepting the CA's Terms of Service.
func (s *Server) ListenAutoTLS(addr string, domains ...string) error {
	m := &autocert.Manager{
		Prompt: autocert.AcceptTOS,
	}

	if len(domains) > 0 {
		m.HostPolicy = autocert.HostWhitelist(domains...)
	}

	if cache, err := certCacheDir(); err == nil {
		m.Cache = autocert.DirCache(cache)
	}

	sock, err := tls.Listen("tcp", addr, &tls.Config{
		GetCertificate: m.GetCertificate,
	})
	if err != nil {
		return err
	}

	return s.Serve(sock)
}

func certCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, "lilac-autocert")

	return dir, os.MkdirAll(dir, 0700)
}
