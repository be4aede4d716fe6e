package server

import (
	"context"
	nethttp "net/http"
)

// httpServer abstracts *http.Server so tests can substitute stubs.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Addr() string
	Handler() nethttp.Handler
}

type netHTTPServer struct {
	srv *nethttp.Server
}

func (n netHTTPServer) ListenAndServe() error {
	return n.srv.ListenAndServe()
}

func (n netHTTPServer) Shutdown(ctx context.Context) error {
	return n.srv.Shutdown(ctx)
}

func (n netHTTPServer) Addr() string {
	return n.srv.Addr
}

func (n netHTTPServer) Handler() nethttp.Handler {
	return n.srv.Handler
}
