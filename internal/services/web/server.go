// Package web hosts the contact site HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/brookmere/contactsite/internal/contact"
	"github.com/brookmere/contactsite/internal/platform/timeouts"
	module "github.com/brookmere/contactsite/internal/services/web/module"
	"github.com/brookmere/contactsite/internal/services/web/modules/contactform"
	"github.com/brookmere/contactsite/internal/services/web/platform/httpx"
	"github.com/brookmere/contactsite/internal/services/web/platform/requestmeta"
)

// Config defines the inputs for the contact web server.
type Config struct {
	HTTPAddr string
	// SubmitURL is the submission endpoint submissions are delivered to.
	SubmitURL string
	// TrustForwardedProto honors X-Forwarded-Proto for cookie security
	// decisions when the server sits behind a TLS-terminating proxy.
	TrustForwardedProto bool
}

// Server hosts the contact site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the site handler from web modules plus request
// middleware. The deliverer is injectable so tests can stub delivery.
func NewHandler(config Config, deliverer contact.Deliverer) (http.Handler, error) {
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	mods := []module.Module{
		contactform.NewWithPolicy(deliverer, policy),
	}

	mux := http.NewServeMux()
	for _, mod := range mods {
		mount, err := mod.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", mod.ID(), err)
		}
		mux.Handle(mount.Prefix, mount.Handler)
	}

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.RequestLogger(nil),
	), nil
}

// New builds a contact web server from config.
func New(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	client, err := contact.NewClient(config.SubmitURL, &http.Client{Timeout: timeouts.Delivery}, nil)
	if err != nil {
		return nil, fmt.Errorf("build delivery client: %w", err)
	}

	handler, err := NewHandler(config, client)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("contact web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
