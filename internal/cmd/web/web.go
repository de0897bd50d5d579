// Package web wires configuration parsing and startup for the contact
// web service.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/brookmere/contactsite/internal/platform/config"
	"github.com/brookmere/contactsite/internal/platform/otel"
	"github.com/brookmere/contactsite/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"CONTACTSITE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	SubmitURL           string `env:"CONTACTSITE_WEB_SUBMIT_URL" envDefault:"http://localhost:8081/.netlify/functions/submit"`
	TrustForwardedProto bool   `env:"CONTACTSITE_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SubmitURL, "submit-url", cfg.SubmitURL, "submission endpoint URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto from a fronting proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the contact web server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "contactsite-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	server, err := web.New(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		SubmitURL:           cfg.SubmitURL,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
