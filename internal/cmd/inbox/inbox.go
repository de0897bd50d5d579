// Package inbox wires configuration parsing and startup for the inbox
// service.
package inbox

import (
	"context"
	"flag"
	"fmt"

	"github.com/brookmere/contactsite/internal/platform/config"
	"github.com/brookmere/contactsite/internal/platform/otel"
	"github.com/brookmere/contactsite/internal/services/inbox"
)

// Config holds the inbox command configuration.
type Config struct {
	HTTPAddr    string `env:"CONTACTSITE_INBOX_HTTP_ADDR" envDefault:"localhost:8081"`
	StoragePath string `env:"CONTACTSITE_INBOX_STORAGE_PATH" envDefault:"inbox.db"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the inbox server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "contactsite-inbox")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	server, err := inbox.New(inbox.Config{
		HTTPAddr:    cfg.HTTPAddr,
		StoragePath: cfg.StoragePath,
	})
	if err != nil {
		return fmt.Errorf("init inbox server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve inbox: %w", err)
	}
	return nil
}
