package inbox

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("inbox", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("HTTPAddr = %q, want localhost:8081", cfg.HTTPAddr)
	}
	if cfg.StoragePath != "inbox.db" {
		t.Fatalf("StoragePath = %q, want inbox.db", cfg.StoragePath)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CONTACTSITE_INBOX_STORAGE_PATH", "/var/lib/contactsite/inbox.db")

	fs := flag.NewFlagSet("inbox", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7081"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StoragePath != "/var/lib/contactsite/inbox.db" {
		t.Fatalf("StoragePath = %q, want env value", cfg.StoragePath)
	}
	if cfg.HTTPAddr != "localhost:7081" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
}
