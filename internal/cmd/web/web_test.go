package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want localhost:8080", cfg.HTTPAddr)
	}
	if cfg.SubmitURL != "http://localhost:8081/.netlify/functions/submit" {
		t.Fatalf("SubmitURL = %q", cfg.SubmitURL)
	}
	if cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto should default to false")
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONTACTSITE_WEB_HTTP_ADDR", "0.0.0.0:9090")
	t.Setenv("CONTACTSITE_WEB_SUBMIT_URL", "http://inbox.internal/submit")
	t.Setenv("CONTACTSITE_WEB_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9090" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SubmitURL != "http://inbox.internal/submit" {
		t.Fatalf("SubmitURL = %q", cfg.SubmitURL)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto not read from env")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONTACTSITE_WEB_HTTP_ADDR", "0.0.0.0:9090")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7070"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:7070" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
}
