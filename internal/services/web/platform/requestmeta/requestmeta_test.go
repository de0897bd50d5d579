package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSPlainRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTTPS(req) {
		t.Fatalf("IsHTTPS() = true for plain request, want false")
	}
}

func TestIsHTTPSIgnoresForwardedProtoByDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req) {
		t.Fatalf("IsHTTPS() trusted X-Forwarded-Proto without policy opt-in")
	}
}

func TestIsHTTPSWithPolicyTrustsForwardedProto(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "HTTPS ")
	if !IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatalf("IsHTTPSWithPolicy() = false with trusted forwarded proto, want true")
	}
}

func TestIsHTTPSTLSRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	if !IsHTTPS(req) {
		t.Fatalf("IsHTTPS() = false for TLS request, want true")
	}
}

func TestIsHTTPSNilRequest(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatalf("IsHTTPS(nil) = true, want false")
	}
}
