package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/brookmere/contactsite/internal/contact"
	"github.com/brookmere/contactsite/internal/services/web/platform/flash"
	"golang.org/x/text/language"
)

func TestContactFormCardRendersIdleForm(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	view := ContactFormView{Copy: CopyFor(language.AmericanEnglish)}
	if err := ContactFormCard(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()

	for _, marker := range []string{
		`id="contact-form"`,
		`hx-post="/contact"`,
		`hx-disabled-elt`,
		`<span class="send-label">Send Message</span>`,
		`<span class="sending-label">Sending Message…</span>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("form card missing %q: %q", marker, got)
		}
	}
	if strings.Contains(got, "error-banner") {
		t.Fatalf("idle form should not render an error banner: %q", got)
	}
}

func TestContactFormCardRendersErrorBannerAndPreservedValues(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	view := ContactFormView{
		Copy:         CopyFor(language.AmericanEnglish),
		Form:         contact.FormData{Name: "Ada", Email: "ada@example.org", Message: "hello"},
		ErrorMessage: contact.FailureMessage,
	}
	if err := ContactFormCard(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `role="alert"`) {
		t.Fatalf("expected error banner, got %q", got)
	}
	if !strings.Contains(got, contact.FailureMessage) {
		t.Fatalf("banner missing failure message: %q", got)
	}
	for _, marker := range []string{`value="Ada"`, `value="ada@example.org"`, `>hello</textarea>`} {
		if !strings.Contains(got, marker) {
			t.Fatalf("form card missing preserved value %q: %q", marker, got)
		}
	}
}

func TestContactFormCardEscapesUserValues(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	view := ContactFormView{
		Copy: CopyFor(language.AmericanEnglish),
		Form: contact.FormData{Name: `<script>alert("x")</script>`},
	}
	if err := ContactFormCard(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if strings.Contains(got, "<script>alert") {
		t.Fatalf("user value rendered unescaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped user value, got %q", got)
	}
}

func TestContactFormCardRendersOutOfBandToastOnFailure(t *testing.T) {
	t.Parallel()

	notice := flash.Destructive("Something went wrong", contact.FailureMessage)
	var b strings.Builder
	view := ContactFormView{Copy: CopyFor(language.AmericanEnglish), Toast: &notice}
	if err := ContactFormCard(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `hx-swap-oob="true"`) {
		t.Fatalf("expected out-of-band toast swap, got %q", got)
	}
	if !strings.Contains(got, `class="toast destructive"`) {
		t.Fatalf("expected destructive toast, got %q", got)
	}
}

func TestContactPageWrapsShellAndForm(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	view := ContactFormView{Copy: CopyFor(language.AmericanEnglish)}
	if err := ContactPage(view, "en-US").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()

	for _, marker := range []string{
		`<html lang="en-US">`,
		`<title>Get in Touch</title>`,
		`<h1>Get in Touch</h1>`,
		`class="subheading"`,
		`htmx.org`,
		`id="contact-form"`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("page missing %q", marker)
		}
	}
}

func TestSentCardLinksBackToFreshForm(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := SentCard(CopyFor(language.AmericanEnglish)).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "Message Sent!") {
		t.Fatalf("confirmation heading missing: %q", got)
	}
	if !strings.Contains(got, `href="/"`) {
		t.Fatalf("reset control missing: %q", got)
	}
	if !strings.Contains(got, "Send Another Message") {
		t.Fatalf("reset label missing: %q", got)
	}
}

func TestCopyForFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	if got := CopyFor(language.French); got != englishCopy {
		t.Fatalf("CopyFor(fr) should fall back to English copy")
	}
	if got := CopyFor(language.BrazilianPortuguese); got != portugueseCopy {
		t.Fatalf("CopyFor(pt-BR) should return Portuguese copy")
	}
}
