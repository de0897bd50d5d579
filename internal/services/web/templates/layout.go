package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/brookmere/contactsite/internal/services/web/platform/flash"
)

// LayoutOptions carries the page-level rendering inputs.
type LayoutOptions struct {
	Title           string
	MetaDescription string
	Lang            string
	Toast           *flash.Notice
}

func esc(value string) string {
	return html.EscapeString(value)
}

// siteStyles is the minimal inline stylesheet for the contact page. The
// htmx-request rules drive the submit control's in-flight presentation.
const siteStyles = `
:root { color-scheme: light dark; font-family: system-ui, sans-serif; }
body { margin: 0 auto; max-width: 40rem; padding: 2rem 1rem; line-height: 1.5; }
main h1 { margin-bottom: 0.25rem; }
.subheading { color: #666; margin-top: 0; }
.card { border: 1px solid #8884; border-radius: 0.5rem; padding: 1.5rem; margin-top: 1.5rem; }
.field { margin-bottom: 1rem; }
.field label { display: block; font-weight: 600; margin-bottom: 0.25rem; }
.field input, .field textarea { width: 100%; box-sizing: border-box; padding: 0.5rem; border: 1px solid #8886; border-radius: 0.25rem; font: inherit; }
.error-banner { border: 1px solid #c33; background: #c331; color: #c33; border-radius: 0.25rem; padding: 0.5rem 0.75rem; margin-bottom: 1rem; }
button[type=submit] { padding: 0.5rem 1.25rem; border-radius: 0.25rem; border: none; background: #246; color: #fff; font: inherit; cursor: pointer; }
button[type=submit][disabled] { opacity: 0.6; cursor: wait; }
.sending-label { display: none; }
.htmx-request .sending-label, .htmx-request.sending-label { display: inline; }
.htmx-request .send-label { display: none; }
.toast-region { position: fixed; top: 1rem; right: 1rem; display: grid; gap: 0.5rem; }
.toast { border-radius: 0.5rem; padding: 0.75rem 1rem; box-shadow: 0 2px 8px #0003; background: #fff; color: #222; border-left: 4px solid #2a6; }
.toast.destructive { border-left-color: #c33; }
.toast h3 { margin: 0 0 0.25rem; font-size: 1rem; }
.toast p { margin: 0; font-size: 0.875rem; }
`

// Toast renders one transient notice.
func Toast(notice flash.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "toast"
		if notice.Kind == flash.KindDestructive {
			class += " destructive"
		}
		_, err := fmt.Fprintf(w,
			`<div class="%s" role="status"><h3>%s</h3><p>%s</p></div>`,
			class, esc(notice.Title), esc(notice.Description),
		)
		return err
	})
}

// ToastRegion renders the fixed toast container, empty when no notice is
// pending so htmx swaps always have a target.
func ToastRegion(notice *flash.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="toast-region" class="toast-region">`); err != nil {
			return err
		}
		if notice != nil {
			if err := Toast(*notice).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// SiteLayout wraps main content in the site chrome: head metadata, the
// htmx runtime, styles, and the toast region.
func SiteLayout(options LayoutOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := options.Lang
		if lang == "" {
			lang = "en-US"
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<meta name="description" content="%s">`+
				`<title>%s</title>`+
				`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`+
				`<style>%s</style>`+
				`</head><body>`,
			esc(lang), esc(options.MetaDescription), esc(options.Title), siteStyles,
		)
		if err != nil {
			return err
		}
		if err := ToastRegion(options.Toast).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}
