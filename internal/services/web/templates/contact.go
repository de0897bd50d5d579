package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/brookmere/contactsite/internal/contact"
	"github.com/brookmere/contactsite/internal/services/web/platform/flash"
	"github.com/brookmere/contactsite/internal/services/web/routepath"
)

// ContactFormView carries everything the form card needs to render one
// state of the contact form.
type ContactFormView struct {
	Copy Copy
	Form contact.FormData
	// ErrorMessage renders the inline banner; empty hides it.
	ErrorMessage string
	// Toast renders inline with the swapped fragment on failed posts,
	// where no redirect carries a flash cookie.
	Toast *flash.Notice
}

// ContactFormCard renders the form card: error banner, fields, and the
// submit control. The htmx attributes disable every field and the button
// while the post is in flight and swap the button label to the sending
// variant, so a second submit cannot start until the first settles.
func ContactFormCard(view ContactFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="contact-form" class="card">`); err != nil {
			return err
		}
		if view.Toast != nil {
			if _, err := io.WriteString(w, `<div id="toast-region" hx-swap-oob="true" class="toast-region">`); err != nil {
				return err
			}
			if err := Toast(*view.Toast).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		if view.ErrorMessage != "" {
			if _, err := fmt.Fprintf(w, `<div class="error-banner" role="alert">%s</div>`, esc(view.ErrorMessage)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s" hx-post="%s" hx-target="#contact-form" hx-swap="outerHTML" hx-disabled-elt="find input, find textarea, find button">`+
				`<div class="field"><label for="name">%s</label>`+
				`<input id="name" name="name" type="text" placeholder="%s" value="%s"></div>`+
				`<div class="field"><label for="email">%s</label>`+
				`<input id="email" name="email" type="text" placeholder="%s" value="%s"></div>`+
				`<div class="field"><label for="message">%s</label>`+
				`<textarea id="message" name="message" rows="5" placeholder="%s">%s</textarea></div>`+
				`<button type="submit"><span class="send-label">%s</span><span class="sending-label">%s</span></button>`+
				`</form></section>`,
			routepath.ContactSubmit, routepath.ContactSubmit,
			esc(view.Copy.NameLabel), esc(view.Copy.NamePlaceholder), esc(view.Form.Name),
			esc(view.Copy.EmailLabel), esc(view.Copy.EmailPlaceholder), esc(view.Form.Email),
			esc(view.Copy.MessageLabel), esc(view.Copy.MessagePlaceholder), esc(view.Form.Message),
			esc(view.Copy.SendLabel), esc(view.Copy.SendingLabel),
		)
		return err
	})
}

// ContactMain renders the page shell, static heading and subheading,
// around the form card.
func ContactMain(view ContactFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><p class="subheading">%s</p>`,
			esc(view.Copy.Heading), esc(view.Copy.Subheading)); err != nil {
			return err
		}
		return ContactFormCard(view).Render(ctx, w)
	})
}

// ContactPage is the full contact page document. The layout's toast
// region shows the notice; the card's out-of-band copy is only for
// fragment swaps, so it is stripped here to avoid rendering twice.
func ContactPage(view ContactFormView, lang string) templ.Component {
	toast := view.Toast
	view.Toast = nil
	return SiteLayout(LayoutOptions{
		Title:           view.Copy.PageTitle,
		MetaDescription: view.Copy.MetaDescription,
		Lang:            lang,
		Toast:           toast,
	}, ContactMain(view))
}

// SentCard renders the confirmation view that replaces the form after a
// delivered submission, with the reset control back to a fresh form.
func SentCard(copy Copy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section id="contact-form" class="card sent"><h2>%s</h2><p>%s</p>`+
				`<a href="%s" hx-get="%s" hx-target="main" hx-swap="innerHTML">%s</a></section>`,
			esc(copy.SentHeading), esc(copy.SentBody),
			routepath.Root, routepath.Root, esc(copy.SendAnotherLabel),
		)
		return err
	})
}

// SentMain renders the page shell around the confirmation card.
func SentMain(copy Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><p class="subheading">%s</p>`,
			esc(copy.Heading), esc(copy.Subheading)); err != nil {
			return err
		}
		return SentCard(copy).Render(ctx, w)
	})
}

// SentPage is the full confirmation page document.
func SentPage(copy Copy, lang string, toast *flash.Notice) templ.Component {
	return SiteLayout(LayoutOptions{
		Title:           copy.PageTitle,
		MetaDescription: copy.MetaDescription,
		Lang:            lang,
		Toast:           toast,
	}, SentMain(copy))
}
