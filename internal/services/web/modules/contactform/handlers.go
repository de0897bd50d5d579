package contactform

import (
	"net/http"

	"github.com/brookmere/contactsite/internal/contact"
	"github.com/brookmere/contactsite/internal/services/shared/htmx"
	"github.com/brookmere/contactsite/internal/services/shared/weblang"
	"github.com/brookmere/contactsite/internal/services/web/platform/flash"
	"github.com/brookmere/contactsite/internal/services/web/platform/httpx"
	"github.com/brookmere/contactsite/internal/services/web/platform/requestmeta"
	"github.com/brookmere/contactsite/internal/services/web/routepath"
	webtemplates "github.com/brookmere/contactsite/internal/services/web/templates"
)

type handlers struct {
	service service
	policy  requestmeta.SchemePolicy
}

func newHandlers(s service, policy requestmeta.SchemePolicy) handlers {
	return handlers{service: s, policy: policy}
}

// resolveCopy picks the page language and copy, persisting an explicit
// query selection as a cookie.
func (h handlers) resolveCopy(w http.ResponseWriter, r *http.Request) (webtemplates.Copy, string) {
	tag, persist := weblang.ResolveTag(r)
	if persist {
		weblang.SetCookie(w, tag)
	}
	return webtemplates.CopyFor(tag), tag.String()
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
		return
	}
	copy, lang := h.resolveCopy(w, r)
	view := webtemplates.ContactFormView{Copy: copy}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		view.Toast = &notice
	}
	htmx.RenderPage(w, r,
		webtemplates.ContactMain(view),
		webtemplates.ContactPage(view, lang),
		htmx.TitleTag(copy.PageTitle),
	)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	copy, lang := h.resolveCopy(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := contact.FormData{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	outcome, err := h.service.submit(httpx.RequestContext(r), form)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if outcome.validationMessage != "" {
		view := webtemplates.ContactFormView{
			Copy:         copy,
			Form:         outcome.form,
			ErrorMessage: outcome.validationMessage,
		}
		htmx.RenderPageWithStatus(w, r,
			webtemplates.ContactFormCard(view),
			webtemplates.ContactPage(view, lang),
			htmx.TitleTag(copy.PageTitle),
			http.StatusBadRequest,
		)
		return
	}

	if !outcome.state.IsSuccess() {
		// Field values survive delivery failures verbatim.
		toast := flash.Destructive(copy.ToastFailedTitle, outcome.state.ErrorMessage())
		view := webtemplates.ContactFormView{
			Copy:         copy,
			Form:         outcome.form,
			ErrorMessage: outcome.state.ErrorMessage(),
			Toast:        &toast,
		}
		htmx.RenderPageWithStatus(w, r,
			webtemplates.ContactFormCard(view),
			webtemplates.ContactPage(view, lang),
			htmx.TitleTag(copy.PageTitle),
			http.StatusBadGateway,
		)
		return
	}

	flash.WriteWithPolicy(w, r, flash.Success(copy.ToastSentTitle, copy.ToastSentBody), h.policy)
	httpx.WriteRedirect(w, r, routepath.ContactSent)
}

func (h handlers) handleSent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed(http.MethodGet)(w, r)
		return
	}
	copy, lang := h.resolveCopy(w, r)
	var toast *flash.Notice
	if notice, ok := flash.ReadAndClear(w, r); ok {
		toast = &notice
	}
	htmx.RenderPage(w, r,
		webtemplates.SentMain(copy),
		webtemplates.SentPage(copy, lang, toast),
		htmx.TitleTag(copy.PageTitle),
	)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
