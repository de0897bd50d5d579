// Package contactform serves the contact page: form render, submission,
// and the delivered confirmation view.
package contactform

import (
	"errors"
	"net/http"

	"github.com/brookmere/contactsite/internal/contact"
	module "github.com/brookmere/contactsite/internal/services/web/module"
	"github.com/brookmere/contactsite/internal/services/web/platform/httpx"
	"github.com/brookmere/contactsite/internal/services/web/platform/requestmeta"
	"github.com/brookmere/contactsite/internal/services/web/routepath"
)

// Module provides the contact form routes.
type Module struct {
	deliverer contact.Deliverer
	policy    requestmeta.SchemePolicy
}

// New returns a contact form module delivering through the given client.
func New(deliverer contact.Deliverer) Module {
	return NewWithPolicy(deliverer, requestmeta.SchemePolicy{})
}

// NewWithPolicy returns a contact form module with an explicit request
// scheme policy for cookie security decisions.
func NewWithPolicy(deliverer contact.Deliverer, policy requestmeta.SchemePolicy) Module {
	return Module{deliverer: deliverer, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "contactform"
}

// Mount wires the contact routes under the site root.
func (m Module) Mount() (module.Mount, error) {
	if m.deliverer == nil {
		return module.Mount{}, errors.New("contactform: deliverer is required")
	}
	mux := http.NewServeMux()
	h := newHandlers(newService(m.deliverer), m.policy)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(routepath.Root, h.handleRoot)
	mux.Handle(routepath.ContactSubmit, httpx.Chain(
		http.HandlerFunc(h.handleSubmit),
		httpx.RequireMethod(http.MethodPost),
	))
	mux.HandleFunc(routepath.ContactSent, h.handleSent)
	mux.HandleFunc(routepath.Health, h.handleHealth)
}
