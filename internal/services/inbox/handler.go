// Package inbox hosts the self-hosted submission endpoint. It accepts
// the contact form's JSON posts and files them into storage.
package inbox

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/brookmere/contactsite/internal/contact"
	"github.com/brookmere/contactsite/internal/platform/id"
	"github.com/brookmere/contactsite/internal/services/inbox/storage"
	"github.com/brookmere/contactsite/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxBodyBytes caps the accepted submission payload size.
const maxBodyBytes = 1 << 20

type handler struct {
	store  storage.SubmissionStore
	logger *log.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewHandler assembles the inbox HTTP handler. A nil logger falls back
// to the default logger.
func NewHandler(store storage.SubmissionStore, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := handler{
		store:  store,
		logger: logger,
		tracer: otel.Tracer("contactsite/inbox"),
		now:    func() time.Time { return time.Now().UTC() },
	}

	mux := http.NewServeMux()
	mux.Handle(contact.DefaultEndpointPath, httpx.Chain(
		http.HandlerFunc(h.handleSubmit),
		httpx.RequireMethod(http.MethodPost),
	))
	mux.HandleFunc("/health", h.handleHealth)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.RequestLogger(logger),
	)
}

// submitRequest mirrors the contact form's delivery payload.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	var payload submitRequest
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	form := contact.FormData{Name: payload.Name, Email: payload.Email, Message: payload.Message}
	if message, ok := form.Validate(); !ok {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, message)
		return
	}

	submissionID, err := id.NewID()
	if err != nil {
		h.logger.Printf("generate submission id: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	submission := storage.Submission{
		ID:         submissionID,
		Name:       form.Name,
		Email:      form.Email,
		Message:    form.Message,
		ReceivedAt: h.now(),
	}
	ctx, span := h.tracer.Start(r.Context(), "inbox.store_submission")
	err = h.store.CreateSubmission(ctx, submission)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		h.logger.Printf("store submission %s: %v", submissionID, err)
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	span.SetStatus(codes.Ok, "")
	span.End()

	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": submissionID})
}

func (h handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
