// Package handler exposes the contact CRUD REST surface consumed by the
// GraphQL gateway. All bodies use the canonical snake_case field names.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contacthub/internal/contact/models"
	"contacthub/internal/platform/middleware"
	dErrors "contacthub/pkg/domain-errors"
	"contacthub/pkg/platform/httputil"
)

// Service defines the contact operations the handler depends on.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler serves the /contacts routes.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a contact handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts contact routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contacts", h.HandleList)
	r.Get("/contacts/{id}", h.HandleGet)
	r.Post("/contacts", h.HandleCreate)
	r.Put("/contacts/{id}", h.HandleUpdate)
	r.Delete("/contacts/{id}", h.HandleDelete)
}

// ContactRequest is the write body for create and update. Update replaces
// the whole record; omitted fields are not preserved.
type ContactRequest struct {
	Name         string               `json:"name"`
	Category     models.Category      `json:"category"`
	PhoneNumbers []models.PhoneNumber `json:"phone_numbers"`
}

func (r *ContactRequest) toModel() *models.Contact {
	return &models.Contact{
		Name:         r.Name,
		Category:     r.Category,
		PhoneNumbers: r.PhoneNumbers,
	}
}

// HandleList returns all contacts.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contacts, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list contacts failed", "error", err, "request_id", middleware.GetRequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}
	httputil.WriteJSON(w, http.StatusOK, contacts)
}

// HandleGet returns a single contact.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.contactID(w, r)
	if !ok {
		return
	}

	contact, err := h.service.Get(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, contact)
}

// HandleCreate creates a contact. Duplicate (name, category) pairs are
// rejected with 400.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[ContactRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, err := h.service.Create(ctx, req.toModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "create contact failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate replaces a contact in full.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	id, ok := h.contactID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeJSON[ContactRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	updated, err := h.service.Update(ctx, id, req.toModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "update contact failed", "error", err, "request_id", requestID, "contact_id", id)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete removes a contact.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.contactID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "delete contact failed", "error", err, "request_id", middleware.GetRequestID(ctx), "contact_id", id)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contactID parses the path ID. Unparseable IDs get the not-found shape
// since no contact can exist under them.
func (h *Handler) contactID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Contact not found"))
		return uuid.Nil, false
	}
	return id, true
}
