// Package service orchestrates contact CRUD against the store, owning
// validation, the create-time uniqueness check, and the translation of
// sentinel errors into domain errors.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	contactmetrics "contacthub/internal/contact/metrics"
	"contacthub/internal/contact/models"
	"contacthub/internal/contact/store"
	"contacthub/internal/sentinel"
	dErrors "contacthub/pkg/domain-errors"
)

// Service orchestrates contact management.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *contactmetrics.Metrics
}

// Option configures the service.
type Option func(s *Service)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics injects Prometheus metrics.
func WithMetrics(m *contactmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates a contact service on top of the given store.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a single contact by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	defer s.observe("get", time.Now())
	contact, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Contact not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get contact")
	}
	return contact, nil
}

// List returns all contacts.
func (s *Service) List(ctx context.Context) ([]*models.Contact, error) {
	defer s.observe("list", time.Now())
	contacts, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contacts")
	}
	return contacts, nil
}

// Create validates and stores a new contact. The (name, category) pair
// must be unique; duplicates are rejected here, on create only.
func (s *Service) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	defer s.observe("create", time.Now())
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.FindByNameAndCategory(ctx, contact.Name, contact.Category); err == nil {
		if s.metrics != nil {
			s.metrics.CreateConflicts.Inc()
		}
		return nil, dErrors.New(dErrors.CodeConflict, "Contact with this name and category already exists")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check for duplicate contact")
	}

	created := contact.Clone()
	created.ID = uuid.New()
	if created.PhoneNumbers == nil {
		created.PhoneNumbers = []models.PhoneNumber{}
	}
	if err := s.store.Create(ctx, created); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create contact")
	}

	if s.metrics != nil {
		s.metrics.ContactsCreated.Inc()
	}
	s.logger.InfoContext(ctx, "contact created", "contact_id", created.ID, "category", created.Category)
	return created, nil
}

// Update replaces the stored record in full; there are no partial-patch
// semantics at this boundary.
func (s *Service) Update(ctx context.Context, id uuid.UUID, contact *models.Contact) (*models.Contact, error) {
	defer s.observe("update", time.Now())
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	updated := contact.Clone()
	updated.ID = id
	if updated.PhoneNumbers == nil {
		updated.PhoneNumbers = []models.PhoneNumber{}
	}
	if err := s.store.Update(ctx, id, updated); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Contact not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update contact")
	}

	if s.metrics != nil {
		s.metrics.ContactsUpdated.Inc()
	}
	s.logger.InfoContext(ctx, "contact updated", "contact_id", id)
	return updated, nil
}

// Delete removes a contact by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	defer s.observe("delete", time.Now())
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Contact not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete contact")
	}

	if s.metrics != nil {
		s.metrics.ContactsDeleted.Inc()
	}
	s.logger.InfoContext(ctx, "contact deleted", "contact_id", id)
	return nil
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
