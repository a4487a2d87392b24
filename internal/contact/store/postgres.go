package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contacthub/internal/contact/models"
	"contacthub/internal/sentinel"
	"contacthub/migrations"
)

// Postgres persists contacts in PostgreSQL. Phone numbers are stored as a
// JSONB document alongside the row, matching the canonical wire shape.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed contact store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema applies the embedded migrations. Statements are idempotent
// so this is safe to run on every startup.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(entries)
	for _, name := range entries {
		stmt, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// Get retrieves a contact by ID.
func (s *Postgres) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	query := `
		SELECT id, name, category, phone_numbers
		FROM contacts
		WHERE id = $1
	`
	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// List returns all contacts.
func (s *Postgres) List(ctx context.Context) ([]*models.Contact, error) {
	query := `
		SELECT id, name, category, phone_numbers
		FROM contacts
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}

// Create inserts a new contact row.
func (s *Postgres) Create(ctx context.Context, contact *models.Contact) error {
	if contact == nil {
		return fmt.Errorf("contact is required")
	}
	phones, err := json.Marshal(contact.PhoneNumbers)
	if err != nil {
		return fmt.Errorf("encode phone numbers: %w", err)
	}
	query := `
		INSERT INTO contacts (id, name, category, phone_numbers)
		VALUES ($1, $2, $3, $4)
	`
	_, err = s.db.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		string(contact.Category),
		phones,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contact id taken: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// Update replaces an existing contact row in full.
func (s *Postgres) Update(ctx context.Context, id uuid.UUID, contact *models.Contact) error {
	if contact == nil {
		return fmt.Errorf("contact is required")
	}
	phones, err := json.Marshal(contact.PhoneNumbers)
	if err != nil {
		return fmt.Errorf("encode phone numbers: %w", err)
	}
	query := `
		UPDATE contacts
		SET name = $2, category = $3, phone_numbers = $4
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		id,
		contact.Name,
		string(contact.Category),
		phones,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Delete removes a contact row.
func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// FindByNameAndCategory retrieves a contact by its uniqueness key. The
// duplicate check happens here at create time only; updates are not
// constrained, so there is no unique index on (name, category).
func (s *Postgres) FindByNameAndCategory(ctx context.Context, name string, category models.Category) (*models.Contact, error) {
	query := `
		SELECT id, name, category, phone_numbers
		FROM contacts
		WHERE name = $1 AND category = $2
	`
	contact, err := scanContact(s.db.QueryRowContext(ctx, query, name, string(category)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find contact by name and category: %w", err)
	}
	return contact, nil
}

// Count returns the total number of contacts.
func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

type contactRow interface {
	Scan(dest ...any) error
}

func scanContact(row contactRow) (*models.Contact, error) {
	var contact models.Contact
	var category string
	var phones []byte
	if err := row.Scan(&contact.ID, &contact.Name, &category, &phones); err != nil {
		return nil, err
	}
	contact.Category = models.Category(category)
	if err := json.Unmarshal(phones, &contact.PhoneNumbers); err != nil {
		return nil, fmt.Errorf("decode phone numbers: %w", err)
	}
	return &contact, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
