// Package graphql implements the gateway's GraphQL surface: resolver
// dispatch onto the contact service, node identity handling, and the
// camelCase/snake_case translation at the boundary.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"contacthub/internal/gateway/nodeid"
	"contacthub/internal/gateway/translate"
	dErrors "contacthub/pkg/domain-errors"
)

//go:generate mockgen -source=resolver.go -destination=mocks/backend.go -package=mocks Backend

// Backend is the contact service as seen by the resolvers. Records cross
// this boundary in canonical snake_case form; errors carry domain codes.
type Backend interface {
	ListContacts(ctx context.Context) ([]map[string]any, error)
	GetContact(ctx context.Context, id string) (map[string]any, error)
	CreateContact(ctx context.Context, payload map[string]any) (map[string]any, error)
	UpdateContact(ctx context.Context, id string, payload map[string]any) (map[string]any, error)
	DeleteContact(ctx context.Context, id string) error
}

// Resolver is the root resolver. It holds no state across requests;
// every operation is a single request-response cycle against the backend.
type Resolver struct {
	backend Backend
	logger  *slog.Logger
}

// NewResolver creates the root resolver.
func NewResolver(backend Backend, logger *slog.Logger) *Resolver {
	return &Resolver{backend: backend, logger: logger}
}

// MustSchema parses the schema against the resolver. It panics on a
// schema/resolver mismatch, which is a programming error.
func MustSchema(r *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, r)
}

// NewHandler returns the HTTP handler serving the GraphQL endpoint.
func NewHandler(r *Resolver) http.Handler {
	return &relay.Handler{Schema: MustSchema(r)}
}

// Contacts resolves the contacts query: fetch all records and translate
// each to the GraphQL shape. Backend failures fail the query.
func (r *Resolver) Contacts(ctx context.Context) ([]*contactResolver, error) {
	records, err := r.backend.ListContacts(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "list contacts failed", "error", err)
		return nil, fmt.Errorf("Error fetching contacts: %v", err)
	}

	out := make([]*contactResolver, 0, len(records))
	for _, record := range translate.ContactsToGraphQL(records) {
		out = append(out, &contactResolver{data: record})
	}
	return out, nil
}

type contactQueryInput struct {
	ContactID graphqlgo.ID
}

// Contact resolves the contact query. A node ID of the wrong type yields
// the error variant; an undecodable ID is treated as a raw local ID. A
// missing record yields the error variant naming the id, never a fault.
func (r *Resolver) Contact(ctx context.Context, args struct{ Input contactQueryInput }) (*contactResult, error) {
	contactID := string(args.Input.ContactID)
	if typeName, entityID, err := nodeid.Decode(contactID); err == nil {
		if typeName != translate.ContactTypeName {
			return contactFailure("Invalid contact type"), nil
		}
		contactID = entityID
	}

	record, err := r.backend.GetContact(ctx, contactID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return contactFailure(fmt.Sprintf("Contact with ID %s not found", contactID)), nil
		}
		r.logger.ErrorContext(ctx, "get contact failed", "error", err, "contact_id", contactID)
		return contactFailure(fmt.Sprintf("Error fetching contact: %v", err)), nil
	}
	return contactSuccess(translate.ContactToGraphQL(record)), nil
}

// Node resolves a node by its globally unique ID. Malformed IDs, unknown
// type tags, and missing records all yield null rather than an error;
// only backend failures distinct from not-found fail the query.
func (r *Resolver) Node(ctx context.Context, args struct{ ID graphqlgo.ID }) (*nodeResolver, error) {
	typeName, entityID, err := nodeid.Decode(string(args.ID))
	if err != nil {
		return nil, nil
	}
	if typeName != translate.ContactTypeName {
		return nil, nil
	}

	record, err := r.backend.GetContact(ctx, entityID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "node lookup failed", "error", err, "entity_id", entityID)
		return nil, fmt.Errorf("Error fetching contact: %v", err)
	}
	return &nodeResolver{contact: &contactResolver{data: translate.ContactToGraphQL(record)}}, nil
}

type phoneNumberInput struct {
	Number     string
	TypeNumber string
}

func phoneInputsToMaps(phones []phoneNumberInput) []any {
	out := make([]any, 0, len(phones))
	for _, phone := range phones {
		out = append(out, map[string]any{
			"number":     phone.Number,
			"typeNumber": phone.TypeNumber,
		})
	}
	return out
}

type createContactInput struct {
	Name         string
	Category     string
	PhoneNumbers []phoneNumberInput
}

func (in createContactInput) asMap() map[string]any {
	return map[string]any{
		"name":         in.Name,
		"category":     in.Category,
		"phoneNumbers": phoneInputsToMaps(in.PhoneNumbers),
	}
}

// CreateContact resolves the createContact mutation. A duplicate
// (name, category) pair yields the error variant with a fixed message.
func (r *Resolver) CreateContact(ctx context.Context, args struct{ Input createContactInput }) (*contactResult, error) {
	payload := translate.InputToPayload(args.Input.asMap())

	record, err := r.backend.CreateContact(ctx, payload)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			return contactFailure("Contact with this name and category already exists"), nil
		}
		r.logger.ErrorContext(ctx, "create contact failed", "error", err)
		return contactFailure(fmt.Sprintf("Error creating contact: %v", err)), nil
	}
	return contactSuccess(translate.ContactToGraphQL(record)), nil
}

type updateContactInput struct {
	ID           graphqlgo.ID
	Name         *string
	Category     *string
	PhoneNumbers *[]phoneNumberInput
}

// UpdateContact resolves the updateContact mutation. The backend only
// accepts whole-record replacement, so the existing record is fetched
// first and caller-supplied fields are merged over it. Omitted phone
// numbers are reused verbatim from the existing record.
func (r *Resolver) UpdateContact(ctx context.Context, args struct{ Input updateContactInput }) (*contactResult, error) {
	typeName, contactID, err := nodeid.Decode(string(args.Input.ID))
	if err != nil {
		return contactFailure("Invalid contact ID format"), nil
	}
	if typeName != translate.ContactTypeName {
		return contactFailure("Invalid contact type"), nil
	}

	existing, err := r.backend.GetContact(ctx, contactID)
	if err != nil {
		return r.updateFailure(ctx, contactID, nil, err), nil
	}

	payload := map[string]any{
		"name":     existing["name"],
		"category": existing["category"],
	}
	if args.Input.Name != nil {
		payload["name"] = *args.Input.Name
	}
	if args.Input.Category != nil {
		payload["category"] = *args.Input.Category
	}
	if args.Input.PhoneNumbers != nil {
		payload["phone_numbers"] = translate.PhoneNumbersToPayload(phoneInputsToMaps(*args.Input.PhoneNumbers))
	} else {
		// Already canonical snake_case; no re-conversion.
		payload["phone_numbers"] = existing["phone_numbers"]
	}

	record, err := r.backend.UpdateContact(ctx, contactID, payload)
	if err != nil {
		return r.updateFailure(ctx, contactID, payload, err), nil
	}
	return contactSuccess(translate.ContactToGraphQL(record)), nil
}

func (r *Resolver) updateFailure(ctx context.Context, contactID string, payload map[string]any, err error) *contactResult {
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		return contactFailure(fmt.Sprintf("Contact %s not found", contactID))
	case dErrors.HasCode(err, dErrors.CodeValidation):
		msg := "Validation error updating contact"
		var dErr *dErrors.Error
		if errors.As(err, &dErr) && dErr.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, dErr.Message)
		}
		if payload != nil {
			msg = fmt.Sprintf("%s. Payload: %v", msg, payload)
		}
		return contactFailure(msg)
	default:
		r.logger.ErrorContext(ctx, "update contact failed", "error", err, "contact_id", contactID)
		return contactFailure(fmt.Sprintf("Error updating contact: %v", err))
	}
}

type deleteContactInput struct {
	ID graphqlgo.ID
}

// DeleteContact resolves the deleteContact mutation. Success carries a
// fixed confirmation message; no contact payload is returned.
func (r *Resolver) DeleteContact(ctx context.Context, args struct{ Input deleteContactInput }) (*deletePayloadResolver, error) {
	typeName, contactID, err := nodeid.Decode(string(args.Input.ID))
	if err != nil {
		return &deletePayloadResolver{message: "Invalid contact ID format"}, nil
	}
	if typeName != translate.ContactTypeName {
		return &deletePayloadResolver{message: "Invalid contact type"}, nil
	}

	if err := r.backend.DeleteContact(ctx, contactID); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return &deletePayloadResolver{message: fmt.Sprintf("Contact with ID %s not found", contactID)}, nil
		}
		r.logger.ErrorContext(ctx, "delete contact failed", "error", err, "contact_id", contactID)
		return &deletePayloadResolver{message: fmt.Sprintf("Error deleting contact: %v", err)}, nil
	}
	return &deletePayloadResolver{message: "Contact deleted successfully"}, nil
}
