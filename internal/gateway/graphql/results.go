package graphql

import (
	"fmt"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// contactResolver serves ContactType fields from a translated record:
// camelCase keys, opaque node ID already encoded.
type contactResolver struct {
	data map[string]any
}

func (r *contactResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.stringField("id"))
}

func (r *contactResolver) Name() string {
	return r.stringField("name")
}

func (r *contactResolver) Category() string {
	return r.stringField("category")
}

func (r *contactResolver) PhoneNumbers() []*phoneNumberResolver {
	phones, _ := r.data["phoneNumbers"].([]any)
	out := make([]*phoneNumberResolver, 0, len(phones))
	for _, item := range phones {
		if phone, ok := item.(map[string]any); ok {
			out = append(out, &phoneNumberResolver{data: phone})
		}
	}
	return out
}

func (r *contactResolver) stringField(key string) string {
	value, ok := r.data[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

type phoneNumberResolver struct {
	data map[string]any
}

func (r *phoneNumberResolver) Number() string {
	s, _ := r.data["number"].(string)
	return s
}

func (r *phoneNumberResolver) TypeNumber() string {
	s, _ := r.data["typeNumber"].(string)
	return s
}

// errorResolver serves the ErrorType message field.
type errorResolver struct {
	message string
}

func (r *errorResolver) Message() string {
	return r.message
}

// contactResult is the tagged union behind ContactUnion and
// CreateContactPayload. Exactly one branch is set; the wire shape still
// discriminates structurally (a message key and no contact fields means
// the error variant), so GraphQL clients see the same schema as before.
type contactResult struct {
	contact *contactResolver
	failure *errorResolver
}

func contactSuccess(data map[string]any) *contactResult {
	return &contactResult{contact: &contactResolver{data: data}}
}

func contactFailure(message string) *contactResult {
	return &contactResult{failure: &errorResolver{message: message}}
}

func (r *contactResult) ToContactType() (*contactResolver, bool) {
	return r.contact, r.contact != nil
}

func (r *contactResult) ToErrorType() (*errorResolver, bool) {
	return r.failure, r.failure != nil
}

// nodeResolver serves the Node interface. Contacts are the only node
// type this gateway knows about.
type nodeResolver struct {
	contact *contactResolver
}

func (r *nodeResolver) ID() graphqlgo.ID {
	return r.contact.ID()
}

func (r *nodeResolver) ToContactType() (*contactResolver, bool) {
	return r.contact, r.contact != nil
}

// deletePayloadResolver serves DeleteContactPayload. Success and failure
// are both message-shaped on this operation.
type deletePayloadResolver struct {
	message string
}

func (r *deletePayloadResolver) Message() string {
	return r.message
}
