package graphql

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contacthandler "contacthub/internal/contact/handler"
	"contacthub/internal/contact/service"
	"contacthub/internal/contact/store"
	"contacthub/internal/gateway/backend"
	"contacthub/internal/gateway/nodeid"
)

// newGatewayStack runs the real REST handler on an in-memory store and
// points the real backend client at it, so queries exercise the whole
// translation path end to end.
func newGatewayStack(t *testing.T) *graphqlgo.Schema {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.New(store.NewInMemory(), service.WithLogger(logger))
	router := chi.NewRouter()
	contacthandler.New(svc, logger).Register(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, backend.WithLogger(logger))
	return MustSchema(NewResolver(client, logger))
}

func exec(t *testing.T, schema *graphqlgo.Schema, query string, vars map[string]any, out any) {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	require.Empty(t, resp.Errors, "unexpected query errors: %v", resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

const createMutation = `
	mutation($input: CreateContactInput!) {
		createContact(input: $input) {
			... on ContactType {
				id
				name
				category
				phoneNumbers { number typeNumber }
			}
			... on ErrorType { message }
		}
	}
`

const contactQuery = `
	query($input: ContactQueryInput!) {
		contact(input: $input) {
			... on ContactType { id name category }
			... on ErrorType { message }
		}
	}
`

type contactPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	PhoneNumbers []struct {
		Number     string `json:"number"`
		TypeNumber string `json:"typeNumber"`
	} `json:"phoneNumbers"`
	Message string `json:"message"`
}

func createAnn(t *testing.T, schema *graphqlgo.Schema) contactPayload {
	t.Helper()
	var result struct {
		CreateContact contactPayload `json:"createContact"`
	}
	exec(t, schema, createMutation, map[string]any{
		"input": map[string]any{
			"name":     "Ann",
			"category": "PERSONAL",
			"phoneNumbers": []any{
				map[string]any{"number": "123", "typeNumber": "MOBILE"},
			},
		},
	}, &result)
	require.Empty(t, result.CreateContact.Message)
	return result.CreateContact
}

func TestEndToEndContactLifecycle(t *testing.T) {
	schema := newGatewayStack(t)

	// Create: response carries an opaque node ID and camelCase fields.
	created := createAnn(t, schema)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "PERSONAL", created.Category)
	require.Len(t, created.PhoneNumbers, 1)
	assert.Equal(t, "123", created.PhoneNumbers[0].Number)
	assert.Equal(t, "MOBILE", created.PhoneNumbers[0].TypeNumber)

	typeName, localID, err := nodeid.Decode(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ContactType", typeName)
	assert.NotEmpty(t, localID)

	// Update with only a name: category and phone numbers survive.
	var updateResult struct {
		UpdateContact contactPayload `json:"updateContact"`
	}
	exec(t, schema, `
		mutation($input: UpdateContactInput!) {
			updateContact(input: $input) {
				... on ContactType {
					name
					category
					phoneNumbers { number typeNumber }
				}
				... on ErrorType { message }
			}
		}
	`, map[string]any{
		"input": map[string]any{"id": created.ID, "name": "Ann2"},
	}, &updateResult)
	require.Empty(t, updateResult.UpdateContact.Message)
	assert.Equal(t, "Ann2", updateResult.UpdateContact.Name)
	assert.Equal(t, "PERSONAL", updateResult.UpdateContact.Category)
	require.Len(t, updateResult.UpdateContact.PhoneNumbers, 1)
	assert.Equal(t, "123", updateResult.UpdateContact.PhoneNumbers[0].Number)

	// Delete: fixed confirmation message.
	var deleteResult struct {
		DeleteContact struct {
			Message string `json:"message"`
		} `json:"deleteContact"`
	}
	exec(t, schema, `
		mutation($input: DeleteContactInput!) {
			deleteContact(input: $input) { message }
		}
	`, map[string]any{
		"input": map[string]any{"id": created.ID},
	}, &deleteResult)
	assert.Equal(t, "Contact deleted successfully", deleteResult.DeleteContact.Message)

	// Subsequent lookup yields the error-shaped variant.
	var afterDelete struct {
		Contact contactPayload `json:"contact"`
	}
	exec(t, schema, contactQuery, map[string]any{
		"input": map[string]any{"contactId": created.ID},
	}, &afterDelete)
	assert.Empty(t, afterDelete.Contact.Name)
	assert.Contains(t, afterDelete.Contact.Message, "not found")
}

func TestEndToEndDuplicateCreate(t *testing.T) {
	schema := newGatewayStack(t)
	createAnn(t, schema)

	var result struct {
		CreateContact contactPayload `json:"createContact"`
	}
	exec(t, schema, createMutation, map[string]any{
		"input": map[string]any{
			"name":         "Ann",
			"category":     "PERSONAL",
			"phoneNumbers": []any{},
		},
	}, &result)
	assert.Equal(t, "Contact with this name and category already exists", result.CreateContact.Message)
	assert.Empty(t, result.CreateContact.Name)
}

func TestEndToEndContactsQuery(t *testing.T) {
	schema := newGatewayStack(t)
	createAnn(t, schema)

	var result struct {
		Contacts []contactPayload `json:"contacts"`
	}
	exec(t, schema, `
		query {
			contacts { id name category phoneNumbers { number typeNumber } }
		}
	`, nil, &result)
	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "Ann", result.Contacts[0].Name)

	typeName, _, err := nodeid.Decode(result.Contacts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "ContactType", typeName)
}

func TestEndToEndWrongTypeTagContractDiffersBetweenContactAndNode(t *testing.T) {
	schema := newGatewayStack(t)
	wrongType := nodeid.Encode("OtherType", "x")

	// contact: error-shaped result with no contact fields.
	var contactResult struct {
		Contact contactPayload `json:"contact"`
	}
	exec(t, schema, contactQuery, map[string]any{
		"input": map[string]any{"contactId": wrongType},
	}, &contactResult)
	assert.Equal(t, "Invalid contact type", contactResult.Contact.Message)
	assert.Empty(t, contactResult.Contact.Name)
	assert.Empty(t, contactResult.Contact.Category)

	// node: null, not an error.
	var nodeResult struct {
		Node *struct {
			ID string `json:"id"`
		} `json:"node"`
	}
	exec(t, schema, `
		query($id: ID!) {
			node(id: $id) { id }
		}
	`, map[string]any{"id": wrongType}, &nodeResult)
	assert.Nil(t, nodeResult.Node)
}

func TestEndToEndNodeQuery(t *testing.T) {
	schema := newGatewayStack(t)
	created := createAnn(t, schema)

	var result struct {
		Node *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"node"`
	}
	exec(t, schema, `
		query($id: ID!) {
			node(id: $id) {
				id
				... on ContactType { name }
			}
		}
	`, map[string]any{"id": created.ID}, &result)
	require.NotNil(t, result.Node)
	assert.Equal(t, created.ID, result.Node.ID)
	assert.Equal(t, "Ann", result.Node.Name)
}
