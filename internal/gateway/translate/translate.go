// Package translate reshapes records between the REST wire format
// (snake_case, raw IDs) and the GraphQL surface (camelCase, opaque node
// IDs). All functions are pure: inputs are never mutated.
package translate

import (
	"fmt"

	"contacthub/internal/gateway/casing"
	"contacthub/internal/gateway/nodeid"
)

// ContactTypeName is the node ID type tag for contact records.
const ContactTypeName = "ContactType"

// ContactToGraphQL converts a REST contact record to the GraphQL output
// shape. The phone_numbers field is rebuilt explicitly rather than run
// through the generic key converter, so there is no ambiguity in how
// type_number splits; a raw id accompanied by contact-identifying fields
// is replaced with an encoded node ID.
func ContactToGraphQL(contact map[string]any) map[string]any {
	if phones, ok := contact["phone_numbers"].([]any); ok {
		phoneNumbers := make([]any, 0, len(phones))
		for _, item := range phones {
			phone, ok := item.(map[string]any)
			if !ok {
				continue
			}
			phoneNumbers = append(phoneNumbers, map[string]any{
				"number":     phone["number"],
				"typeNumber": phone["type_number"],
			})
		}

		camel := casing.MapToCamel(contact)
		camel["phoneNumbers"] = phoneNumbers
		delete(camel, "phone_numbers")

		if id, ok := camel["id"]; ok {
			camel["id"] = nodeid.Encode(ContactTypeName, fmt.Sprint(id))
		}
		return camel
	}

	converted := casing.MapToCamel(contact)
	if id, ok := converted["id"]; ok {
		_, hasName := converted["name"]
		_, hasCategory := converted["category"]
		if hasName || hasCategory {
			converted["id"] = nodeid.Encode(ContactTypeName, fmt.Sprint(id))
		}
	}
	return converted
}

// ContactsToGraphQL converts a list of REST contact records.
func ContactsToGraphQL(contacts []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, ContactToGraphQL(contact))
	}
	return out
}

// PhoneNumbersToPayload converts phoneNumbers input entries to the REST
// payload shape, renaming typeNumber to type_number explicitly.
func PhoneNumbersToPayload(phones []any) []any {
	out := make([]any, 0, len(phones))
	for _, item := range phones {
		phone, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, map[string]any{
			"number":      phone["number"],
			"type_number": phone["typeNumber"],
		})
	}
	return out
}

// InputToPayload converts a GraphQL input object to a REST payload.
// phoneNumbers gets the explicit conversion above when present and
// non-empty; every other key is renamed generically.
func InputToPayload(input map[string]any) map[string]any {
	payload := make(map[string]any, len(input))
	for key, value := range input {
		if key == "phoneNumbers" {
			if phones, ok := value.([]any); ok && len(phones) > 0 {
				payload["phone_numbers"] = PhoneNumbersToPayload(phones)
				continue
			}
		}
		payload[casing.ToSnake(key)] = value
	}
	return payload
}
