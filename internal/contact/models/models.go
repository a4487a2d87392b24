// Package models holds the canonical contact records persisted by the
// REST tier. Field names on the wire are snake_case; the gateway owns
// any camelCase renaming.
package models

import (
	"fmt"

	"github.com/google/uuid"

	"contacthub/internal/sentinel"
	dErrors "contacthub/pkg/domain-errors"
)

// Category classifies a contact.
type Category string

const (
	CategoryPersonal Category = "PERSONAL"
	CategoryFamily   Category = "FAMILY"
	CategoryBusiness Category = "BUSINESS"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryFamily, CategoryBusiness:
		return true
	}
	return false
}

// PhoneType classifies a phone number.
type PhoneType string

const (
	PhoneTypeWork   PhoneType = "WORK"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeMobile PhoneType = "MOBILE"
)

// Valid reports whether the phone type is one of the known values.
func (t PhoneType) Valid() bool {
	switch t {
	case PhoneTypeWork, PhoneTypeHome, PhoneTypeMobile:
		return true
	}
	return false
}

// PhoneNumber is a single phone entry on a contact. The number format is
// unconstrained.
type PhoneNumber struct {
	Number string    `json:"number"`
	Type   PhoneType `json:"type_number"`
}

// Contact is the canonical record. IDs are server-generated and immutable
// after creation.
type Contact struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Category     Category      `json:"category"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`
}

// Validate checks the record shape. The ID is not checked here because
// create assigns it after validation. Failures carry
// sentinel.ErrInvalidData in their chain so callers can match the class
// without inspecting the code.
func (c *Contact) Validate() error {
	if c.Name == "" {
		return dErrors.Wrap(sentinel.ErrInvalidData, dErrors.CodeValidation, "name must not be empty")
	}
	if !c.Category.Valid() {
		return dErrors.Wrap(sentinel.ErrInvalidData, dErrors.CodeValidation, fmt.Sprintf("unknown category %q", c.Category))
	}
	for _, phone := range c.PhoneNumbers {
		if !phone.Type.Valid() {
			return dErrors.Wrap(sentinel.ErrInvalidData, dErrors.CodeValidation, fmt.Sprintf("unknown phone number type %q", phone.Type))
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result without
// affecting shared state (the in-memory store hands out clones).
func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	out := *c
	out.PhoneNumbers = make([]PhoneNumber, len(c.PhoneNumbers))
	copy(out.PhoneNumbers, c.PhoneNumbers)
	return &out
}
