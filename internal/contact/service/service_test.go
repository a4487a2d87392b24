package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"contacthub/internal/contact/models"
	"contacthub/internal/contact/store"
	"contacthub/internal/sentinel"
	dErrors "contacthub/pkg/domain-errors"
)

func validContact() *models.Contact {
	return &models.Contact{
		Name:     "Ann",
		Category: models.CategoryPersonal,
		PhoneNumbers: []models.PhoneNumber{
			{Number: "123", Type: models.PhoneTypeMobile},
		},
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(store.NewInMemory())
	ctx := context.Background()

	noName := validContact()
	noName.Name = ""
	_, err := svc.Create(ctx, noName)
	if !dErrors.HasCode(err, dErrors.CodeValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if !errors.Is(err, sentinel.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData in the chain, got %v", err)
	}

	badCategory := validContact()
	badCategory.Category = "FRIENDS"
	if _, err := svc.Create(ctx, badCategory); !dErrors.HasCode(err, dErrors.CodeValidation) {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}

	badPhone := validContact()
	badPhone.PhoneNumbers[0].Type = "PAGER"
	if _, err := svc.Create(ctx, badPhone); !dErrors.HasCode(err, dErrors.CodeValidation) {
		t.Fatalf("expected validation error for unknown phone type, got %v", err)
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc := New(store.NewInMemory())

	created, err := svc.Create(context.Background(), validContact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected server-assigned id")
	}
}

func TestCreateDuplicateNameCategory(t *testing.T) {
	st := store.NewInMemory()
	svc := New(st)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Create(ctx, validContact()); !dErrors.HasCode(err, dErrors.CodeConflict) {
		t.Fatalf("expected conflict for duplicate (name, category), got %v", err)
	}
	if count, _ := st.Count(ctx); count != 1 {
		t.Fatalf("duplicate create must not store a record, count = %d", count)
	}

	// Same name under a different category is allowed.
	other := validContact()
	other.Category = models.CategoryBusiness
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("unexpected error for different category: %v", err)
	}
}

func TestUpdateIsFullReplacement(t *testing.T) {
	svc := New(store.NewInMemory())
	ctx := context.Background()

	created, err := svc.Create(ctx, validContact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := &models.Contact{Name: "Ann2", Category: models.CategoryFamily}
	updated, err := svc.Update(ctx, created.ID, replacement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Ann2" || updated.Category != models.CategoryFamily {
		t.Fatalf("replacement not applied: %+v", updated)
	}
	if len(updated.PhoneNumbers) != 0 {
		t.Fatalf("update must not preserve omitted phone numbers, got %+v", updated.PhoneNumbers)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must not change the id")
	}
}

func TestUpdateAllowsDuplicateKey(t *testing.T) {
	// The uniqueness invariant is enforced on create only.
	svc := New(store.NewInMemory())
	ctx := context.Background()

	first, _ := svc.Create(ctx, validContact())
	other := validContact()
	other.Name = "Bob"
	second, _ := svc.Create(ctx, other)

	clash := validContact()
	clash.Name = first.Name
	if _, err := svc.Update(ctx, second.ID, clash); err != nil {
		t.Fatalf("expected update to succeed despite duplicate key, got %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := New(store.NewInMemory())

	_, err := svc.Update(context.Background(), uuid.New(), validContact())
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := New(store.NewInMemory())
	ctx := context.Background()

	created, _ := svc.Create(ctx, validContact())
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
