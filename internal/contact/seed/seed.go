// Package seed populates an empty store with demo contacts on startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"contacthub/internal/contact/models"
	"contacthub/internal/contact/store"
)

// Contacts is the demo data inserted into an empty store.
var Contacts = []models.Contact{
	{
		Name:     "John Smith",
		Category: models.CategoryPersonal,
		PhoneNumbers: []models.PhoneNumber{
			{Number: "1234567890", Type: models.PhoneTypeMobile},
			{Number: "0987654321", Type: models.PhoneTypeWork},
			{Number: "5555555555", Type: models.PhoneTypeHome},
		},
	},
	{
		Name:     "Jane Smith",
		Category: models.CategoryPersonal,
		PhoneNumbers: []models.PhoneNumber{
			{Number: "1111111111", Type: models.PhoneTypeMobile},
			{Number: "2222222222", Type: models.PhoneTypeWork},
			{Number: "3333333333", Type: models.PhoneTypeHome},
		},
	},
	{
		Name:     "Jane Doe",
		Category: models.CategoryFamily,
		PhoneNumbers: []models.PhoneNumber{
			{Number: "4444444444", Type: models.PhoneTypeMobile},
			{Number: "6666666666", Type: models.PhoneTypeWork},
			{Number: "7777777777", Type: models.PhoneTypeHome},
		},
	},
	{
		Name:     "John Doe Inc",
		Category: models.CategoryBusiness,
		PhoneNumbers: []models.PhoneNumber{
			{Number: "8888888888", Type: models.PhoneTypeMobile},
			{Number: "9999999999", Type: models.PhoneTypeWork},
			{Number: "1010101010", Type: models.PhoneTypeHome},
		},
	},
}

// Ensure inserts the demo contacts when the store is empty.
func Ensure(ctx context.Context, st store.Store, logger *slog.Logger) error {
	count, err := st.Count(ctx)
	if err != nil {
		return fmt.Errorf("count contacts: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.InfoContext(ctx, "populating initial contact data")
	for _, contact := range Contacts {
		record := contact.Clone()
		record.ID = uuid.New()
		if err := st.Create(ctx, record); err != nil {
			return fmt.Errorf("seed contact %q: %w", contact.Name, err)
		}
	}
	logger.InfoContext(ctx, "initial contact data inserted", "count", len(Contacts))
	return nil
}
