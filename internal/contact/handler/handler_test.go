package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/contact/models"
	"contacthub/internal/contact/service"
	"contacthub/internal/contact/store"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), service.WithLogger(logger))
	router := chi.NewRouter()
	New(svc, logger).Register(router)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createAnn(t *testing.T, router chi.Router) models.Contact {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/contacts", map[string]any{
		"name":     "Ann",
		"category": "PERSONAL",
		"phone_numbers": []map[string]any{
			{"number": "123", "type_number": "MOBILE"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestCreateAndGetContact(t *testing.T) {
	router := newTestRouter(t)
	created := createAnn(t, router)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ann", created.Name)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/contacts/%s", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	require.Len(t, fetched.PhoneNumbers, 1)
	assert.Equal(t, models.PhoneTypeMobile, fetched.PhoneNumbers[0].Type)
}

func TestListContacts(t *testing.T) {
	router := newTestRouter(t)
	createAnn(t, router)

	rec := doJSON(t, router, http.MethodGet, "/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 1)
}

func TestCreateDuplicateReturns400(t *testing.T) {
	router := newTestRouter(t)
	createAnn(t, router)

	rec := doJSON(t, router, http.MethodPost, "/contacts", map[string]any{
		"name":          "Ann",
		"category":      "PERSONAL",
		"phone_numbers": []map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Contact with this name and category already exists", body["detail"])
}

func TestCreateInvalidCategoryReturns422(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/contacts", map[string]any{
		"name":          "Ann",
		"category":      "FRIENDS",
		"phone_numbers": []map[string]any{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetMissingContactReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/contacts/6a6f686e-0000-0000-0000-000000000000", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Contact not found", body["detail"])
}

func TestGetUnparseableIDReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/contacts/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateReplacesRecord(t *testing.T) {
	router := newTestRouter(t)
	created := createAnn(t, router)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/contacts/%s", created.ID), map[string]any{
		"name":          "Ann2",
		"category":      "FAMILY",
		"phone_numbers": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ann2", updated.Name)
	assert.Equal(t, models.CategoryFamily, updated.Category)
	assert.Empty(t, updated.PhoneNumbers)
}

func TestUpdateMissingContactReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/contacts/6a6f686e-0000-0000-0000-000000000000", map[string]any{
		"name":          "Ann",
		"category":      "PERSONAL",
		"phone_numbers": []map[string]any{},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateInvalidPayloadReturns422(t *testing.T) {
	router := newTestRouter(t)
	created := createAnn(t, router)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/contacts/%s", created.ID), map[string]any{
		"name":          "",
		"category":      "PERSONAL",
		"phone_numbers": []map[string]any{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteContact(t *testing.T) {
	router := newTestRouter(t)
	created := createAnn(t, router)

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/contacts/%s", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/contacts/%s", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
