// Package httputil provides JSON request/response helpers shared by both
// HTTP tiers, including the mapping from domain error codes to HTTP status
// codes and the service's `{"detail": ...}` error body shape.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "contacthub/pkg/domain-errors"
)

// ErrorResponse is the JSON error body returned by the REST tier.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
// Duplicate (name, category) contacts are reported as 400, not 409,
// because that is the contract the gateway depends on.
func ToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeConflict:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a domain error as an HTTP error response with a
// JSON detail message. Non-domain errors become opaque 500s.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"
	if code := dErrors.CodeOf(err); code != dErrors.CodeInternal {
		status = ToHTTPStatus(code)
		detail = err.Error()
	}
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// DecodeJSON decodes a JSON request body into the target type.
// Returns the decoded value and true on success. On failure, writes an
// error response and returns nil, false.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return nil, false
	}
	return &req, true
}
