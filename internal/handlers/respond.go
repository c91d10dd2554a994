// Package handlers contains the HTTP handlers for the blog-api REST
// surface. Handlers are grouped by entity (categories, posts, comments,
// auth) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ViniciusMeireles/blog-api/internal/store"
)

// respondJSON serializes v to the response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondDetail writes a single-message JSON error body.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondStoreError maps a store error to the client-visible response:
// constraint violations become 400 with the violation detail, anything
// else is an opaque 500.
func respondStoreError(w http.ResponseWriter, op string, err error) {
	var ce *store.ConstraintError
	if errors.As(err, &ce) {
		respondDetail(w, http.StatusBadRequest, ce.Error())
		return
	}
	slog.Error(op, "error", err)
	respondDetail(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON parses the request body into dst. The caller reports the
// returned error as a 400.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// validUUID reports whether s parses as a UUID.
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
