package handlers

import (
	"errors"
	"net/http"

	"asistente_legal_go/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler groups the API endpoints around one injected store
type Handler struct {
	store *db.Store
}

func New(store *db.Store) *Handler {
	return &Handler{store: store}
}

// errorStatus maps a service error to an HTTP status: validation failures
// are the caller's fault, anything else is a persistence failure
func errorStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
