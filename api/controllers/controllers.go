// Package controllers holds the HTTP handlers. Controllers decode and
// validate requests, delegate to a service, and translate results into
// responses; they never touch the store directly.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

// parseID reads a positive integer route parameter. Malformed ids are a
// client error, not a lookup miss.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+param).
			WithDetails(map[string]string{param: "must be a positive integer"})
	}
	return id, nil
}
