package api

import (
	"fmt"

	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dkrasnov/shop-api/internal/domain"
)

// getPathObjectID extracts a store identifier from the URL path parameters.
// Malformed identifiers fail with domain.ErrInvalidID, which the error
// mapper turns into a 400, distinct from the 404 an absent but well-formed
// identifier produces.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, pathParam)
	}

	return id, nil
}
