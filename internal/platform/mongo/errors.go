package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkrasnov/shop-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// mapStoreError normalizes driver failures onto the sentinel errors in
// internal/store, wrapping them with entity/operation context so logs show
// where a failure came from without leaking driver detail to callers.
func mapStoreError(entity, operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return store.NewStoreError(entity, operation, "bounded wait exhausted", store.ErrTimeout)
	case mongo.IsDuplicateKeyError(err):
		if entity == "user" {
			return fmt.Errorf("duplicate user: %w", store.ErrEmailExists)
		}
		return fmt.Errorf("duplicate %s: %w", entity, store.ErrDuplicate)
	default:
		return store.NewStoreError(entity, operation, "store call failed", err)
	}
}

// notFoundFor returns the entity-specific not-found sentinel.
func notFoundFor(entity string) error {
	switch entity {
	case "user":
		return store.ErrUserNotFound
	case "product":
		return store.ErrProductNotFound
	default:
		return store.ErrNotFound
	}
}
