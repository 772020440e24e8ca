package store

import (
	"context"

	"github.com/dkrasnov/shop-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStore defines the interface for catalog data persistence.
type ProductStore interface {
	// List returns all products in store-native order. No sorting or
	// pagination is applied.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its store-assigned identifier.
	// Returns ErrProductNotFound if no product matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)

	// Create persists a new product and fills in its store-assigned ID.
	// The write is awaited; Create does not return until the store has
	// confirmed the insert.
	Create(ctx context.Context, product *domain.Product) error

	// Update overwrites all mutable fields of the product identified by id.
	// This is full-replacement semantics: callers must supply complete
	// values for every field, including ones they do not intend to change.
	// Returns ErrProductNotFound if no product matched the id.
	Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) error

	// Delete removes the product identified by id.
	// Returns ErrProductNotFound if no product matched the id.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
