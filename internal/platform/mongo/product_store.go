package mongo

import (
	"context"
	"errors"

	"github.com/dkrasnov/shop-api/internal/domain"
	"github.com/dkrasnov/shop-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductStore implements the store.ProductStore interface using a
// MongoDB collection as the storage backend. Prices travel as Decimal128
// from the domain entity straight into the stored document.
type MongoProductStore struct {
	handle *Handle
}

// NewMongoProductStore creates a new MongoDB implementation of the
// ProductStore interface. The handle must be initialized by the caller
// before any method runs.
func NewMongoProductStore(handle *Handle) *MongoProductStore {
	return &MongoProductStore{handle: handle}
}

// Ensure MongoProductStore implements store.ProductStore interface
var _ store.ProductStore = (*MongoProductStore)(nil)

// List implements store.ProductStore.List. Products come back in
// store-native order; no sort is applied.
func (s *MongoProductStore) List(ctx context.Context) ([]domain.Product, error) {
	coll, err := s.handle.Collection(ProductsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, mapStoreError("product", "list", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, mapStoreError("product", "list", err)
	}

	return products, nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *MongoProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	coll, err := s.handle.Collection(ProductsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	var product domain.Product
	err = coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundFor("product")
		}
		return nil, mapStoreError("product", "get_by_id", err)
	}

	return &product, nil
}

// Create implements store.ProductStore.Create. The insert is awaited: the
// store-assigned ID is only reported after the write is confirmed.
func (s *MongoProductStore) Create(ctx context.Context, product *domain.Product) error {
	coll, err := s.handle.Collection(ProductsCollection)
	if err != nil {
		return err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	res, err := coll.InsertOne(ctx, product)
	if err != nil {
		return mapStoreError("product", "create", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// Update implements store.ProductStore.Update with full-replacement
// semantics: every mutable field is overwritten. A zero match count
// surfaces as ErrProductNotFound rather than silent success.
func (s *MongoProductStore) Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) error {
	coll, err := s.handle.Collection(ProductsCollection)
	if err != nil {
		return err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: product.Name},
		{Key: "description", Value: product.Description},
		{Key: "price", Value: product.Price},
		{Key: "image", Value: product.Image},
	}}}

	res, err := coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return mapStoreError("product", "update", err)
	}
	if res.MatchedCount == 0 {
		return notFoundFor("product")
	}

	return nil
}

// Delete implements store.ProductStore.Delete. A zero delete count surfaces
// as ErrProductNotFound rather than silent success.
func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := s.handle.Collection(ProductsCollection)
	if err != nil {
		return err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapStoreError("product", "delete", err)
	}
	if res.DeletedCount == 0 {
		return notFoundFor("product")
	}

	return nil
}
