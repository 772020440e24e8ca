package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkrasnov/shop-api/internal/domain"
	"github.com/dkrasnov/shop-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	handle     *Handle
	bcryptCost int
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. The handle must be initialized by the caller before any method
// runs. bcryptCost is the work factor applied when hashing passwords.
func NewMongoUserStore(handle *Handle, bcryptCost int) *MongoUserStore {
	return &MongoUserStore{
		handle:     handle,
		bcryptCost: bcryptCost,
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create. It hashes the plaintext
// password, persists {email, hash}, and awaits the write before returning.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	coll, err := s.handle.Collection(UsersCollection)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hash)
	// Drop the plaintext as soon as the hash exists.
	user.Password = ""

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		return mapStoreError("user", "create", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	coll, err := s.handle.Collection(UsersCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.handle.OpContext(ctx)
	defer cancel()

	var user domain.User
	err = coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundFor("user")
		}
		return nil, mapStoreError("user", "get_by_email", err)
	}

	return &user, nil
}
