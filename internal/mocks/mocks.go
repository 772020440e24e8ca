// Package mocks provides hand-written test doubles for the store and auth
// interfaces, used by handler tests. They keep state in memory and never
// touch a real document store.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/dkrasnov/shop-api/internal/domain"
	"github.com/dkrasnov/shop-api/internal/service/auth"
	"github.com/dkrasnov/shop-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// MockUserStore is an in-memory store.UserStore.
type MockUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User

	// CreateErr, when set, is returned by Create regardless of input.
	CreateErr error
	// GetErr, when set, is returned by GetByEmail regardless of input.
	GetErr error
}

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[string]*domain.User)}
}

// NewLoginMockUserStore creates a store pre-seeded with one user carrying
// the given hashed password, for exercising login paths.
func NewLoginMockUserStore(email, hashedPassword string) *MockUserStore {
	s := NewMockUserStore()
	s.users[email] = &domain.User{
		ID:             primitive.NewObjectID(),
		Email:          email,
		HashedPassword: hashedPassword,
	}
	return s
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.
func (s *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return store.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.HashedPassword = string(hash)
	user.Password = ""
	user.ID = primitive.NewObjectID()

	stored := *user
	s.users[user.Email] = &stored
	return nil
}

// GetByEmail implements store.UserStore.
func (s *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// MockProductStore is an in-memory store.ProductStore preserving insertion
// order, mimicking store-native ordering.
type MockProductStore struct {
	mu       sync.Mutex
	products []domain.Product

	// Err, when set, is returned by every method.
	Err error
}

// NewMockProductStore creates an empty in-memory product store.
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{}
}

var _ store.ProductStore = (*MockProductStore)(nil)

// List implements store.ProductStore.
func (s *MockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetByID implements store.ProductStore.
func (s *MockProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			out := s.products[i]
			return &out, nil
		}
	}
	return nil, store.ErrProductNotFound
}

// Create implements store.ProductStore.
func (s *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID()
	s.products = append(s.products, *product)
	return nil
}

// Update implements store.ProductStore.
func (s *MockProductStore) Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = product.Name
			s.products[i].Description = product.Description
			s.products[i].Price = product.Price
			s.products[i].Image = product.Image
			return nil
		}
	}
	return store.ErrProductNotFound
}

// Delete implements store.ProductStore.
func (s *MockProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return store.ErrProductNotFound
}

// MockJWTService is a canned auth.JWTService.
type MockJWTService struct {
	Token string
	Err   error

	// Claims is returned by ValidateToken when Err is nil.
	Claims *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// MockPasswordVerifier is a canned auth.PasswordVerifier.
type MockPasswordVerifier struct {
	ShouldSucceed bool

	// DummyCompares counts CompareDummy calls, letting tests assert the
	// absent-user path still burns a comparison.
	DummyCompares int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

// CompareDummy implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) CompareDummy(password string) error {
	m.DummyCompares++
	return bcrypt.ErrMismatchedHashAndPassword
}
