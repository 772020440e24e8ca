package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkrasnov/shop-api/internal/config"
	"github.com/dkrasnov/shop-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the shop backend.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
)

// Handle is the process-wide connection to the document store. It is
// explicitly constructed and injected into the stores that need it, and
// must be initialized exactly once (via Init) before any store method runs.
// A second Init call is a no-op, not an error. Using the handle before Init
// surfaces store.ErrNotInitialized.
type Handle struct {
	cfg config.DatabaseConfig

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewHandle creates an unconnected Handle for the given database settings.
// Call Init before handing it to any store.
func NewHandle(cfg config.DatabaseConfig) *Handle {
	return &Handle{cfg: cfg}
}

// Init connects to the document store, verifies the connection with a ping,
// and ensures the indexes the backend relies on. It is idempotent: calling
// Init on an already-initialized handle returns nil immediately.
// A connection failure here is intended to be fatal to startup.
func (h *Handle) Init(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(h.cfg.URL))
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort teardown of the half-open client.
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping document store: %w", err)
	}

	db := client.Database(h.cfg.Name)

	// Signup relies on the store rejecting duplicate emails.
	_, err = db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ensure email index: %w", err)
	}

	h.client = client
	h.db = db
	return nil
}

// IsInitialized reports whether Init has completed successfully.
func (h *Handle) IsInitialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.client != nil
}

// Database returns the underlying database handle, or
// store.ErrNotInitialized when Init has not completed.
func (h *Handle) Database() (*mongo.Database, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db == nil {
		return nil, store.ErrNotInitialized
	}
	return h.db, nil
}

// Collection returns the named collection, or store.ErrNotInitialized when
// Init has not completed.
func (h *Handle) Collection(name string) (*mongo.Collection, error) {
	db, err := h.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// OpContext derives a bounded context for a single store call. Every store
// method runs under it so a stuck store surfaces as store.ErrTimeout
// instead of hanging the request.
func (h *Handle) OpContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeout())
}

// Close tears down the client connection. The handle cannot be reused
// afterwards; construct a new one instead.
func (h *Handle) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client == nil {
		return nil
	}
	err := h.client.Disconnect(ctx)
	h.client = nil
	h.db = nil
	return err
}

func (h *Handle) timeout() time.Duration {
	if h.cfg.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(h.cfg.TimeoutSeconds) * time.Second
}
