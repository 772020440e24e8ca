package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/shop-api/internal/config"
	"github.com/dkrasnov/shop-api/internal/store"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		URL:            "mongodb://localhost:27017",
		Name:           "shop_test",
		TimeoutSeconds: 5,
	}
}

func TestHandleBeforeInit(t *testing.T) {
	t.Parallel()

	handle := NewHandle(testDatabaseConfig())

	assert.False(t, handle.IsInitialized())

	_, err := handle.Database()
	assert.ErrorIs(t, err, store.ErrNotInitialized)

	_, err = handle.Collection(ProductsCollection)
	assert.ErrorIs(t, err, store.ErrNotInitialized)
}

func TestHandleCloseBeforeInitIsNoop(t *testing.T) {
	t.Parallel()

	handle := NewHandle(testDatabaseConfig())
	assert.NoError(t, handle.Close(context.Background()))
}

func TestStoresSurfaceUninitializedHandle(t *testing.T) {
	t.Parallel()

	handle := NewHandle(testDatabaseConfig())
	ctx := context.Background()

	userStore := NewMongoUserStore(handle, 12)
	_, err := userStore.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, store.ErrNotInitialized)

	productStore := NewMongoProductStore(handle)
	_, err = productStore.List(ctx)
	assert.ErrorIs(t, err, store.ErrNotInitialized)
}

func TestOpContextBoundsTheWait(t *testing.T) {
	t.Parallel()

	handle := NewHandle(config.DatabaseConfig{TimeoutSeconds: 1})

	ctx, cancel := handle.OpContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}

func TestTimeoutDefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	handle := NewHandle(config.DatabaseConfig{})
	assert.Equal(t, 5*time.Second, handle.timeout())
}
