package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/shop-api/internal/domain"
)

func TestPriceInputUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "string price", payload: `{"price":"19.99"}`, want: "19.99"},
		{name: "number price", payload: `{"price":19.99}`, want: "19.99"},
		{name: "number with trailing zero", payload: `{"price":0.10}`, want: "0.10"},
		{name: "integer number", payload: `{"price":42}`, want: "42"},
		{name: "large price", payload: `{"price":"1000000.00"}`, want: "1000000.00"},
		{name: "boolean is rejected", payload: `{"price":true}`, wantErr: true},
		{name: "object is rejected", payload: `{"price":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req ProductPayload
			err := json.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			// The raw lexeme must survive decoding untouched; a float64
			// detour would turn 0.10 into 0.1.
			assert.Equal(t, tt.want, string(req.Price))
		})
	}
}

func TestProductPayloadToDomain(t *testing.T) {
	t.Parallel()

	payload := ProductPayload{
		Name:        "Mug",
		Description: "Ceramic",
		Price:       "9.99",
		Image:       "mug.png",
	}

	product, err := payload.toDomain()
	require.NoError(t, err)
	assert.Equal(t, "9.99", product.PriceString())

	payload.Price = "not-a-price"
	_, err = payload.toDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestProductResponsePriceIsString(t *testing.T) {
	t.Parallel()

	product, err := domain.NewProduct("Mug", "Ceramic", "9.99", "mug.png")
	require.NoError(t, err)

	body, err := json.Marshal(newProductResponse(product))
	require.NoError(t, err)

	// Clients must receive a decimal string, never a JSON number.
	assert.Contains(t, string(body), `"price":"9.99"`)
}
