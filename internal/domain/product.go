package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a single catalog entry. The price is held as an exact
// 128-bit decimal so monetary values never pass through binary floating
// point, in storage or in memory.
type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Image       string               `bson:"image"`
}

// NewProduct creates a Product from raw field values. The price string must
// be a parseable, non-negative decimal; name, description and image are
// opaque to the core and not constrained here.
func NewProduct(name, description, price, image string) (*Product, error) {
	dec, err := ParsePrice(price)
	if err != nil {
		return nil, err
	}

	return &Product{
		Name:        name,
		Description: description,
		Price:       dec,
		Image:       image,
	}, nil
}

// ParsePrice converts a decimal string into an exact Decimal128 value.
// Returns ErrInvalidPrice (wrapped) when the input is not a valid decimal,
// is not finite, or is negative.
func ParsePrice(price string) (primitive.Decimal128, error) {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return primitive.Decimal128{}, fmt.Errorf("%w: empty value", ErrInvalidPrice)
	}

	if strings.HasPrefix(trimmed, "-") {
		return primitive.Decimal128{}, fmt.Errorf("%w: negative value %q", ErrInvalidPrice, trimmed)
	}

	dec, err := primitive.ParseDecimal128(trimmed)
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("%w: %q", ErrInvalidPrice, trimmed)
	}

	if dec.IsNaN() || dec.IsInf() != 0 {
		return primitive.Decimal128{}, fmt.Errorf("%w: %q is not finite", ErrInvalidPrice, trimmed)
	}

	return dec, nil
}

// PriceString renders the product's price in its exact decimal string form.
// This is the only representation handed to API clients.
func (p *Product) PriceString() string {
	return p.Price.String()
}
