package api

import (
	"encoding/json"
	"fmt"

	"github.com/dkrasnov/shop-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthUser is the public identity echoed back by the auth endpoints.
type AuthUser struct {
	Email string `json:"email"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// Token is the signed bearer credential; valid for the configured
	// lifetime from issuance.
	Token string `json:"token"`

	// User is the public identity the token was issued for.
	User AuthUser `json:"user"`
}

// PriceInput accepts a price supplied either as a JSON string ("19.99") or
// as a JSON number (19.99). The literal text is preserved verbatim so the
// value never passes through a binary float on its way to Decimal128.
type PriceInput string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PriceInput) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty price value")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}

	// json.Number keeps the raw lexeme instead of converting to float64.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceInput(n.String())
	return nil
}

// ProductPayload defines the payload for product create and update
// endpoints. Name, description and image are opaque to the core; only the
// price carries validation.
type ProductPayload struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       PriceInput `json:"price" validate:"required"`
	Image       string     `json:"image"`
}

// toDomain converts the payload into a validated Product entity.
func (p *ProductPayload) toDomain() (*domain.Product, error) {
	return domain.NewProduct(p.Name, p.Description, string(p.Price), p.Image)
}

// ProductResponse is the client-facing shape of a catalog product. The
// price is always an exact decimal string, never a JSON number.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// newProductResponse converts a domain product for the wire.
func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.PriceString(),
		Image:       p.Image,
	}
}

// StatusResponse carries the human-readable outcome of a catalog mutation.
type StatusResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId,omitempty"`
}
