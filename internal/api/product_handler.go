package api

import (
	"net/http"

	"github.com/dkrasnov/shop-api/internal/api/shared"
	"github.com/dkrasnov/shop-api/internal/store"
)

// ProductHandler handles catalog-related API requests.
type ProductHandler struct {
	productStore store.ProductStore
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(productStore store.ProductStore) *ProductHandler {
	return &ProductHandler{productStore: productStore}
}

// List handles GET /products. Every price is rendered as its exact decimal
// string before the payload leaves the handler.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Fetching products failed")
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, newProductResponse(&products[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProductResponse(product))
}

// Create handles POST /products. The price is validated before any write is
// attempted, and the insert is awaited before the new ID is reported.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductPayload

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product data")
		return
	}

	product, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		HandleAPIError(w, r, err, "Adding the product failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, StatusResponse{
		Message:   "Product added",
		ProductID: product.ID.Hex(),
	})
}

// Update handles PATCH /products/{id}. Despite the verb this is full
// replacement: callers must send complete values for all four fields.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ProductPayload

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product data")
		return
	}

	product, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.productStore.Update(r.Context(), id, product); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Message:   "Product updated",
		ProductID: id.Hex(),
	})
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.productStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Message: "Product deleted",
	})
}
