package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopzo-app/shopzo-backend/api/responses"
	"github.com/shopzo-app/shopzo-backend/api/validators"
	productsvc "github.com/shopzo-app/shopzo-backend/internal/products"
	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
	"github.com/shopzo-app/shopzo-backend/pkg/logger"
)

// ProductCreate adds a catalog entry.
func ProductCreate(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), productsvc.CreateProductInput{
			SKU:               payload.SKU,
			Title:             payload.Title,
			Description:       payload.Description,
			Sizes:             payload.Sizes,
			ListPriceCents:    payload.ListPriceCents,
			SellingPriceCents: payload.SellingPriceCents,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newProductResponse(product))
	}
}

// ProductDetail fetches one active product by id.
func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductResponse(product))
	}
}

// ProductList returns the active catalog.
func ProductList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]productResponse, 0, len(products))
		for i := range products {
			out = append(out, newProductResponse(&products[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

type createProductRequest struct {
	SKU               string   `json:"sku" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       *string  `json:"description,omitempty"`
	Sizes             []string `json:"sizes"`
	ListPriceCents    int      `json:"list_price_cents" validate:"min=0"`
	SellingPriceCents int      `json:"selling_price_cents" validate:"min=0"`
}

type productResponse struct {
	ID                uuid.UUID `json:"id"`
	SKU               string    `json:"sku"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	Sizes             []string  `json:"sizes"`
	ListPriceCents    int       `json:"list_price_cents"`
	SellingPriceCents int       `json:"selling_price_cents"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newProductResponse(product *models.Product) productResponse {
	return productResponse{
		ID:                product.ID,
		SKU:               product.SKU,
		Title:             product.Title,
		Description:       product.Description,
		Sizes:             product.Sizes,
		ListPriceCents:    product.ListPriceCents,
		SellingPriceCents: product.SellingPriceCents,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}
