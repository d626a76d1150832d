package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shopzo-app/shopzo-backend/api/middleware"
	"github.com/shopzo-app/shopzo-backend/api/responses"
	"github.com/shopzo-app/shopzo-backend/api/validators"
	cartsvc "github.com/shopzo-app/shopzo-backend/internal/cart"
	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
	"github.com/shopzo-app/shopzo-backend/pkg/logger"
)

// CartFetch resolves the caller's cart, creating it on first touch.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.ResolveCart(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartAddItem adds one product+size line to the caller's cart. Repeating the
// call with the same identity returns the existing line untouched.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AddItem(r.Context(), userID, cartsvc.AddItemInput{
			ProductID: payload.ProductID,
			Size:      payload.Size,
			Quantity:  payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartItemResponse(item))
	}
}

func callerID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return userID, nil
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type cartResponse struct {
	ID                     uuid.UUID          `json:"id"`
	UserID                 uuid.UUID          `json:"user_id"`
	TotalItemCount         int                `json:"total_item_count"`
	TotalListPriceCents    int                `json:"total_list_price_cents"`
	TotalSellingPriceCents int                `json:"total_selling_price_cents"`
	DiscountPercent        int                `json:"discount_percent"`
	CouponCode             *string            `json:"coupon_code,omitempty"`
	CouponAmountCents      int                `json:"coupon_amount_cents"`
	Items                  []cartItemResponse `json:"items"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

type cartItemResponse struct {
	ID                   uuid.UUID `json:"id"`
	ProductID            uuid.UUID `json:"product_id"`
	Size                 string    `json:"size"`
	Quantity             int       `json:"quantity"`
	ListPriceExtCents    int       `json:"list_price_ext_cents"`
	SellingPriceExtCents int       `json:"selling_price_ext_cents"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func newCartResponse(cart *models.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, newCartItemResponse(&cart.Items[i]))
	}

	return cartResponse{
		ID:                     cart.ID,
		UserID:                 cart.UserID,
		TotalItemCount:         cart.TotalItemCount,
		TotalListPriceCents:    cart.TotalListPriceCents,
		TotalSellingPriceCents: cart.TotalSellingPriceCents,
		DiscountPercent:        cart.DiscountPercent,
		CouponCode:             cart.CouponCode,
		CouponAmountCents:      cart.CouponAmountCents,
		Items:                  items,
		CreatedAt:              cart.CreatedAt,
		UpdatedAt:              cart.UpdatedAt,
	}
}

func newCartItemResponse(item *models.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:                   item.ID,
		ProductID:            item.ProductID,
		Size:                 item.Size,
		Quantity:             item.Quantity,
		ListPriceExtCents:    item.ListPriceExtCents,
		SellingPriceExtCents: item.SellingPriceExtCents,
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}
}
