package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shopzo-app/shopzo-backend/api/middleware"
	cartsvc "github.com/shopzo-app/shopzo-backend/internal/cart"
	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
)

type stubCartService struct {
	cart    *models.Cart
	item    *models.CartItem
	err     error
	gotUser uuid.UUID
	gotAdd  cartsvc.AddItemInput
}

func (s *stubCartService) ResolveCart(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	s.gotUser = userID
	return s.cart, s.err
}

func (s *stubCartService) AddItem(_ context.Context, userID uuid.UUID, input cartsvc.AddItemInput) (*models.CartItem, error) {
	s.gotUser = userID
	s.gotAdd = input
	return s.item, s.err
}

func TestCartFetchSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubCartService{cart: &models.Cart{
		ID:                     uuid.New(),
		UserID:                 userID,
		TotalItemCount:         2,
		TotalListPriceCents:    20000,
		TotalSellingPriceCents: 16000,
		DiscountPercent:        20,
	}}
	handler := CartFetch(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotUser != userID {
		t.Fatalf("expected resolve for %s, got %s", userID, svc.gotUser)
	}

	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != svc.cart.ID {
		t.Fatalf("unexpected cart id: %s", envelope.Data.ID)
	}
	if envelope.Data.DiscountPercent != 20 {
		t.Fatalf("unexpected discount percent: %d", envelope.Data.DiscountPercent)
	}
}

func TestCartFetchMissingUserContext(t *testing.T) {
	handler := CartFetch(&stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddItemSuccess(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	svc := &stubCartService{item: &models.CartItem{
		ID:                   uuid.New(),
		ProductID:            productID,
		Size:                 "M",
		Quantity:             2,
		ListPriceExtCents:    20000,
		SellingPriceExtCents: 16000,
	}}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":"` + productID.String() + `","size":"M","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.gotAdd.ProductID != productID || svc.gotAdd.Quantity != 2 || svc.gotAdd.Size != "M" {
		t.Fatalf("unexpected add input %+v", svc.gotAdd)
	}
}

func TestCartAddItemRejectsBadPayload(t *testing.T) {
	handler := CartAddItem(&stubCartService{}, nil)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemSurfacesConflict(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeConflict, "cart was modified concurrently")}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":"` + uuid.NewString() + `","size":"M","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}
