package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopzo-app/shopzo-backend/pkg/db/models"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type userLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service owns cart aggregation and idempotent line-item merges.
type Service interface {
	ResolveCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, input AddItemInput) (*models.CartItem, error)
}

// AddItemInput captures the payload required to add one product+size line.
type AddItemInput struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

type service struct {
	repo     CartRepository
	tx       txRunner
	users    userLoader
	products productLoader
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo CartRepository, tx txRunner, users userLoader, products productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if users == nil {
		return nil, fmt.Errorf("user loader required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		users:    users,
		products: products,
	}, nil
}

// ResolveCart returns the user's cart, lazily creating it, with totals
// recomputed from the current item set and persisted. The recompute-and-save
// runs on every call; the result is idempotent when nothing changed.
func (s *service) ResolveCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	var cart *models.Cart
	err := s.withConflictRetry(ctx, func() error {
		return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			resolved, err := s.resolveAndRecompute(ctx, s.repo.WithTx(tx), userID)
			if err != nil {
				return err
			}
			cart = resolved
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem creates a line item for (product, size) under the user's cart, or
// returns the existing identical line untouched. A new line triggers one
// totals recompute-and-save inside the same transaction.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, input AddItemInput) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	size := strings.TrimSpace(input.Size)

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	var item *models.CartItem
	err := s.withConflictRetry(ctx, func() error {
		return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			txRepo := s.repo.WithTx(tx)

			cart, err := s.resolveAndRecompute(ctx, txRepo, userID)
			if err != nil {
				return err
			}

			existing, err := txRepo.FindItem(ctx, cart.ID, input.ProductID, size)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load line item")
			}
			if existing != nil {
				item = existing
				return nil
			}

			product, err := s.products.GetByID(ctx, input.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}

			created, err := txRepo.CreateItem(ctx, &models.CartItem{
				CartID:               cart.ID,
				ProductID:            product.ID,
				UserID:               userID,
				Size:                 size,
				Quantity:             input.Quantity,
				ListPriceExtCents:    input.Quantity * product.ListPriceCents,
				SellingPriceExtCents: input.Quantity * product.SellingPriceCents,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist line item")
			}

			cart.Items = append(cart.Items, *created)
			recomputeTotals(cart)
			if err := txRepo.SaveTotals(ctx, cart); err != nil {
				return err
			}

			item = created
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// resolveAndRecompute is the aggregation step shared by both operations: it
// loads or creates the cart, folds the item set into the derived totals, and
// persists them under the optimistic version check.
func (s *service) resolveAndRecompute(ctx context.Context, repo CartRepository, userID uuid.UUID) (*models.Cart, error) {
	cart, err := repo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		cart, err = repo.Create(ctx, &models.Cart{UserID: userID, Items: []models.CartItem{}})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
		}
	}

	recomputeTotals(cart)
	if err := repo.SaveTotals(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return nil
}

// withConflictRetry runs fn, retrying exactly once with a fresh read when the
// versioned totals write lost a race, then surfaces a conflict.
func (s *service) withConflictRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if errors.Is(err, ErrVersionConflict) {
		err = fn()
	}
	if errors.Is(err, ErrVersionConflict) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "cart was modified concurrently")
	}
	return err
}

// recomputeTotals folds the line-item set into the cart's derived columns.
// Extensions are snapshots taken at line creation; the fold never consults
// current catalog prices.
func recomputeTotals(cart *models.Cart) {
	var listTotal, sellingTotal, itemCount int
	for _, item := range cart.Items {
		listTotal += item.ListPriceExtCents
		sellingTotal += item.SellingPriceExtCents
		itemCount += item.Quantity
	}

	cart.TotalItemCount = itemCount
	cart.TotalListPriceCents = listTotal
	cart.TotalSellingPriceCents = sellingTotal - cart.CouponAmountCents
	cart.DiscountPercent = DiscountPercent(listTotal, sellingTotal)
}
