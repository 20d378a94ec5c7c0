package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "shophub/common/errors"
	"shophub/models"
	"shophub/repository"
)

// CartService implements the cart store: stock-checked adds that merge into
// existing lines, ownership-checked edits and live-product joins on read.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// ListCart returns the user's cart lines joined with their live products.
// Lines whose product no longer resolves are dropped, not reported as errors.
func (s *CartService) ListCart(ctx context.Context, userID uuid.UUID) ([]models.CartLine, *apperrors.Error) {
	items, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load cart", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperrors.Internal(err)
		}
		lines = append(lines, models.CartLine{CartItem: item, Product: product})
	}
	return lines, nil
}

// AddToCart adds quantity of a product to the user's cart, merging into an
// existing line for the same product. The merged quantity must not exceed the
// product's current stock.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) *apperrors.Error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.Internal(err)
	}

	if quantity > product.Stock {
		return apperrors.ErrInsufficientStock("")
	}

	existing, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal(err)
	}

	if existing != nil && err == nil {
		newQuantity := existing.Quantity + quantity
		if newQuantity > product.Stock {
			return apperrors.ErrInsufficientStock("")
		}
		if err := s.carts.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.carts.Create(ctx, item); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// UpdateQuantity sets a cart line's quantity. Non-positive quantities delete
// the line. Lines not owned by the caller are reported as not found.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) *apperrors.Error {
	item, err := s.carts.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return apperrors.Internal(err)
	}
	if item.UserID != userID {
		return apperrors.ErrCartItemNotFound
	}

	if quantity <= 0 {
		if err := s.carts.Delete(ctx, itemID); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	}

	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.Internal(err)
	}
	if quantity > product.Stock {
		return apperrors.ErrInsufficientStock("")
	}

	if err := s.carts.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// RemoveItem deletes a cart line owned by the caller.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) *apperrors.Error {
	item, err := s.carts.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return apperrors.Internal(err)
	}
	if item.UserID != userID {
		return apperrors.ErrCartItemNotFound
	}

	if err := s.carts.Delete(ctx, itemID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ClearCart removes every line in the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) *apperrors.Error {
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ItemCount returns the sum of quantities across the user's cart lines.
// An anonymous caller has an empty cart, not an error.
func (s *CartService) ItemCount(ctx context.Context, userID uuid.UUID) (int, *apperrors.Error) {
	if userID == uuid.Nil {
		return 0, nil
	}

	items, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return 0, apperrors.Internal(err)
	}

	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}
