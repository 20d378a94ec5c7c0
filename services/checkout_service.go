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

// CheckoutService converts a cart into an order. Direct placement and
// payment-confirmed placement share one algorithm; the whole conversion runs
// in a single database transaction, so a failure on any line rolls back every
// stock decrement and the order insert.
type CheckoutService struct {
	tx     repository.TxManager
	cache  *CatalogCache
	logger *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. cache may be nil.
func NewCheckoutService(tx repository.TxManager, cache *CatalogCache, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{tx: tx, cache: cache, logger: logger}
}

// PlaceOrder converts the caller's cart into a pending order.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, address models.Address) (uuid.UUID, *apperrors.Error) {
	return s.placeOrder(ctx, userID, address, models.StatusPending, "")
}

// ConfirmPayment converts the caller's cart into a paid order carrying the
// client-supplied payment intent id. The intent is not verified with the
// gateway; confirmation happens client-side and the id is recorded as given.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, userID uuid.UUID, paymentIntentID string, address models.Address) (uuid.UUID, *apperrors.Error) {
	return s.placeOrder(ctx, userID, address, models.StatusPaid, paymentIntentID)
}

func (s *CheckoutService) placeOrder(
	ctx context.Context,
	userID uuid.UUID,
	address models.Address,
	status models.OrderStatus,
	paymentIntentID string,
) (uuid.UUID, *apperrors.Error) {
	var orderID uuid.UUID
	var appErr *apperrors.Error

	err := s.tx.InTransaction(ctx, func(stores repository.CheckoutStores) error {
		cartItems, err := stores.Carts.FindByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			appErr = apperrors.ErrEmptyCart
			return appErr
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		var total float64

		for _, cartItem := range cartItems {
			product, err := stores.Products.FindByID(ctx, cartItem.ProductID)
			if err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					appErr = apperrors.ErrProductNotFound
					return appErr
				}
				return err
			}

			if cartItem.Quantity > product.Stock {
				appErr = apperrors.ErrInsufficientStock(product.Name)
				return appErr
			}

			total += product.Price * float64(cartItem.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    cartItem.Quantity,
			})

			ok, err := stores.Products.DecrementStock(ctx, product.ID, cartItem.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Lost a race with a concurrent checkout after the read above.
				appErr = apperrors.ErrInsufficientStock(product.Name)
				return appErr
			}
		}

		order := &models.Order{
			UserID:          userID,
			Items:           orderItems,
			Total:           total,
			Status:          status,
			PaymentIntentID: paymentIntentID,
			ShippingAddress: address,
		}
		if err := stores.Orders.Create(ctx, order); err != nil {
			return err
		}
		orderID = order.ID

		for _, cartItem := range cartItems {
			if err := stores.Carts.Delete(ctx, cartItem.ID); err != nil {
				return err
			}
		}
		return nil
	})

	if appErr != nil {
		return uuid.Nil, appErr
	}
	if err != nil {
		s.logger.Error("checkout failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return uuid.Nil, apperrors.Internal(err)
	}

	// The committed decrements changed catalog stock; orphan cached listings.
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info("order placed",
		zap.String("order_id", orderID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
	)
	return orderID, nil
}
