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

// OrderService serves a customer's own order history.
type OrderService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// ListOrders returns the caller's orders, most recent first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, *apperrors.Error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch orders", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// GetOrder returns one of the caller's orders. An order owned by someone else
// is reported exactly like a missing one, so callers cannot probe for
// existence.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.Internal(err)
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}
