package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "shophub/common/errors"
	"shophub/models"
	"shophub/repository"
)

// AdminService covers the admin console: order management, reporting and
// user administration. Admin gating is the route guard's job; these methods
// assume the caller is already authorized.
type AdminService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	notifier *Notifier
	logger   *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	notifier *Notifier,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		orders:   orders,
		products: products,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// ListAllOrders returns every order, most recent first, optionally filtered
// by status.
func (s *AdminService) ListAllOrders(ctx context.Context, status *models.OrderStatus) ([]models.Order, *apperrors.Error) {
	orders, err := s.orders.FindAll(ctx, status)
	if err != nil {
		s.logger.Error("failed to fetch all orders", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// UpdateOrderStatus overwrites an order's status. No transition rules apply:
// any status may follow any other. A notification to the order's owner is
// published fire-and-forget; its delivery never affects the update.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, apperrors.Internal(err)
	}
	order.Status = status

	if s.notifier != nil {
		event := models.OrderStatusEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			Status:     status,
			OrderTotal: order.Total,
			Timestamp:  time.Now().UTC(),
		}
		if user, err := s.users.FindByID(ctx, order.UserID); err == nil {
			event.Email = user.Email
		}
		s.notifier.Publish(event)
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return order, nil
}

// Stats recomputes the dashboard summary from full scans on every call.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, *apperrors.Error) {
	revenue, err := s.orders.SumTotals(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	pendingOrders, err := s.orders.CountByStatuses(ctx, models.StatusPending, models.StatusPaid)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	lowStock, err := s.products.CountLowStock(ctx, models.LowStockThreshold)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.AdminStats{
		TotalRevenue:     revenue,
		TotalOrders:      totalOrders,
		PendingOrders:    pendingOrders,
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
	}, nil
}

// ListUsers returns all users.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, *apperrors.Error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// PromoteUser grants a user admin rights.
func (s *AdminService) PromoteUser(ctx context.Context, userID uuid.UUID) *apperrors.Error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Internal(err)
	}
	if err := s.users.SetAdmin(ctx, userID, true); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// PromoteFirstUser makes the earliest-registered user an admin. Bootstrap
// helper for fresh environments where no admin exists yet.
func (s *AdminService) PromoteFirstUser(ctx context.Context) (*models.User, *apperrors.Error) {
	user, err := s.users.FindFirst(ctx)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Internal(err)
	}
	if err := s.users.SetAdmin(ctx, user.ID, true); err != nil {
		return nil, apperrors.Internal(err)
	}
	user.IsAdmin = true
	return user, nil
}
