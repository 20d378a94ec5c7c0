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

// TrackingService serves the tracking log: an append-only event stream per
// order whose newest entry also overwrites the order's status field.
type TrackingService struct {
	orders   repository.OrderRepository
	tracking repository.TrackingRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(
	orders repository.OrderRepository,
	tracking repository.TrackingRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) *TrackingService {
	return &TrackingService{orders: orders, tracking: tracking, users: users, logger: logger}
}

// GetByOrder returns an order and its events, newest first, for the order's
// owner or an admin. Any other caller gets the same not-found as a missing
// order.
func (s *TrackingService) GetByOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.OrderTracking, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.Internal(err)
	}

	if order.UserID != userID {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil || !user.IsAdmin {
			return nil, apperrors.ErrOrderNotFound
		}
	}

	return s.withEvents(ctx, order)
}

// GetByShortCode returns an order and its events looked up by the trailing 8
// characters of the order id. This backs the public tracking page, so there is
// no ownership check here. The short code stands in for a tracking token.
func (s *TrackingService) GetByShortCode(ctx context.Context, code string) (*models.OrderTracking, *apperrors.Error) {
	order, err := s.orders.FindByShortCode(ctx, code)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return s.withEvents(ctx, order)
}

// AddEvent appends a tracking event and patches the order's status to match.
// Transitions are unconstrained: a later event may move the status backwards.
// Admin gating happens at the route entry.
func (s *TrackingService) AddEvent(ctx context.Context, orderID uuid.UUID, status models.OrderStatus, description, location string) *apperrors.Error {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return apperrors.Internal(err)
	}

	event := &models.TrackingEvent{
		OrderID:     orderID,
		Status:      status,
		Description: description,
		Location:    location,
	}
	if err := s.tracking.Create(ctx, event); err != nil {
		return apperrors.Internal(err)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return apperrors.Internal(err)
	}

	s.logger.Info("tracking event added",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *TrackingService) withEvents(ctx context.Context, order *models.Order) (*models.OrderTracking, *apperrors.Error) {
	events, err := s.tracking.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &models.OrderTracking{Order: order, Events: events}, nil
}
