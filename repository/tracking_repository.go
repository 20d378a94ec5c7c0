package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shophub/models"
)

// TrackingRepository defines data-access operations for tracking events.
type TrackingRepository interface {
	Create(ctx context.Context, event *models.TrackingEvent) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.TrackingEvent, error)
}

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GormTrackingRepository.
func NewGormTrackingRepository(db *gorm.DB) TrackingRepository {
	return &GormTrackingRepository{db: db}
}

func (r *GormTrackingRepository) Create(ctx context.Context, event *models.TrackingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByOrderID returns an order's events newest first, matching the display
// order on the tracking page.
func (r *GormTrackingRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.TrackingEvent, error) {
	var events []models.TrackingEvent
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
