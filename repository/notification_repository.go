package repository

import (
	"context"

	"gorm.io/gorm"

	"shophub/models"
)

// NotificationRepository records outbound notification attempts.
type NotificationRepository interface {
	Create(ctx context.Context, log *models.NotificationLog) error
}

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository.
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(ctx context.Context, log *models.NotificationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
