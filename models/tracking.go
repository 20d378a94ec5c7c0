package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is an admin-authored status update attached to an order.
// Inserting one also patches the order's status field.
type TrackingEvent struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"order_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Location    string      `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

// OrderTracking is an order together with its events, newest first.
type OrderTracking struct {
	Order  *Order          `json:"order"`
	Events []TrackingEvent `json:"tracking_events"`
}

// AddTrackingEventRequest is the payload for recording a tracking event.
type AddTrackingEventRequest struct {
	Status      string `json:"status" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location"`
}
