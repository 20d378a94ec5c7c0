package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChannelEmail = "email"

	NotificationSent   = "sent"
	NotificationFailed = "failed"

	TypeOrderStatus = "order_status"
)

// NotificationLog records every outbound notification attempt.
type NotificationLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Recipient string    `gorm:"type:varchar(255);not null" json:"recipient"`
	Type      string    `gorm:"type:varchar(64);not null" json:"type"`
	Channel   string    `gorm:"type:varchar(32);not null" json:"channel"`
	Status    string    `gorm:"type:varchar(32);not null" json:"status"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OrderStatusEvent is published to the notifier when an admin changes an
// order's status. Delivery is best-effort and never blocks the update.
type OrderStatusEvent struct {
	OrderID    uuid.UUID   `json:"order_id"`
	UserID     uuid.UUID   `json:"user_id"`
	Email      string      `json:"email"`
	Status     OrderStatus `json:"status"`
	OrderTotal float64     `json:"order_total"`
	Timestamp  time.Time   `json:"timestamp"`
}

// AdminStats is the admin dashboard summary, recomputed from scratch per call.
type AdminStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalOrders      int64   `json:"total_orders"`
	PendingOrders    int64   `json:"pending_orders"`
	TotalProducts    int64   `json:"total_products"`
	LowStockProducts int64   `json:"low_stock_products"`
}
