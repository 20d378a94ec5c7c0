package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of order states. The storefront imposes no
// transition rules: any status may follow any other, and a tracking event can
// move an order backwards.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// ParseOrderStatus validates a status string against the closed set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Address is the shipping destination captured on the order.
type Address struct {
	Street  string `gorm:"type:varchar(255);not null" json:"street" binding:"required"`
	City    string `gorm:"type:varchar(128);not null" json:"city" binding:"required"`
	State   string `gorm:"type:varchar(64);not null" json:"state" binding:"required"`
	ZipCode string `gorm:"type:varchar(32);not null" json:"zip_code" binding:"required"`
}

type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64     `gorm:"type:numeric(12,2);not null" json:"total"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentIntentID string      `gorm:"type:varchar(255)" json:"payment_intent_id,omitempty"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderItem is a snapshot of a product at placement time. Later catalog edits
// never touch these rows.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       float64   `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
}

// ShortCode returns the public tracking code for the order: the trailing 8
// characters of its id.
func (o *Order) ShortCode() string {
	s := o.ID.String()
	return s[len(s)-8:]
}

// PlaceOrderRequest is the payload for direct order placement.
type PlaceOrderRequest struct {
	ShippingAddress Address `json:"shipping_address" binding:"required"`
}

// ConfirmPaymentRequest is the payload for payment-confirmed placement.
type ConfirmPaymentRequest struct {
	PaymentIntentID string  `json:"payment_intent_id" binding:"required"`
	ShippingAddress Address `json:"shipping_address" binding:"required"`
}
