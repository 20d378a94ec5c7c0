package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one (user, product, quantity) line. The unique index makes
// re-adding a product merge into the existing line instead of duplicating it.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CartLine is a cart item joined with its live product for display.
type CartLine struct {
	CartItem
	Product *Product `json:"product"`
}

// AddToCartRequest is the payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest is the payload for changing a cart line's quantity.
// Zero and negative quantities delete the line, so no minimum is enforced.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
