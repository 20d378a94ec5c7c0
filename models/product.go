package models

import (
	"time"

	"github.com/google/uuid"
)

// LowStockThreshold is the stock level below which a product counts as low
// stock in admin reporting.
const LowStockThreshold = 10

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageURL    string    `gorm:"type:varchar(1024)" json:"image_url"`
	Category    string    `gorm:"type:varchar(128);not null;index" json:"category"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Featured    bool      `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateProductRequest is the payload for admin product creation.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock" binding:"min=0"`
	Featured    bool    `json:"featured"`
}
