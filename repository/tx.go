package repository

import (
	"context"

	"gorm.io/gorm"
)

// CheckoutStores bundles the repositories a checkout touches, all bound to
// the same transaction.
type CheckoutStores struct {
	Carts    CartRepository
	Products ProductRepository
	Orders   OrderRepository
}

// TxManager runs a function against transaction-scoped stores. The checkout
// orchestrator relies on this for whole-operation atomicity: either every
// stock decrement, the order insert and the cart deletes commit together, or
// none of them do.
type TxManager interface {
	InTransaction(ctx context.Context, fn func(stores CheckoutStores) error) error
}

// GormTxManager implements TxManager over a gorm database handle.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager.
func NewGormTxManager(db *gorm.DB) TxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) InTransaction(ctx context.Context, fn func(stores CheckoutStores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(CheckoutStores{
			Carts:    NewGormCartRepository(tx),
			Products: NewGormProductRepository(tx),
			Orders:   NewGormOrderRepository(tx),
		})
	})
}
