package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shophub/models"
	"shophub/repository"
)

// memStore is an in-memory stand-in for the Postgres store, shared by the
// typed fake repositories below.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	products map[uuid.UUID]*models.Product
	cart     map[uuid.UUID]*models.CartItem
	orders   map[uuid.UUID]*models.Order
	events   []models.TrackingEvent
	users    map[uuid.UUID]*models.User
	logs     []models.NotificationLog
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]*models.Product),
		cart:     make(map[uuid.UUID]*models.CartItem),
		orders:   make(map[uuid.UUID]*models.Order),
		users:    make(map[uuid.UUID]*models.User),
	}
}

func (s *memStore) addProduct(name string, price float64, stock int) *models.Product {
	p := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Category: "Test",
		Stock:    stock,
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) addCartItem(userID, productID uuid.UUID, quantity int) *models.CartItem {
	s.seq++
	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Unix(s.seq, 0),
	}
	s.cart[item.ID] = item
	return item
}

func (s *memStore) addUser(email string, isAdmin bool) *models.User {
	s.seq++
	u := &models.User{
		ID:        uuid.New(),
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: time.Unix(s.seq, 0),
	}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addOrder(userID uuid.UUID, total float64, status models.OrderStatus) *models.Order {
	s.seq++
	o := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Total:     total,
		Status:    status,
		CreatedAt: time.Unix(s.seq, 0),
	}
	s.orders[o.ID] = o
	return o
}

// ---- product repository ----

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *memProductRepo) CreateBatch(ctx context.Context, products []models.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	all, _ := r.FindAll(ctx)
	out := all[:0]
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindByFeatured(ctx context.Context, featured bool) ([]models.Product, error) {
	all, _ := r.FindAll(ctx)
	out := all[:0]
	for _, p := range all {
		if p.Featured == featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Categories(ctx context.Context) ([]string, error) {
	all, _ := r.FindAll(ctx)
	seen := make(map[string]bool)
	var out []string
	for _, p := range all {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

func (r *memProductRepo) CountLowStock(_ context.Context, threshold int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.products {
		if p.Stock < threshold {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

// ---- cart repository ----

type memCartRepo struct{ s *memStore }

func (r *memCartRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.CartItem
	for _, item := range r.s.cart {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memCartRepo) FindByID(_ context.Context, id uuid.UUID) (*models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.cart[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memCartRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, item := range r.s.cart {
		if item.UserID == userID && item.ProductID == productID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCartRepo) Create(_ context.Context, item *models.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.s.seq++
	item.CreatedAt = time.Unix(r.s.seq, 0)
	r.s.cart[item.ID] = item
	return nil
}

func (r *memCartRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.cart[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.cart, id)
	return nil
}

func (r *memCartRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, item := range r.s.cart {
		if item.UserID == userID {
			delete(r.s.cart, id)
		}
	}
	return nil
}

// ---- order repository ----

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	r.s.seq++
	order.CreatedAt = time.Unix(r.s.seq, 0)
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) FindAll(_ context.Context, status *models.OrderStatus) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Order
	for _, o := range r.s.orders {
		if status == nil || o.Status == *status {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) FindByShortCode(_ context.Context, code string) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ShortCode() == code {
			cp := *o
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) SumTotals(_ context.Context) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum float64
	for _, o := range r.s.orders {
		sum += o.Total
	}
	return sum, nil
}

func (r *memOrderRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.orders)), nil
}

func (r *memOrderRepo) CountByStatuses(_ context.Context, statuses ...models.OrderStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, o := range r.s.orders {
		for _, st := range statuses {
			if o.Status == st {
				n++
				break
			}
		}
	}
	return n, nil
}

// ---- tracking repository ----

type memTrackingRepo struct{ s *memStore }

func (r *memTrackingRepo) Create(_ context.Context, event *models.TrackingEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.s.seq++
	event.CreatedAt = time.Unix(r.s.seq, 0)
	r.s.events = append(r.s.events, *event)
	return nil
}

func (r *memTrackingRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) ([]models.TrackingEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.TrackingEvent
	for i := len(r.s.events) - 1; i >= 0; i-- {
		if r.s.events[i].OrderID == orderID {
			out = append(out, r.s.events[i])
		}
	}
	return out, nil
}

// ---- user repository ----

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) FindFirst(ctx context.Context) (*models.User, error) {
	users, _ := r.FindAll(ctx)
	if len(users) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &users[0], nil
}

func (r *memUserRepo) SetAdmin(_ context.Context, id uuid.UUID, isAdmin bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsAdmin = isAdmin
	return nil
}

// ---- notification repository ----

type memNotificationRepo struct{ s *memStore }

func (r *memNotificationRepo) Create(_ context.Context, log *models.NotificationLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.logs = append(r.s.logs, *log)
	return nil
}

// ---- transaction manager ----

// memTxManager snapshots the store before running fn and restores it when fn
// fails, mirroring the rollback the real store gets from Postgres.
type memTxManager struct{ s *memStore }

func (m *memTxManager) InTransaction(_ context.Context, fn func(stores repository.CheckoutStores) error) error {
	snapProducts := make(map[uuid.UUID]models.Product, len(m.s.products))
	for id, p := range m.s.products {
		snapProducts[id] = *p
	}
	snapCart := make(map[uuid.UUID]models.CartItem, len(m.s.cart))
	for id, item := range m.s.cart {
		snapCart[id] = *item
	}
	snapOrders := make(map[uuid.UUID]models.Order, len(m.s.orders))
	for id, o := range m.s.orders {
		snapOrders[id] = *o
	}

	err := fn(repository.CheckoutStores{
		Carts:    &memCartRepo{s: m.s},
		Products: &memProductRepo{s: m.s},
		Orders:   &memOrderRepo{s: m.s},
	})
	if err != nil {
		m.s.mu.Lock()
		m.s.products = make(map[uuid.UUID]*models.Product, len(snapProducts))
		for id, p := range snapProducts {
			cp := p
			m.s.products[id] = &cp
		}
		m.s.cart = make(map[uuid.UUID]*models.CartItem, len(snapCart))
		for id, item := range snapCart {
			cp := item
			m.s.cart[id] = &cp
		}
		m.s.orders = make(map[uuid.UUID]*models.Order, len(snapOrders))
		for id, o := range snapOrders {
			cp := o
			m.s.orders[id] = &cp
		}
		m.s.mu.Unlock()
	}
	return err
}
