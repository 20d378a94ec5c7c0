package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "shophub/common/errors"
	"shophub/models"
	"shophub/sender"
	"shophub/services"
)

// capturingSender records every email handed to it.
type capturingSender struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (c *capturingSender) SendEmail(_ context.Context, to, subject, body string) (sender.SendResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, to)
	if c.sendErr != nil {
		return sender.SendResult{}, c.sendErr
	}
	return sender.SendResult{}, nil
}

func newAdminService(s *memStore, notifier *services.Notifier) *services.AdminService {
	logger, _ := zap.NewDevelopment()
	return services.NewAdminService(&memOrderRepo{s: s}, &memProductRepo{s: s}, &memUserRepo{s: s}, notifier, logger)
}

func TestUpdateOrderStatus_UpdatesAndNotifiesOwner(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice@example.com", false)
	order := store.addOrder(user.ID, 20.00, models.StatusPaid)

	logger, _ := zap.NewDevelopment()
	email := &capturingSender{}
	notifier := services.NewNotifier(email, &memNotificationRepo{s: store}, nil, "", logger)
	svc := newAdminService(store, notifier)

	updated, appErr := svc.UpdateOrderStatus(context.Background(), order.ID, models.StatusShipped)
	notifier.Close()

	assert.Nil(t, appErr)
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.Equal(t, models.StatusShipped, store.orders[order.ID].Status)

	assert.Equal(t, []string{"alice@example.com"}, email.sent)
	assert.Len(t, store.logs, 1)
	assert.Equal(t, models.NotificationSent, store.logs[0].Status)
}

func TestUpdateOrderStatus_EmailFailureDoesNotFailUpdate(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice@example.com", false)
	order := store.addOrder(user.ID, 20.00, models.StatusPaid)

	logger, _ := zap.NewDevelopment()
	email := &capturingSender{sendErr: assert.AnError}
	notifier := services.NewNotifier(email, &memNotificationRepo{s: store}, nil, "", logger)
	svc := newAdminService(store, notifier)

	_, appErr := svc.UpdateOrderStatus(context.Background(), order.ID, models.StatusDelivered)
	notifier.Close()

	assert.Nil(t, appErr)
	assert.Equal(t, models.StatusDelivered, store.orders[order.ID].Status)
	assert.Len(t, store.logs, 1)
	assert.Equal(t, models.NotificationFailed, store.logs[0].Status)
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	svc := newAdminService(newMemStore(), nil)

	_, appErr := svc.UpdateOrderStatus(context.Background(), uuid.New(), models.StatusShipped)

	assert.Equal(t, apperrors.ErrOrderNotFound, appErr)
}

func TestStats_CountsRevenueAndLowStock(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice@example.com", false)
	store.addOrder(user.ID, 10.00, models.StatusPending)
	store.addOrder(user.ID, 15.00, models.StatusPaid)
	store.addOrder(user.ID, 25.00, models.StatusDelivered)
	store.addProduct("Wireless Headphones", 79.99, 50)
	store.addProduct("Desk Lamp", 34.99, 3) // below the low stock threshold
	svc := newAdminService(store, nil)

	stats, appErr := svc.Stats(context.Background())

	assert.Nil(t, appErr)
	assert.Equal(t, 50.00, stats.TotalRevenue)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.PendingOrders) // pending and paid both count
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.LowStockProducts)
}

func TestListAllOrders_FiltersByStatus(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice@example.com", false)
	store.addOrder(user.ID, 10.00, models.StatusPending)
	store.addOrder(user.ID, 15.00, models.StatusShipped)
	svc := newAdminService(store, nil)

	shipped := models.StatusShipped
	orders, appErr := svc.ListAllOrders(context.Background(), &shipped)

	assert.Nil(t, appErr)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.StatusShipped, orders[0].Status)
}

func TestPromoteUser_SetsAdminFlag(t *testing.T) {
	store := newMemStore()
	user := store.addUser("alice@example.com", false)
	svc := newAdminService(store, nil)

	appErr := svc.PromoteUser(context.Background(), user.ID)

	assert.Nil(t, appErr)
	assert.True(t, store.users[user.ID].IsAdmin)
}

func TestPromoteFirstUser_PicksEarliestRegistration(t *testing.T) {
	store := newMemStore()
	first := store.addUser("first@example.com", false)
	store.addUser("second@example.com", false)
	svc := newAdminService(store, nil)

	promoted, appErr := svc.PromoteFirstUser(context.Background())

	assert.Nil(t, appErr)
	assert.Equal(t, first.ID, promoted.ID)
	assert.True(t, store.users[first.ID].IsAdmin)
}

func TestPromoteFirstUser_NoUsers(t *testing.T) {
	svc := newAdminService(newMemStore(), nil)

	_, appErr := svc.PromoteFirstUser(context.Background())

	assert.Equal(t, apperrors.ErrUserNotFound, appErr)
}
