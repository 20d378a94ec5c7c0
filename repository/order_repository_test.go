package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"shophub/models"
	"shophub/repository"
)

func TestFindByShortCode_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderID := uuid.New()
	userID := uuid.New()
	code := orderID.String()[len(orderID.String())-8:]
	now := time.Now()

	orderRows := sqlmock.NewRows([]string{"id", "user_id", "total", "status", "created_at", "updated_at"}).
		AddRow(orderID, userID, 20.00, "shipped", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE RIGHT(id::text, 8) = $1`)).
		WillReturnRows(orderRows)

	itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "price", "quantity"}).
		AddRow(uuid.New(), orderID, uuid.New(), "Wireless Headphones", 10.00, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(itemRows)

	order, err := repo.FindByShortCode(context.Background(), code)
	assert.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Len(t, order.Items, 1)
}

func TestFindByShortCode_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByShortCode(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, order)
}

func TestUpdateStatus(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), id, models.StatusShipped)
	assert.NoError(t, err)
}

func TestSumTotals(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(total), 0) FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(50.00))

	revenue, err := repo.SumTotals(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 50.00, revenue)
}

func TestCountByStatuses(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders" WHERE status IN ($1,$2)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByStatuses(context.Background(), models.StatusPending, models.StatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
