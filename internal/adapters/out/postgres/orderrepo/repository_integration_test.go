package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ any, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) TestNextID_EmptyTable_ReturnsOne() {
	next, err := suite.repo.NextID(context.Background())

	suite.Require().NoError(err)
	suite.Equal(int64(1), next)
}

func (suite *OrderRepositoryTestSuite) TestNextID_IsSequential() {
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		next, err := suite.repo.NextID(ctx)
		suite.Require().NoError(err)
		suite.Equal(want, next)

		aggregate, err := order.NewOrder(next, 1, kernel.NewUUID(), kernel.NewUUID())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Add(ctx, aggregate))
	}
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	aggregate, err := order.NewOrder(1, 7, buyerID, sellerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, 1)
	suite.Require().NoError(err)

	suite.Equal(int64(1), restored.ID())
	suite.Equal(int64(7), restored.ProductID())
	suite.True(restored.Buyer().IsEqual(buyerID))
	suite.True(restored.Seller().IsEqual(sellerID))
	suite.Equal(order.Pending, restored.Status())
	suite.False(restored.IsValidated())
	suite.False(restored.CompletionRequested())
	suite.Nil(restored.ValidatorID())
	suite.Nil(restored.Courier())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), 404)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsFullLifecycle() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	validatorID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	aggregate, err := order.NewOrder(1, 7, buyerID, sellerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Approve(validatorID))
	suite.Require().NoError(aggregate.AssignCourier(sellerID, courierID))
	suite.Require().NoError(aggregate.UpdateDelivery(courierID, true))
	suite.Require().NoError(aggregate.RequestCompletion(sellerID))
	suite.Require().NoError(aggregate.ConfirmCompletion(buyerID))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, 1)
	suite.Require().NoError(err)

	suite.Equal(order.Finalized, restored.Status())
	suite.True(restored.IsValidated())
	suite.True(restored.CompletionRequested())
	suite.Require().NotNil(restored.ValidatorID())
	suite.True(restored.ValidatorID().IsEqual(validatorID))
	suite.Require().NotNil(restored.Courier())
	suite.True(restored.Courier().IsEqual(courierID))
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsZeroValuedFields() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	aggregate, err := order.NewOrder(1, 7, buyerID, sellerID)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Reject(kernel.NewUUID()))
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	// Rejected keeps is_validated false alongside a non-pending status;
	// a partial update would silently drop the false column.
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	restored, err := suite.repo.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, restored.Status())
	suite.False(restored.IsValidated())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingOrder() {
	aggregate, err := order.NewOrder(99, 7, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), aggregate)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryTestSuite))
}
