package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRoleRepository struct{ mock.Mock }

func (m *MockRoleRepository) Upsert(ctx context.Context, a *access.RoleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRoleRepository) Get(ctx context.Context, actorID kernel.UUID) (*access.RoleAssignment, error) {
	args := m.Called(ctx, actorID)
	if a := args.Get(0); a != nil {
		return a.(*access.RoleAssignment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockValidatorRepository struct{ mock.Mock }

func (m *MockValidatorRepository) Add(ctx context.Context, a *access.ValidatorApproval) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockValidatorRepository) Get(ctx context.Context, validatorID kernel.UUID) (*access.ValidatorApproval, error) {
	args := m.Called(ctx, validatorID)
	if a := args.Get(0); a != nil {
		return a.(*access.ValidatorApproval), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Append(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) GetUnpublished(ctx context.Context, limit int) ([]*event.Event, error) {
	args := m.Called(ctx, limit)
	if events := args.Get(0); events != nil {
		return events.([]*event.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) MarkPublished(ctx context.Context, events []*event.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// mockTx embeds the shared transaction expectations of every UoW mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockCatalogUoW) RoleRepository() ports.RoleRepository {
	return m.Called().Get(0).(ports.RoleRepository)
}

func (m *MockCatalogUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockValidationUoW struct{ mockTx }

func (m *MockValidationUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockValidationUoW) ValidatorRepository() ports.ValidatorRepository {
	return m.Called().Get(0).(ports.ValidatorRepository)
}

func (m *MockValidationUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockValidationUoWFactory struct{ mock.Mock }

func (m *MockValidationUoWFactory) Create() commands.ValidationUoW {
	return m.Called().Get(0).(commands.ValidationUoW)
}

type MockDeliveryUoW struct{ mockTx }

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockDeliveryUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockAccessUoW struct{ mockTx }

func (m *MockAccessUoW) RoleRepository() ports.RoleRepository {
	return m.Called().Get(0).(ports.RoleRepository)
}

func (m *MockAccessUoW) ValidatorRepository() ports.ValidatorRepository {
	return m.Called().Get(0).(ports.ValidatorRepository)
}

func (m *MockAccessUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockAccessUoWFactory struct{ mock.Mock }

func (m *MockAccessUoWFactory) Create() commands.AccessUoW {
	return m.Called().Get(0).(commands.AccessUoW)
}

type MockOutboxUoW struct{ mockTx }

func (m *MockOutboxUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

// captureAppend matches any event log entry passed to Append and stores it
// so the test can compare the emitted fields against the mutated aggregate.
func captureAppend(dst **event.Event) any {
	return mock.MatchedBy(func(e *event.Event) bool {
		*dst = e
		return true
	})
}

func decodeEventPayload(t *testing.T, e *event.Event, dst any) {
	t.Helper()
	require.NotNil(t, e)
	require.NoError(t, json.Unmarshal(e.Payload(), dst))
}
