package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(1, 1, buyer, seller)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, int64(1), o.ProductID())
		assert.True(t, o.Buyer().IsEqual(buyer))
		assert.True(t, o.Seller().IsEqual(seller))
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsValidated())
		assert.False(t, o.CompletionRequested())
		assert.Nil(t, o.ValidatorID())
		assert.Nil(t, o.Courier())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		o, err := order.NewOrder(0, 1, buyer, seller)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with non-positive product id", func(t *testing.T) {
		o, err := order.NewOrder(1, 0, buyer, seller)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid buyer", func(t *testing.T) {
		var invalidBuyer kernel.UUID

		o, err := order.NewOrder(1, 1, invalidBuyer, seller)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid seller", func(t *testing.T) {
		var invalidSeller kernel.UUID

		o, err := order.NewOrder(1, 1, buyer, invalidSeller)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Approve(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()

	t.Run("should approve pending order", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)

		err := o.Approve(validator)

		require.NoError(t, err)
		assert.Equal(t, order.Validated, o.Status())
		assert.True(t, o.IsValidated())
		require.NotNil(t, o.ValidatorID())
		assert.True(t, o.ValidatorID().IsEqual(validator))
	})

	t.Run("second decision on same order fails", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, o.Approve(validator))

		err := o.Approve(validator)
		require.ErrorIs(t, err, order.ErrOrderAlreadyProcessed)

		err = o.Reject(validator)
		require.ErrorIs(t, err, order.ErrOrderAlreadyProcessed)
	})

	t.Run("should fail with invalid validator identity", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)
		var invalidValidator kernel.UUID

		err := o.Approve(invalidValidator)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()

	t.Run("should reject pending order without validating it", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)

		err := o.Reject(validator)

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
		assert.False(t, o.IsValidated())
		require.NotNil(t, o.ValidatorID())
	})

	t.Run("rejected order accepts no further mutation", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, o.Reject(validator))

		require.Error(t, o.AssignCourier(seller, kernel.NewUUID()))
		require.Error(t, o.RequestCompletion(seller))
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()
	courier := kernel.NewUUID()

	newValidatedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, err)
		require.NoError(t, o.Approve(validator))
		return o
	}

	t.Run("seller can assign courier on validated order", func(t *testing.T) {
		o := newValidatedOrder(t)

		err := o.AssignCourier(seller, courier)

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courier))
	})

	t.Run("non-seller cannot assign courier", func(t *testing.T) {
		o := newValidatedOrder(t)

		err := o.AssignCourier(buyer, courier)

		require.ErrorIs(t, err, order.ErrNotOrderSeller)
		assert.Equal(t, order.Validated, o.Status())
		assert.Nil(t, o.Courier())
	})

	t.Run("cannot assign on pending order", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)

		err := o.AssignCourier(seller, courier)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("invalid courier identity fails", func(t *testing.T) {
		o := newValidatedOrder(t)
		var invalidCourier kernel.UUID

		require.Error(t, o.AssignCourier(seller, invalidCourier))
	})
}

func TestOrder_UpdateDelivery(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()
	courier := kernel.NewUUID()

	newInDeliveryOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, err)
		require.NoError(t, o.Approve(validator))
		require.NoError(t, o.AssignCourier(seller, courier))
		return o
	}

	t.Run("assigned courier reports progress without completing", func(t *testing.T) {
		o := newInDeliveryOrder(t)

		err := o.UpdateDelivery(courier, false)

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, o.Status())
	})

	t.Run("assigned courier completes delivery", func(t *testing.T) {
		o := newInDeliveryOrder(t)

		err := o.UpdateDelivery(courier, true)

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryCompleted, o.Status())
	})

	t.Run("any other identity fails regardless of status", func(t *testing.T) {
		o := newInDeliveryOrder(t)

		require.ErrorIs(t, o.UpdateDelivery(seller, true), order.ErrNotAssignedCourier)
		require.ErrorIs(t, o.UpdateDelivery(buyer, false), order.ErrNotAssignedCourier)
		require.ErrorIs(t, o.UpdateDelivery(kernel.NewUUID(), true), order.ErrNotAssignedCourier)
		assert.Equal(t, order.DeliveryInProgress, o.Status())
	})

	t.Run("unassigned order rejects delivery updates", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)

		require.ErrorIs(t, o.UpdateDelivery(courier, true), order.ErrNotAssignedCourier)
	})

	t.Run("cannot report progress after completion", func(t *testing.T) {
		o := newInDeliveryOrder(t)
		require.NoError(t, o.UpdateDelivery(courier, true))

		require.Error(t, o.UpdateDelivery(courier, false))
		require.Error(t, o.UpdateDelivery(courier, true))
	})
}

func TestOrder_Finalization(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()
	courier := kernel.NewUUID()

	newDeliveredOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, err)
		require.NoError(t, o.Approve(validator))
		require.NoError(t, o.AssignCourier(seller, courier))
		require.NoError(t, o.UpdateDelivery(courier, true))
		return o
	}

	t.Run("seller completes then buyer confirms", func(t *testing.T) {
		o := newDeliveredOrder(t)

		require.NoError(t, o.RequestCompletion(seller))
		assert.True(t, o.CompletionRequested())
		assert.Equal(t, order.DeliveryCompleted, o.Status())

		require.NoError(t, o.ConfirmCompletion(buyer))
		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("buyer cannot confirm before seller completes", func(t *testing.T) {
		o := newDeliveredOrder(t)

		err := o.ConfirmCompletion(buyer)

		require.ErrorIs(t, err, order.ErrCompletionNotRequested)
		assert.Equal(t, order.DeliveryCompleted, o.Status())
	})

	t.Run("only seller may complete", func(t *testing.T) {
		o := newDeliveredOrder(t)

		require.ErrorIs(t, o.RequestCompletion(buyer), order.ErrNotOrderSeller)
		require.ErrorIs(t, o.RequestCompletion(courier), order.ErrNotOrderSeller)
	})

	t.Run("only buyer may confirm", func(t *testing.T) {
		o := newDeliveredOrder(t)
		require.NoError(t, o.RequestCompletion(seller))

		require.ErrorIs(t, o.ConfirmCompletion(seller), order.ErrNotOrderBuyer)
		require.ErrorIs(t, o.ConfirmCompletion(courier), order.ErrNotOrderBuyer)
	})

	t.Run("seller cannot complete before delivery is done", func(t *testing.T) {
		o, _ := order.NewOrder(1, 1, buyer, seller)
		require.NoError(t, o.Approve(validator))
		require.NoError(t, o.AssignCourier(seller, courier))

		require.ErrorIs(t, o.RequestCompletion(seller), order.ErrDeliveryNotCompleted)
	})

	t.Run("repeated confirmation fails with already finalized", func(t *testing.T) {
		o := newDeliveredOrder(t)
		require.NoError(t, o.RequestCompletion(seller))
		require.NoError(t, o.ConfirmCompletion(buyer))

		err := o.ConfirmCompletion(buyer)

		require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
	})

	t.Run("seller cannot complete a finalized order", func(t *testing.T) {
		o := newDeliveredOrder(t)
		require.NoError(t, o.RequestCompletion(seller))
		require.NoError(t, o.ConfirmCompletion(buyer))

		require.ErrorIs(t, o.RequestCompletion(seller), order.ErrOrderAlreadyFinalized)
	})
}

func TestRestoreOrder(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	validator := kernel.NewUUID()
	courier := kernel.NewUUID()

	t.Run("should restore full assignment state", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 2, buyer, seller, &validator, &courier, true, true, order.DeliveryCompleted)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, order.DeliveryCompleted, o.Status())
		assert.True(t, o.IsValidated())
		assert.True(t, o.CompletionRequested())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courier))
	})

	t.Run("restored delivered order can finalize", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 2, buyer, seller, &validator, &courier, true, true, order.DeliveryCompleted)
		require.NoError(t, err)

		require.NoError(t, o.ConfirmCompletion(buyer))
		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(3, 2, buyer, seller, nil, nil, false, false, order.Unknown)

		require.Error(t, err)
	})

	t.Run("should reject invalid optional identities", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := order.RestoreOrder(3, 2, buyer, seller, &invalid, nil, false, false, order.Pending)
		require.Error(t, err)

		_, err = order.RestoreOrder(3, 2, buyer, seller, nil, &invalid, false, false, order.Pending)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
	})
}
