package access_test

import (
	"testing"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatorApproval(t *testing.T) {
	t.Run("should create valid approval", func(t *testing.T) {
		validatorID := kernel.NewUUID()
		adminID := kernel.NewUUID()

		approval, err := access.NewValidatorApproval(validatorID, adminID)

		require.NoError(t, err)
		require.NoError(t, approval.Validate())
		assert.True(t, approval.ValidatorID().IsEqual(validatorID))
		assert.True(t, approval.ApprovedBy().IsEqual(adminID))
	})

	t.Run("should fail with invalid validator id", func(t *testing.T) {
		var invalidID kernel.UUID

		approval, err := access.NewValidatorApproval(invalidID, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, approval)
	})

	t.Run("should fail with invalid approver id", func(t *testing.T) {
		var invalidID kernel.UUID

		approval, err := access.NewValidatorApproval(kernel.NewUUID(), invalidID)

		require.Error(t, err)
		assert.Nil(t, approval)
	})
}

func TestRestoreValidatorApproval(t *testing.T) {
	t.Run("should reconstruct approval from persistence", func(t *testing.T) {
		validatorID := kernel.NewUUID()
		adminID := kernel.NewUUID()

		approval, err := access.RestoreValidatorApproval(validatorID, adminID)

		require.NoError(t, err)
		require.NoError(t, approval.Validate())
		assert.True(t, approval.ValidatorID().IsEqual(validatorID))
	})
}

func TestValidatorApproval_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var approval access.ValidatorApproval

		assert.ErrorIs(t, approval.Validate(), access.ErrValidatorApprovalIsNotConstructed)
	})

	t.Run("should reject nil", func(t *testing.T) {
		var approval *access.ValidatorApproval

		assert.ErrorIs(t, approval.Validate(), access.ErrValidatorApprovalIsNotConstructed)
	})
}
