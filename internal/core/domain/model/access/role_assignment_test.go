package access_test

import (
	"testing"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleAssignment(t *testing.T) {
	t.Run("should create valid assignment", func(t *testing.T) {
		actorID := kernel.NewUUID()

		assignment, err := access.NewRoleAssignment(actorID, access.Seller)

		require.NoError(t, err)
		require.NoError(t, assignment.Validate())
		assert.True(t, assignment.ActorID().IsEqual(actorID))
		assert.Equal(t, access.Seller, assignment.Role())
	})

	t.Run("should fail with invalid actor", func(t *testing.T) {
		var invalidID kernel.UUID

		assignment, err := access.NewRoleAssignment(invalidID, access.Seller)

		require.Error(t, err)
		assert.Nil(t, assignment)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		assignment, err := access.NewRoleAssignment(kernel.NewUUID(), access.Unknown)

		require.Error(t, err)
		assert.Nil(t, assignment)
	})
}

func TestRoleAssignment_ChangeRole(t *testing.T) {
	t.Run("should overwrite prior role", func(t *testing.T) {
		assignment, err := access.NewRoleAssignment(kernel.NewUUID(), access.Buyer)
		require.NoError(t, err)

		require.NoError(t, assignment.ChangeRole(access.Validator))

		assert.Equal(t, access.Validator, assignment.Role())
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		assignment, err := access.NewRoleAssignment(kernel.NewUUID(), access.Buyer)
		require.NoError(t, err)

		require.Error(t, assignment.ChangeRole(access.Unknown))
		assert.Equal(t, access.Buyer, assignment.Role())
	})
}

func TestRoleAssignment_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var assignment access.RoleAssignment

		err := assignment.Validate()

		require.Error(t, err)
		assert.Equal(t, access.ErrRoleAssignmentIsNotConstructed, err)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var assignment *access.RoleAssignment

		require.Error(t, assignment.Validate())
	})
}
