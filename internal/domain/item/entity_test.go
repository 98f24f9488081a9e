//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		itm, err := item.NewItem(ownerID, "cordless drill", "18V with two batteries", true)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, itm.ID())
		assert.Equal(t, ownerID, itm.OwnerID())
		assert.True(t, itm.Available())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		itm, err := item.NewItem(ownerID, "  drill  ", "desc", true)
		require.NoError(t, err)
		assert.Equal(t, "drill", itm.Name())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := item.NewItem(ownerID, "   ", "desc", true)
		assert.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := item.NewItem(ownerID, "drill", "", true)
		assert.ErrorIs(t, err, item.ErrEmptyDescription)
	})
}

func TestItemApplyPatch(t *testing.T) {
	ownerID := uuid.New()

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		itm, err := item.NewItem(ownerID, "drill", "old description", true)
		require.NoError(t, err)

		require.NoError(t, itm.ApplyPatch(nil, strPtr("new description"), boolPtr(false)))
		assert.Equal(t, "drill", itm.Name())
		assert.Equal(t, "new description", itm.Description())
		assert.False(t, itm.Available())
	})

	t.Run("patching to an empty name fails", func(t *testing.T) {
		itm, err := item.NewItem(ownerID, "drill", "desc", true)
		require.NoError(t, err)

		assert.ErrorIs(t, itm.ApplyPatch(strPtr(" "), nil, nil), item.ErrEmptyName)
	})
}

func TestItemLinkRequest(t *testing.T) {
	itm, err := item.NewItem(uuid.New(), "drill", "desc", true)
	require.NoError(t, err)
	assert.Nil(t, itm.RequestID())

	requestID := uuid.New()
	itm.LinkRequest(requestID)
	require.NotNil(t, itm.RequestID())
	assert.Equal(t, requestID, *itm.RequestID())
}

func TestItemIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	itm, err := item.NewItem(ownerID, "drill", "desc", true)
	require.NoError(t, err)

	assert.True(t, itm.IsOwnedBy(ownerID))
	assert.False(t, itm.IsOwnedBy(uuid.New()))
}
