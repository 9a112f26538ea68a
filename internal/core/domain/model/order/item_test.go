package order_test

import (
	"testing"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validMenuItemID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := order.NewItem(validID, validMenuItemID, 2, "no onions", money(t, "5"))

		require.NoError(t, err)
		assert.NotNil(t, item)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.MenuItemID().IsEqual(validMenuItemID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "no onions", item.Notes())
		assert.True(t, item.UnitPrice().IsEqual(money(t, "5")))
		assert.Equal(t, order.ItemPending, item.Status())
	})

	t.Run("should allow empty notes", func(t *testing.T) {
		item, err := order.NewItem(validID, validMenuItemID, 1, "", money(t, "10"))

		require.NoError(t, err)
		assert.Empty(t, item.Notes())
	})

	t.Run("should fail with invalid item id", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, validMenuItemID, 1, "", money(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid menu item id", func(t *testing.T) {
		var invalidMenuItemID kernel.UUID

		item, err := order.NewItem(validID, invalidMenuItemID, 1, "", money(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "menu item id is invalid")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewItem(validID, validMenuItemID, 0, "", money(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewItem(validID, validMenuItemID, -3, "", money(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidMenuItemID kernel.UUID

		item, err := order.NewItem(invalidID, invalidMenuItemID, -1, "", money(t, "10"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "menu item id is invalid")
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with persisted status", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 1, "extra hot", money(t, "4.50"), order.ItemPreparing,
		)

		require.NoError(t, err)
		assert.Equal(t, order.ItemPreparing, item.Status())
		assert.Equal(t, "extra hot", item.Notes())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 1, "", money(t, "4.50"), order.ItemStatusUnknown,
		)

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail validation for nil item", func(t *testing.T) {
		var item *order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		item := &order.Item{}

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestItem_LineTotal(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, "", money(t, "4.25"))

		require.NoError(t, err)
		assert.True(t, item.LineTotal().IsEqual(money(t, "12.75")))
	})
}

func TestItem_IsEqual(t *testing.T) {
	t.Run("should compare by identity", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := order.NewItem(id, kernel.NewUUID(), 1, "", money(t, "1"))
		require.NoError(t, err)
		second, err := order.NewItem(id, kernel.NewUUID(), 5, "other", money(t, "9"))
		require.NoError(t, err)
		third, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, "", money(t, "1"))
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
		assert.False(t, first.IsEqual(nil))
	})
}
