package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func americano() Menu {
	return Menu{ID: 1, Name: "아메리카노", Price: 4000, TemperatureOption: TempBoth}
}

func TestCartAddMergesMatchingEntries(t *testing.T) {
	menu := americano()

	var cart Cart
	cart = cart.Add(menu, 2, TempIce, "")
	cart = cart.Add(menu, 3, TempIce, "")

	assert.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 20000, cart[0].Subtotal)
	assert.Equal(t, 20000, cart.Total())
}

func TestCartAddDifferentTupleAppends(t *testing.T) {
	menu := americano()

	var cart Cart
	cart = cart.Add(menu, 1, TempIce, "")
	cart = cart.Add(menu, 1, TempHot, "")
	cart = cart.Add(menu, 1, TempHot, "extra shot")

	assert.Len(t, cart, 3)
	assert.Equal(t, 12000, cart.Total())
}

func TestCartUpdateQuantity(t *testing.T) {
	menu := americano()

	var cart Cart
	cart = cart.Add(menu, 2, TempIce, "")

	cart, ok := cart.UpdateQuantity(0, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 20000, cart[0].Subtotal)

	// non-positive quantity removes the entry
	cart, ok = cart.UpdateQuantity(0, 0)
	assert.True(t, ok)
	assert.Empty(t, cart)
}

func TestCartUpdateQuantityOutOfRange(t *testing.T) {
	var cart Cart
	cart = cart.Add(americano(), 1, TempIce, "")

	_, ok := cart.UpdateQuantity(3, 2)
	assert.False(t, ok)
	_, ok = cart.UpdateQuantity(-1, 2)
	assert.False(t, ok)
}

func TestCartRemoveShiftsIndices(t *testing.T) {
	menu := americano()
	latte := Menu{ID: 2, Name: "카페라떼", Price: 4500}

	var cart Cart
	cart = cart.Add(menu, 1, TempIce, "")
	cart = cart.Add(latte, 1, TempHot, "")

	cart, ok := cart.Remove(0)
	assert.True(t, ok)
	assert.Len(t, cart, 1)
	assert.Equal(t, latte.ID, cart[0].MenuID)
}

func TestIsValidTemperatureOption(t *testing.T) {
	for _, opt := range []string{TempHot, TempIce, TempBoth, TempNone} {
		assert.True(t, IsValidTemperatureOption(opt))
	}
	assert.False(t, IsValidTemperatureOption("lukewarm"))
	assert.False(t, IsValidTemperatureOption(""))
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusPreparing, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidOrderStatus(s))
	}
	assert.False(t, IsValidOrderStatus("bogus"))
}
