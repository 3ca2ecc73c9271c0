package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePermissions(t *testing.T) {
	got := NormalizePermissions([]Permission{"user", "ADMIN", " admin ", "", "USER"})
	assert.Equal(t, Permissions{PermissionAdmin, PermissionUser}, got)
}

func TestPermissions_RoundTripStorageFormat(t *testing.T) {
	ps := Permissions{PermissionAdmin, PermissionItemDelete}
	assert.Equal(t, "ADMIN,ITEMDELETE", ps.String())
	assert.Equal(t, ps, ParsePermissions("ITEMDELETE,ADMIN"))
	assert.Equal(t, Permissions{}, ParsePermissions(""))
}

func TestPermissions_HasAny(t *testing.T) {
	ps := Permissions{PermissionUser, PermissionPermissionUpdate}

	assert.True(t, ps.HasAny(PermissionAdmin, PermissionPermissionUpdate))
	assert.False(t, ps.HasAny(PermissionAdmin))
	assert.False(t, ps.HasAny())
}

func TestPermission_Valid(t *testing.T) {
	assert.True(t, PermissionItemCreate.Valid())
	assert.False(t, Permission("ROOT").Valid())
}

func TestCartTotal_IntegerArithmetic(t *testing.T) {
	lines := []CartLine{
		{Quantity: 2, Item: Item{Price: 2000}},
		{Quantity: 1, Item: Item{Price: 500}},
	}
	assert.Equal(t, int64(4500), CartTotal(lines))
	assert.Equal(t, int64(0), CartTotal(nil))
}

func TestCartTotal_NoRoundingDrift(t *testing.T) {
	lines := make([]CartLine, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, CartLine{Quantity: 3, Item: Item{Price: 33}})
	}
	assert.Equal(t, int64(99000), CartTotal(lines))
}

func TestOrderItemFromLine_CopiesFields(t *testing.T) {
	line := CartLine{
		CartItemID: "ci-1",
		Quantity:   3,
		Item:       Item{ID: "it-1", Title: "Hat", Description: "Wool", Image: "a.jpg", LargeImage: "A.jpg", Price: 1500},
	}

	oi := OrderItemFromLine(line)
	line.Item.Price = 9999
	line.Item.Title = "Renamed"

	assert.Equal(t, OrderItem{
		SourceItemID: "it-1", Title: "Hat", Description: "Wool", Image: "a.jpg", LargeImage: "A.jpg", Price: 1500, Quantity: 3,
	}, oi)
}
