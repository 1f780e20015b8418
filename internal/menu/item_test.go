package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResID(t *testing.T) {
	assert.Equal(t, "res100", ResID(0))
	assert.Equal(t, "res101", ResID(1))
	assert.Equal(t, "res999", ResID(899))
	assert.Equal(t, "res1000", ResID(900))
}

func TestEnrich(t *testing.T) {
	base := []BaseItem{
		{CategoryName: "Indian", Name: "Paneer Tikka", FoodType: FoodTypeVeg, OriginalPrice: 240},
		{CategoryName: "Indian", Name: "Chicken Tikka", FoodType: FoodTypeNonVeg, OriginalPrice: 320.5},
		{CategoryName: "Drinks", Name: "Lassi", FoodType: FoodTypeVeg, OriginalPrice: 0},
	}

	items := Enrich(base)
	require.Len(t, items, len(base))

	seen := map[string]bool{}
	for i, item := range items {
		assert.Equal(t, base[i], item.BaseItem)
		assert.Equal(t, item.OriginalPrice, item.DiscountedPrice)
		assert.False(t, item.OutOfStock)
		assert.Empty(t, item.Image)
		assert.Empty(t, item.Description)
		assert.Equal(t, ResID(i), item.ResID)
		assert.False(t, seen[item.ResID], "duplicate resId %s", item.ResID)
		seen[item.ResID] = true
	}
}

func TestEnrich_EmptyEncodesAsArray(t *testing.T) {
	raw, err := json.Marshal(Enrich(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestItem_JSONFields(t *testing.T) {
	raw, err := json.Marshal(Enrich([]BaseItem{
		{CategoryName: "Chinese", Name: "Veg Noodles", FoodType: FoodTypeVeg, OriginalPrice: 180},
	})[0])
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"categoryName": "Chinese",
		"item_name": "Veg Noodles",
		"item_foodType": "Veg",
		"item_original_price": 180,
		"itemImage": "",
		"item_description": "",
		"item_discounted_price": 180,
		"outofStock": false,
		"resId": "res100"
	}`, string(raw))
}
