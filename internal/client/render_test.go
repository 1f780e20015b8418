package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuparser/internal/menu"
)

func TestRenderTable(t *testing.T) {
	items := menu.Enrich([]menu.BaseItem{
		{CategoryName: "Indian", Name: "Masala Dosa", FoodType: menu.FoodTypeVeg, OriginalPrice: 120},
		{CategoryName: "Chinese", Name: "Chilli Chicken", FoodType: menu.FoodTypeNonVeg, OriginalPrice: 249.5},
	})
	items[1].OutOfStock = true

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, items))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[0], "STOCK STATUS")

	assert.Contains(t, lines[1], "Masala Dosa")
	assert.Contains(t, lines[1], "₹120")
	assert.Contains(t, lines[1], "In Stock")

	assert.Contains(t, lines[2], "Non-Veg")
	assert.Contains(t, lines[2], "₹249.5")
	assert.Contains(t, lines[2], "Out of Stock")
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
