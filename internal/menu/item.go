package menu

import "fmt"

type FoodType string

const (
	FoodTypeVeg    FoodType = "Veg"
	FoodTypeNonVeg FoodType = "Non-Veg"
)

// BaseItem is what the model is asked to produce for every menu entry.
type BaseItem struct {
	CategoryName  string   `json:"categoryName"`
	Name          string   `json:"item_name"`
	FoodType      FoodType `json:"item_foodType"`
	OriginalPrice float64  `json:"item_original_price"`
}

// Item is the client-facing record: the model's fields plus values that are
// always filled in by the server, never by the model.
type Item struct {
	BaseItem
	Image           string  `json:"itemImage"`
	Description     string  `json:"item_description"`
	DiscountedPrice float64 `json:"item_discounted_price"`
	OutOfStock      bool    `json:"outofStock"`
	ResID           string  `json:"resId"`
}

const resIDOffset = 100

// ResID is the batch-local identifier of the item at index i: res100, res101, ...
func ResID(i int) string {
	return fmt.Sprintf("res%03d", i+resIDOffset)
}

// Enrich turns model output into complete items. The result is never nil so
// an empty extraction still encodes as [].
func Enrich(base []BaseItem) []Item {
	items := make([]Item, 0, len(base))
	for i, b := range base {
		items = append(items, Item{
			BaseItem:        b,
			Image:           "",
			Description:     "",
			DiscountedPrice: b.OriginalPrice,
			OutOfStock:      false,
			ResID:           ResID(i),
		})
	}
	return items
}
