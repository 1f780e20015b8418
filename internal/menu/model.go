package menu

import "menuparser/internal/llm"

// Upload is one uploaded menu photo, held in memory for a single request.
type Upload struct {
	Filename string
	MIMEType string
	Data     []byte
}

// ItemSchema is the structured-output schema sent to the model. Only the
// four fields the model can read off a menu photo are requested.
func ItemSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeArray,
		Items: &llm.Schema{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Schema{
				"categoryName": {
					Type:        llm.TypeString,
					Description: "Category of the menu item",
				},
				"item_name": {
					Type:        llm.TypeString,
					Description: "Name of the menu item",
				},
				"item_foodType": {
					Type:        llm.TypeString,
					Description: "Type of food (Veg/Non-Veg)",
					Enum:        []string{string(FoodTypeVeg), string(FoodTypeNonVeg)},
				},
				"item_original_price": {
					Type:        llm.TypeNumber,
					Description: "Price of the item",
				},
			},
			Required: []string{"categoryName", "item_name", "item_original_price", "item_foodType"},
			PropertyOrdering: []string{
				"categoryName",
				"item_name",
				"item_foodType",
				"item_original_price",
			},
		},
	}
}
