package llm

// BuildMenuPrompt is the fixed instruction sent alongside every menu photo.
func BuildMenuPrompt() string {
	return `
Analyze this menu image and extract menu items.
For each item, provide only:
- categoryName (e.g., "Indian", "Chinese", "Italian" etc.)
- item_name
- item_foodType (must be either "Veg" or "Non-Veg")
- item_original_price (as a number)
For items with multiple variants, create a new item for each variant.
`
}
