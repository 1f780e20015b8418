package client

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"menuparser/internal/menu"
)

// RenderTable writes the items as an aligned text table with the same
// columns as the browser UI.
func RenderTable(w io.Writer, items []menu.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tCATEGORY\tTYPE\tORIGINAL PRICE\tDISCOUNTED PRICE\tSTOCK STATUS")
	for _, item := range items {
		stock := "In Stock"
		if item.OutOfStock {
			stock = "Out of Stock"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t₹%s\t₹%s\t%s\n",
			item.Name,
			item.CategoryName,
			item.FoodType,
			formatPrice(item.OriginalPrice),
			formatPrice(item.DiscountedPrice),
			stock,
		)
	}

	return tw.Flush()
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
