package gateway

import "github.com/avinay/boutique-journey/models"

// Demo catalog shown only when demo fallback is enabled and a catalog read
// fails. It is non-authoritative placeholder content; views rendering it must
// mark it as demo data.

func DemoProducts() []models.Product {
	return []models.Product{
		{
			ID:               9001,
			Name:             "Sample Ceramic Mug",
			Slug:             "sample-ceramic-mug",
			Price:            "12.50",
			RegularPrice:     "12.50",
			ShortDescription: "Placeholder product shown while the store is unreachable.",
			StockStatus:      models.StockInStock,
			AverageRating:    "4.5",
		},
		{
			ID:               9002,
			Name:             "Sample Canvas Tote",
			Slug:             "sample-canvas-tote",
			Price:            "18.00",
			RegularPrice:     "24.00",
			SalePrice:        "18.00",
			ShortDescription: "Placeholder product shown while the store is unreachable.",
			StockStatus:      models.StockInStock,
			AverageRating:    "4.0",
		},
		{
			ID:               9003,
			Name:             "Sample Notebook",
			Slug:             "sample-notebook",
			Price:            "6.75",
			RegularPrice:     "6.75",
			ShortDescription: "Placeholder product shown while the store is unreachable.",
			StockStatus:      models.StockOutOfStock,
			AverageRating:    "3.5",
		},
	}
}

func DemoCategories() []models.Category {
	return []models.Category{
		{ID: 9101, Name: "Kitchen", Slug: "kitchen", Count: 1},
		{ID: 9102, Name: "Accessories", Slug: "accessories", Count: 1},
		{ID: 9103, Name: "Stationery", Slug: "stationery", Count: 1},
	}
}
