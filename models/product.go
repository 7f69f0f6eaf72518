package models

import "github.com/shopspring/decimal"

// StockStatus mirrors the store API's stock_status values.
type StockStatus string

const (
	StockInStock     StockStatus = "instock"
	StockOutOfStock  StockStatus = "outofstock"
	StockOnBackorder StockStatus = "onbackorder"
)

// Product is a catalog item as the store API returns it. All money fields are
// decimal strings; the store owns them and the client never recomputes prices.
type Product struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	Permalink        string             `json:"permalink"`
	DateCreated      string             `json:"date_created"`
	Price            string             `json:"price"`
	RegularPrice     string             `json:"regular_price"`
	SalePrice        string             `json:"sale_price"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Categories       []Category         `json:"categories"`
	Images           []ProductImage     `json:"images"`
	Attributes       []ProductAttribute `json:"attributes"`
	Variations       []int              `json:"variations"`
	StockStatus      StockStatus        `json:"stock_status"`
	AverageRating    string             `json:"average_rating"`
}

type ProductImage struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type ProductAttribute struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

func (p Product) InStock() bool {
	return p.StockStatus == StockInStock
}

// OnSale reports whether the sale price undercuts the regular price.
// Comparison is done on decimals, not on the raw strings.
func (p Product) OnSale() bool {
	if p.SalePrice == "" || p.RegularPrice == "" {
		return false
	}
	sale, err := decimal.NewFromString(p.SalePrice)
	if err != nil {
		return false
	}
	regular, err := decimal.NewFromString(p.RegularPrice)
	if err != nil {
		return false
	}
	return sale.LessThan(regular)
}

// MainImage returns the first image, the one the catalog grid shows.
func (p Product) MainImage() ProductImage {
	if len(p.Images) == 0 {
		return ProductImage{}
	}
	return p.Images[0]
}
