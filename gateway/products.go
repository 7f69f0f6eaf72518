package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avinay/boutique-journey/models"
)

// SortOption enumerates the catalog orderings the store API supports.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortDate       SortOption = "date"
	SortPriceAsc   SortOption = "price_low"
	SortPriceDesc  SortOption = "price_high"
)

// ProductQuery is the typed filter set for ListProducts. Zero values mean
// "let the server default".
type ProductQuery struct {
	PerPage  int
	Sort     SortOption
	Category int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	switch q.Sort {
	case SortPriceAsc:
		v.Set("orderby", "price")
		v.Set("order", "asc")
	case SortPriceDesc:
		v.Set("orderby", "price")
		v.Set("order", "desc")
	case SortDate:
		v.Set("orderby", "date")
	case SortPopularity:
		v.Set("orderby", "popularity")
	}
	if q.Category > 0 {
		v.Set("category", strconv.Itoa(q.Category))
	}
	return v
}

// GET /products
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", q.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GET /products/:id
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GET /products/categories
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
