package productcontroller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinay/boutique-journey/config"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/models"
	"github.com/avinay/boutique-journey/routes"
	"github.com/avinay/boutique-journey/store"
)

// newCatalogRouter serves the catalog pages against a fake store API whose
// /products and /products/categories endpoints fail independently.
func newCatalogRouter(t *testing.T, productsOK, categoriesOK bool, demoFallback bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			if !productsOK {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode([]models.Product{
				{ID: 1, Name: "Linen Shirt", Price: "39.00", RegularPrice: "39.00", StockStatus: models.StockInStock},
			})
		case "/products/categories":
			if !categoriesOK {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode([]models.Category{
				{ID: 7, Name: "Shirts", Slug: "shirts", Count: 1},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(backend.Close)

	tokens := store.NewMemTokenStore()
	api := gateway.New(gateway.Config{BaseURL: backend.URL}, tokens, zerolog.Nop())
	auth := store.NewAuthStore(api, tokens, zerolog.Nop())
	carts := store.NewCartStore(api, zerolog.Nop())

	r := gin.New()
	r.SetFuncMap(map[string]any{
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
	})
	r.LoadHTMLGlob("../../templates/*.tmpl")
	routes.SetupCatalogRoutes(r, api, auth, carts, config.Config{DemoFallback: demoFallback})
	return r
}

func getPage(t *testing.T, r *gin.Engine, path string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestShopPageLiveDataHasNoDemoBanner(t *testing.T) {
	r := newCatalogRouter(t, true, true, true)
	body := getPage(t, r, "/shop")

	assert.Contains(t, body, "Linen Shirt")
	assert.Contains(t, body, "Shirts")
	assert.NotContains(t, body, "Showing demo content")
}

func TestShopPageMarksDemoCategoriesWhenOnlyCategoriesFail(t *testing.T) {
	r := newCatalogRouter(t, true, false, true)
	body := getPage(t, r, "/shop")

	// Live products, placeholder categories. The page must still carry the
	// demo marker so the substituted categories are not mistaken for live data.
	assert.Contains(t, body, "Linen Shirt")
	assert.Contains(t, body, "Kitchen")
	assert.Contains(t, body, "Showing demo content")
}

func TestShopPageMarksDemoProductsWhenProductsFail(t *testing.T) {
	r := newCatalogRouter(t, false, true, true)
	body := getPage(t, r, "/shop")

	assert.Contains(t, body, "Sample Ceramic Mug")
	assert.Contains(t, body, "Showing demo content")
}

func TestShopPageWithoutFallbackShowsErrorNotDemo(t *testing.T) {
	r := newCatalogRouter(t, false, false, false)
	body := getPage(t, r, "/shop")

	assert.NotContains(t, body, "Sample Ceramic Mug")
	assert.NotContains(t, body, "Showing demo content")
}

func TestHomePageMarksDemoCategoriesWhenOnlyCategoriesFail(t *testing.T) {
	r := newCatalogRouter(t, true, false, true)
	body := getPage(t, r, "/")

	assert.Contains(t, body, "Kitchen")
	assert.Contains(t, body, "Showing demo content")
}
