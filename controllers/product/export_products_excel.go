package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/avinay/boutique-journey/gateway"
)

// GET /export/products.xlsx downloads the current catalog as a spreadsheet.
func ExportProductsToExcel(api *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := api.ListProducts(c.Request.Context(), gateway.ProductQuery{PerPage: 100})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Slug", "Price", "RegularPrice", "SalePrice",
			"StockStatus", "Categories", "AverageRating", "DateCreated",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.RegularPrice)
			row.AddCell().SetValue(p.SalePrice)
			row.AddCell().SetValue(string(p.StockStatus))

			var catNames []string
			for _, cat := range p.Categories {
				catNames = append(catNames, cat.Name)
			}
			row.AddCell().SetValue(strings.Join(catNames, ","))

			row.AddCell().SetValue(p.AverageRating)
			row.AddCell().SetValue(p.DateCreated)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
