package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/models"
)

// GET /admin/products/export
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
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
			"ID", "NameEn", "NameAr", "Description", "DescriptionAr",
			"Price", "Weight", "Packaging", "Category", "Rating",
			"InStock", "ImageURL", "DateAdded", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.NameEn)
			row.AddCell().SetValue(p.NameAr)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.DescriptionAr)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Weight)
			row.AddCell().SetValue(p.Packaging)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.ListedAt().Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
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
