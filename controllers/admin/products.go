package adminController

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/config"
	"github.com/cowebsLB/mounifull/models"
)

// GET /admin/products
//
// The dashboard reads straight from postgres (no snapshot fallback): an
// admin editing the catalog needs to see exactly what is stored.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

// POST /admin/products
func CreateProduct(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameEn := c.PostForm("name_en")
		priceStr := c.PostForm("price")
		if nameEn == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_en and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			NameEn:        nameEn,
			NameAr:        c.PostForm("name_ar"),
			Description:   c.PostForm("description"),
			DescriptionAr: c.PostForm("description_ar"),
			Price:         price,
			Weight:        c.PostForm("weight"),
			Packaging:     c.DefaultPostForm("packaging", "jar"),
			Category:      c.PostForm("category"),
			Rating:        4.5,
			InStock:       true,
			DateAdded:     time.Now(),
		}

		if ratingStr := c.PostForm("rating"); ratingStr != "" {
			rating, parseErr := strconv.ParseFloat(ratingStr, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
			product.Rating = rating
		}
		if inStockStr := c.PostForm("in_stock"); inStockStr != "" {
			inStock, parseErr := strconv.ParseBool(inStockStr)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid in_stock"})
				return
			}
			product.InStock = inStock
		}

		file, _ := c.FormFile("image")
		product.ImageURL = saveImage(c, file, cfg.UploadDir)

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name_en"); v != "" {
			product.NameEn = v
		}
		if v := c.PostForm("name_ar"); v != "" {
			product.NameAr = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("description_ar"); v != "" {
			product.DescriptionAr = v
		}
		if v := c.PostForm("weight"); v != "" {
			product.Weight = v
		}
		if v := c.PostForm("packaging"); v != "" {
			product.Packaging = v
		}
		if v := c.PostForm("category"); v != "" {
			product.Category = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("rating"); v != "" {
			rating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
			product.Rating = rating
		}
		if v := c.PostForm("in_stock"); v != "" {
			inStock, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid in_stock"})
				return
			}
			product.InStock = inStock
		}
		if file, err := c.FormFile("image"); err == nil {
			product.ImageURL = saveImage(c, file, cfg.UploadDir)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if err := tx.Delete(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit product deletion"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
