package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cowebsLB/mounifull/catalog"
)

// GET /products/:id
func GetProductByID(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		products := loader.FetchAll(c.Request.Context())
		for _, p := range products {
			if uint64(p.ID) == id {
				c.JSON(http.StatusOK, gin.H{
					"product":  p,
					"variants": catalog.VariantsOf(products, p),
				})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	}
}
