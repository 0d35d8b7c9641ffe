package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cowebsLB/mounifull/catalog"
)

// GET /products
//
// The whole catalog is loaded and the filter/sort/group engine runs
// in-process over it, so the visible list is the same whether the rows
// came from postgres or the bundled snapshot.
func GetProducts(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := language(c)

		filters, err := parseFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sortKey := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortNameAsc)))

		products := loader.FetchAll(c.Request.Context())
		visible := catalog.Apply(products, filters, lang)
		catalog.Sort(visible, sortKey, lang)

		if c.Query("grouped") == "true" {
			groups := catalog.GroupVariants(visible)
			c.JSON(http.StatusOK, gin.H{"groups": groups, "count": len(groups)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": visible, "count": len(visible)})
	}
}

// GET /categories returns the distinct category tags in catalog order.
func GetCategories(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := loader.FetchAll(c.Request.Context())

		seen := make(map[string]bool)
		categories := []string{}
		for _, p := range products {
			if p.Category != "" && !seen[p.Category] {
				seen[p.Category] = true
				categories = append(categories, p.Category)
			}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func language(c *gin.Context) string {
	if c.Query("lang") == "ar" {
		return "ar"
	}
	return "en"
}

type badParamError struct{ param string }

func (e badParamError) Error() string { return "Invalid " + e.param }

func parseFilters(c *gin.Context) (catalog.Filters, error) {
	f := catalog.Filters{
		Search:       c.Query("search"),
		Categories:   c.QueryArray("category"),
		Availability: catalog.Availability(c.DefaultQuery("availability", string(catalog.AvailabilityAll))),
	}

	if v := c.Query("min_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, badParamError{"min_price"}
		}
		f.PriceMin = &mp
	}
	if v := c.Query("max_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, badParamError{"max_price"}
		}
		f.PriceMax = &mp
	}
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, badParamError{"date_from"}
		}
		f.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, badParamError{"date_to"}
		}
		f.DateTo = &t
	}
	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return f, badParamError{"min_rating"}
		}
		f.MinRating = r
	}
	return f, nil
}
