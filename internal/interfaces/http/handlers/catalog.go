// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog  *catalog.Client
	searcher *catalog.Searcher
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogClient *catalog.Client, searcher *catalog.Searcher) *CatalogHandler {
	return &CatalogHandler{catalog: catalogClient, searcher: searcher}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	query := catalog.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	page, err := h.catalog.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    page,
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchProducts handles GET /products/search
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search term is required",
		})
		return
	}

	page, err := h.searcher.Search(c.Request.Context(), term)
	if err != nil {
		respondError(c, err)
		return
	}
	if page == nil {
		// Superseded by a newer search
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    page,
	})
}
