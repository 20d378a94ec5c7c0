package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shophub/models"
	"shophub/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List returns the catalog, filterable by ?category= or ?featured=.
func (pc *ProductController) List(c *gin.Context) {
	var category *string
	var featured *bool

	if v, ok := c.GetQuery("category"); ok {
		category = &v
	}
	if v, ok := c.GetQuery("featured"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured flag"})
			return
		}
		featured = &parsed
	}

	products, appErr := pc.products.List(c.Request.Context(), category, featured)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get returns one product by id.
func (pc *ProductController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	product, appErr := pc.products.Get(c.Request.Context(), id)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Categories returns the distinct category labels.
func (pc *ProductController) Categories(c *gin.Context) {
	categories, appErr := pc.products.Categories(c.Request.Context())
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Create adds a product to the catalog. Admin only.
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, appErr := pc.products.Create(c.Request.Context(), req)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// Seed loads the sample catalog. Admin only; no-op when products exist.
func (pc *ProductController) Seed(c *gin.Context) {
	message, appErr := pc.products.Seed(c.Request.Context())
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
