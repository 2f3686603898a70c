package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/search", h.SearchProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.ReplaceProduct)
		products.PATCH("/:id", h.MergeProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.ListProducts())
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, h.useCase.SearchProductsByCategory(category))
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		c.Status(statusForError(err))
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.useCase.CreateProduct(&product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		c.Status(statusForError(err))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) ReplaceProduct(c *gin.Context) {
	id := c.Param("id")

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for replace product ID %s: %v", id, err)
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.useCase.ReplaceProduct(id, &product)
	if err != nil {
		h.log.Warnf("Failed to replace product ID %s: %v", id, err)
		c.Status(statusForError(err))
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) MergeProduct(c *gin.Context) {
	id := c.Param("id")

	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Errorf("Failed to bind JSON for merge product ID %s: %v", id, err)
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.useCase.MergeProduct(id, patch)
	if err != nil {
		h.log.Warnf("Failed to merge product ID %s: %v", id, err)
		c.Status(statusForError(err))
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		c.Status(statusForError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
