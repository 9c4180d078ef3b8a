package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/store"
)

type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// List serves the menu. all=true includes unavailable products.
func (h *ProductHandler) List(c *gin.Context) {
	var q dto.MenuQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !q.All {
		c.JSON(http.StatusOK, toProductList(h.store.Menu(q.Category)))
		return
	}
	var products []model.Product
	for _, p := range h.store.Products() {
		if q.Category == "all" || q.Category == "" || p.Category == q.Category {
			products = append(products, p)
		}
	}
	c.JSON(http.StatusOK, toProductList(products))
}

func (h *ProductHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.store.Categories()})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	p, ok := h.store.Product(c.Param("id"))
	if !ok {
		writeError(c, store.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.store.AddProduct(fromProductRequest(req, model.Product{Available: true}))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *ProductHandler) Update(c *gin.Context) {
	current, ok := h.store.Product(c.Param("id"))
	if !ok {
		writeError(c, store.ErrProductNotFound)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.store.UpdateProduct(fromProductRequest(req, current))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func fromProductRequest(req dto.ProductRequest, base model.Product) model.Product {
	base.Name = req.Name
	base.Description = req.Description
	base.Price = req.Price
	base.Image = req.Image
	base.Category = req.Category
	if req.Available != nil {
		base.Available = *req.Available
	}
	return base
}
