package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heshima/studio-api/internal/core/ports"
)

// ProductHandler serves the public, read-only catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BasePrice:   p.BasePrice,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		BasePrice:   product.BasePrice,
	})
}
