package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heshima/studio-api/internal/core/ports"
)

// InquiryHandler handles HTTP requests for the inquiry workflow. Submission
// is public; list, get, and delete are admin-only (enforced by the
// authorization gate before the handler runs).
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Create handles POST /api/inquiries.
//
// @Summary      Submit a new inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      inquiryRequest  true  "Inquiry details"
// @Success      201   {object}  inquiryResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Submit(c.Request().Context(), ports.SubmitInquiryInput{
		ProductID:     req.ProductID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Notes:         req.Message,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/inquiries/"+view.ID)
	return c.JSON(http.StatusCreated, toInquiryResponse(view))
}

// List handles GET /api/inquiries.
//
// @Summary      List all inquiries (admin)
// @Tags         inquiries
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   inquiryResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]inquiryResponse, 0, len(views))
	for i := range views {
		resp = append(resp, toInquiryResponse(&views[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/inquiries/:id.
//
// @Summary      Get one inquiry (admin)
// @Tags         inquiries
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  inquiryResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	view, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInquiryResponse(view))
}

// Delete handles DELETE /api/inquiries/:id.
//
// @Summary      Delete an inquiry (admin)
// @Tags         inquiries
// @Security     BasicAuth
// @Param        id  path  string  true  "Inquiry id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
