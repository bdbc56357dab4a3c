package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heshima/studio-api/internal/core/ports"
)

// inquiryRequest is the payload accepted from the public inquiry form. It is
// deliberately minimal so clients cannot over-post into internal fields.
type inquiryRequest struct {
	ProductID string `json:"productId" validate:"omitempty"`
	Name      string `json:"name"      validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Message   string `json:"message"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type inquiryItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	FinalPrice  decimal.Decimal `json:"finalPrice"`
}

type inquiryResponse struct {
	ID            string                `json:"id"`
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	Notes         string                `json:"notes"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	Items         []inquiryItemResponse `json:"items"`
}

func toInquiryResponse(view *ports.InquiryView) inquiryResponse {
	items := make([]inquiryItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, inquiryItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			FinalPrice:  item.FinalPrice,
		})
	}

	return inquiryResponse{
		ID:            view.ID,
		CustomerName:  view.CustomerName,
		CustomerEmail: view.CustomerEmail,
		Notes:         view.Notes,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
		Items:         items,
	}
}

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}
