package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SubmitInquiryInput carries the fields collected from the public inquiry
// form. ProductID is optional: empty means a general inquiry with no
// selected offering.
type SubmitInquiryInput struct {
	ProductID     string
	CustomerName  string
	CustomerEmail string
	Notes         string
}

// InquiryItemView is the projection of a single line item, with the product
// name and price resolved at submission time.
type InquiryItemView struct {
	ProductID   string
	ProductName string
	Quantity    int
	FinalPrice  decimal.Decimal
}

// InquiryView is the read model returned by the service. Handlers project it
// into the JSON response shape; the stored aggregate is never serialized
// directly.
type InquiryView struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Notes         string
	Status        string
	CreatedAt     time.Time
	Items         []InquiryItemView
}

// InquiryService defines the use-case operations on the inquiry aggregate.
type InquiryService interface {
	// Submit creates an inquiry. With a product id it attaches exactly one
	// line item (quantity 1, price snapshot of the product's base price);
	// an unknown product id fails with domain.ErrProductNotFound and
	// nothing is persisted. Without a product id the inquiry is created
	// with an empty item list.
	Submit(ctx context.Context, input SubmitInquiryInput) (*InquiryView, error)

	// ListAll returns every inquiry, most recently created first.
	ListAll(ctx context.Context) ([]InquiryView, error)

	// GetByID returns one inquiry or domain.ErrInquiryNotFound.
	GetByID(ctx context.Context, id string) (*InquiryView, error)

	// DeleteByID removes an inquiry and all of its line items, or fails
	// with domain.ErrInquiryNotFound.
	DeleteByID(ctx context.Context, id string) error
}
