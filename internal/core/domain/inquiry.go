package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// InquiryStatus represents the review state of an inquiry.
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "NEW"
	StatusInProgress InquiryStatus = "IN_PROGRESS"
	StatusDone       InquiryStatus = "DONE"
)

var ErrProductNotFound = errors.New("referenced product does not exist")
var ErrInquiryNotFound = errors.New("inquiry does not exist")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// LineItem is a single product reference attached to an inquiry. Product name
// and final price are captured at submission time; the final price never
// changes even if the product's base price does.
type LineItem struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	FinalPrice  decimal.Decimal
}

// Inquiry is the aggregate root: a customer-submitted service request,
// optionally tied to one catalog product. An inquiry with no items is a
// "general inquiry" and is a perfectly valid state, not an error.
//
// Line items are exclusively owned: they are embedded in the inquiry document
// and can never outlive or be shared across inquiries.
type Inquiry struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Notes         string
	Status        InquiryStatus
	CreatedAt     time.Time
	Items         []LineItem
}
