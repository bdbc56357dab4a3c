package ports

import (
	"context"

	"github.com/heshima/studio-api/internal/core/domain"
)

// InquiryRepository defines persistence operations for the inquiry aggregate.
// An inquiry and its line items are written and removed as one unit: a
// concurrent reader never observes a partially-populated item set, and
// deletion never leaves an orphaned item behind.
type InquiryRepository interface {
	// Create persists the aggregate and fills in the generated IDs.
	Create(ctx context.Context, inquiry *domain.Inquiry) error

	// FindAll returns every inquiry with items populated, newest first.
	FindAll(ctx context.Context) ([]*domain.Inquiry, error)

	// FindByID returns the aggregate or domain.ErrInquiryNotFound.
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)

	// DeleteByID removes the aggregate including every owned line item,
	// or returns domain.ErrInquiryNotFound for an unknown id.
	DeleteByID(ctx context.Context, id string) error
}
