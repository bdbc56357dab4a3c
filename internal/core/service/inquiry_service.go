package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/heshima/studio-api/internal/api/metrics"
	"github.com/heshima/studio-api/internal/core/domain"
	"github.com/heshima/studio-api/internal/core/ports"
)

// InquiryService implements the inquiry aggregate workflow: public
// submission, and the admin list/get/delete operations.
type InquiryService struct {
	inquiries ports.InquiryRepository
	products  ports.ProductRepository
	logger    zerolog.Logger
}

func NewInquiryService(inquiries ports.InquiryRepository, products ports.ProductRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{inquiries: inquiries, products: products, logger: logger}
}

// Submit creates an inquiry from the public form. A submission without a
// product id is a general inquiry and always succeeds with an empty item
// list. A submission with a product id resolves the product first, so a bad
// reference fails before anything is persisted.
func (s *InquiryService) Submit(ctx context.Context, input ports.SubmitInquiryInput) (*ports.InquiryView, error) {
	inquiry := &domain.Inquiry{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Notes:         input.Notes,
		Status:        domain.StatusNew,
		CreatedAt:     time.Now().UTC(),
		Items:         []domain.LineItem{},
	}

	kind := "general"
	if input.ProductID != "" {
		product, err := s.products.FindByID(ctx, input.ProductID)
		if err != nil {
			return nil, fmt.Errorf("submit inquiry: %w", err)
		}

		// Snapshot name and price now; later catalog edits must not
		// change what this inquiry shows.
		inquiry.Items = append(inquiry.Items, domain.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    1,
			FinalPrice:  product.BasePrice,
		})
		kind = "product"
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		s.logger.Error().Err(err).Msg("failed to create inquiry")
		return nil, fmt.Errorf("submit inquiry: %w", err)
	}

	metrics.InquiriesSubmittedTotal.WithLabelValues(kind).Inc()
	s.logger.Info().
		Str("inquiry_id", inquiry.ID).
		Str("customer_email", inquiry.CustomerEmail).
		Str("kind", kind).
		Msg("inquiry created")

	return toView(inquiry), nil
}

// ListAll returns every inquiry for the admin dashboard, newest first.
func (s *InquiryService) ListAll(ctx context.Context) ([]ports.InquiryView, error) {
	inquiries, err := s.inquiries.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	views := make([]ports.InquiryView, 0, len(inquiries))
	for _, inquiry := range inquiries {
		views = append(views, *toView(inquiry))
	}
	return views, nil
}

// GetByID returns a single inquiry or domain.ErrInquiryNotFound.
func (s *InquiryService) GetByID(ctx context.Context, id string) (*ports.InquiryView, error) {
	inquiry, err := s.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return toView(inquiry), nil
}

// DeleteByID removes an inquiry together with every line item it owns.
func (s *InquiryService) DeleteByID(ctx context.Context, id string) error {
	if err := s.inquiries.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}

	metrics.InquiriesDeletedTotal.Inc()
	s.logger.Info().Str("inquiry_id", id).Msg("inquiry deleted")
	return nil
}

// toView projects the stored aggregate into the read model handed to the
// transport layer. The aggregate itself is never serialized.
func toView(inquiry *domain.Inquiry) *ports.InquiryView {
	items := make([]ports.InquiryItemView, 0, len(inquiry.Items))
	for _, item := range inquiry.Items {
		items = append(items, ports.InquiryItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			FinalPrice:  item.FinalPrice,
		})
	}

	return &ports.InquiryView{
		ID:            inquiry.ID,
		CustomerName:  inquiry.CustomerName,
		CustomerEmail: inquiry.CustomerEmail,
		Notes:         inquiry.Notes,
		Status:        string(inquiry.Status),
		CreatedAt:     inquiry.CreatedAt,
		Items:         items,
	}
}
