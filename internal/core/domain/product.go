package domain

import "github.com/shopspring/decimal"

// Product is a studio offering that clients can select on the services page.
// Products are seeded at startup and read-only afterwards; Active allows an
// offering to be hidden without deleting it.
type Product struct {
	ID          string
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Active      bool
}
