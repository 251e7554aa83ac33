package flow

import (
	"time"

	"github.com/tondeal/offer-flow-svc/internal/marketplace"
)

// DisplayOffer is the fully-populated view of an offer. Every field has a
// value even when the source record is partial or malformed.
type DisplayOffer struct {
	Title     string
	BudgetTON float64
	Status    string
	CreatedAt string
}

// Project derives the display view of an offer. It is total: absence and
// malformed values become defaults, never errors.
func Project(o *marketplace.Offer) DisplayOffer {
	d := DisplayOffer{
		Title:     "Offer",
		Status:    "open",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if o == nil {
		return d
	}

	if o.Title != "" {
		d.Title = o.Title
	}
	if budget, err := o.BudgetTON.Float64(); err == nil {
		d.BudgetTON = budget
	}
	if o.Status != "" {
		d.Status = o.Status
	}
	if o.CreatedAt != "" {
		d.CreatedAt = o.CreatedAt
	}

	return d
}
