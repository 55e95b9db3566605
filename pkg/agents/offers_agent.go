package agents

import (
	"context"
	"encoding/json"
	"fmt"
)

// OfferRecord is one current promotional offer.
type OfferRecord struct {
	ProductName       string `json:"product_name"`
	PromoInterestRate string `json:"promo_interest_rate"`
	SignupBonus       string `json:"signup_bonus"`
	ValidTill         string `json:"valid_till"`
}

// OfferLister reads the current promotional offers. The lookup goes
// straight to the record store, never back through the service's own
// HTTP surface.
type OfferLister interface {
	ListActive(ctx context.Context) ([]OfferRecord, error)
}

// OffersAgent is the categorical "list current offers" lookup. It
// takes no query.
type OffersAgent struct {
	lister OfferLister
}

func NewOffersAgent(lister OfferLister) *OffersAgent {
	return &OffersAgent{lister: lister}
}

func (a *OffersAgent) Run(ctx context.Context) (string, error) {
	offers, err := a.lister.ListActive(ctx)
	if err != nil {
		return "", fmt.Errorf("offers lookup failed: %w", err)
	}
	if len(offers) == 0 {
		return "No promotional offers are currently active.", nil
	}

	payload, err := json.Marshal(offers)
	if err != nil {
		return "", fmt.Errorf("offers encoding failed: %w", err)
	}
	return string(payload), nil
}
