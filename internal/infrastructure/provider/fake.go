package provider

import (
	"context"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"
)

// Ensure Fake implements application.PriceFetcher.
var _ application.PriceFetcher = (*Fake)(nil)

// Fake serves a fixed price series for any pair; used for local runs
// without upstream access.
type Fake struct {
	prices []domain.Price
}

func NewFake(prices []domain.Price) *Fake { return &Fake{prices: prices} }

func (f *Fake) Fetch(_ context.Context, _, _ string, w domain.FetchWindow) ([]domain.Price, error) {
	out := f.prices
	if w.MaxCount > 0 && len(out) > w.MaxCount {
		out = out[:w.MaxCount]
	}
	ps := make([]domain.Price, len(out))
	copy(ps, out)
	return ps, nil
}
