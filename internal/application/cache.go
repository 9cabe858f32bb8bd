package application

import (
	"context"

	"cryptoprices-service/internal/domain"
)

// PriceCache holds sorted price series keyed by pair. Implementations
// may drop entries at any time; a miss is not an error.
type PriceCache interface {
	GetSorted(ctx context.Context, base, quote string) ([]domain.Price, bool, error)
	SetSorted(ctx context.Context, base, quote string, prices []domain.Price) error
	Invalidate(ctx context.Context, base, quote string) error
}

// NoopCache always misses; used when no cache backend is configured.
type NoopCache struct{}

func (NoopCache) GetSorted(context.Context, string, string) ([]domain.Price, bool, error) {
	return nil, false, nil
}
func (NoopCache) SetSorted(context.Context, string, string, []domain.Price) error { return nil }
func (NoopCache) Invalidate(context.Context, string, string) error                { return nil }
