package application

import (
	"context"

	"cryptoprices-service/internal/domain"
)

// CurrencyRepo is the persistent store of currency records. The
// (base, quote) pair is unique; Upsert inserts or replaces by that key.
type CurrencyRepo interface {
	FindByPair(ctx context.Context, base, quote string) (domain.Currency, error)
	ExistsByPair(ctx context.Context, base, quote string) (bool, error)
	Upsert(ctx context.Context, c domain.Currency) (domain.Currency, error)
	FindAll(ctx context.Context) ([]domain.Currency, error)
}

// PriceFetcher retrieves a price history for a pair from the upstream
// source, bounded by the fetch window.
type PriceFetcher interface {
	Fetch(ctx context.Context, base, quote string, w domain.FetchWindow) ([]domain.Price, error)
}
