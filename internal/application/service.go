package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cryptoprices-service/internal/domain"
)

// CurrencyService answers price queries over stored currency records
// and runs the fetch-and-upsert flow that populates them.
type CurrencyService struct {
	repo    CurrencyRepo
	fetcher PriceFetcher
	cache   PriceCache
}

type Option func(*CurrencyService)

func WithCache(c PriceCache) Option { return func(s *CurrencyService) { s.cache = c } }

func NewCurrencyService(repo CurrencyRepo, fetcher PriceFetcher, opts ...Option) *CurrencyService {
	s := &CurrencyService{repo: repo, fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NoopCache{}
	}
	return s
}

// Exists reports whether a record for the pair is stored.
func (s *CurrencyService) Exists(ctx context.Context, base, quote string) (bool, error) {
	return s.repo.ExistsByPair(ctx, base, quote)
}

// MinPrice returns the numerically smallest price of the pair's series.
func (s *CurrencyService) MinPrice(ctx context.Context, base, quote string) (domain.Price, error) {
	cur, err := s.repo.FindByPair(ctx, base, quote)
	if err != nil {
		return domain.Price{}, err
	}
	p, ok, err := domain.MinByValue(cur.Prices)
	if err != nil {
		return domain.Price{}, err
	}
	if !ok {
		return domain.Price{}, fmt.Errorf("%w: %s/%s", ErrEmptyPrices, base, quote)
	}
	return p, nil
}

// MaxPrice returns the numerically largest price of the pair's series.
func (s *CurrencyService) MaxPrice(ctx context.Context, base, quote string) (domain.Price, error) {
	cur, err := s.repo.FindByPair(ctx, base, quote)
	if err != nil {
		return domain.Price{}, err
	}
	p, ok, err := domain.MaxByValue(cur.Prices)
	if err != nil {
		return domain.Price{}, err
	}
	if !ok {
		return domain.Price{}, fmt.Errorf("%w: %s/%s", ErrEmptyPrices, base, quote)
	}
	return p, nil
}

// SortedPrices returns the pair's series sorted ascending by numeric
// value. An empty series yields an empty slice, not an error. Cache
// write failures are ignored; the store remains the source of truth.
func (s *CurrencyService) SortedPrices(ctx context.Context, base, quote string) ([]domain.Price, error) {
	if cached, ok, err := s.cache.GetSorted(ctx, base, quote); err == nil && ok {
		return cached, nil
	}
	cur, err := s.repo.FindByPair(ctx, base, quote)
	if err != nil {
		return nil, err
	}
	sorted, err := domain.SortedByValue(cur.Prices)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetSorted(ctx, base, quote, sorted)
	return sorted, nil
}

// PricePage returns one page of the sorted series, clamped per
// domain.Paginate.
func (s *CurrencyService) PricePage(ctx context.Context, base, quote string, page, size int) ([]domain.Price, error) {
	sorted, err := s.SortedPrices(ctx, base, quote)
	if err != nil {
		return nil, err
	}
	return domain.Paginate(sorted, page, size), nil
}

// FetchAndUpsert retrieves the pair's history from the upstream source
// and stores it, wholesale-replacing any previously stored series. It
// returns the persisted record with its store-assigned identity.
func (s *CurrencyService) FetchAndUpsert(ctx context.Context, base, quote string, w domain.FetchWindow) (domain.Currency, error) {
	prices, err := s.fetcher.Fetch(ctx, base, quote, w)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("%w: %s/%s: %v", ErrFetchFailed, base, quote, err)
	}

	cur, err := s.repo.FindByPair(ctx, base, quote)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return domain.Currency{}, err
		}
		cur = domain.Currency{Base: base, Quote: quote}
	}
	cur.Prices = prices

	saved, err := s.repo.Upsert(ctx, cur)
	if err != nil {
		return domain.Currency{}, err
	}
	_ = s.cache.Invalidate(ctx, base, quote)
	return saved, nil
}

// BuildReport composes one "base/quote,min,max" line per stored record,
// in store iteration order, newline-joined with no trailing newline. A
// record with an empty series fails the whole report rather than being
// skipped.
func (s *CurrencyService) BuildReport(ctx context.Context) (string, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(all))
	for _, cur := range all {
		min, err := s.MinPrice(ctx, cur.Base, cur.Quote)
		if err != nil {
			return "", err
		}
		max, err := s.MaxPrice(ctx, cur.Base, cur.Quote)
		if err != nil {
			return "", err
		}
		lines = append(lines, cur.PairKey()+","+min.Price+","+max.Price)
	}
	return strings.Join(lines, "\n"), nil
}
