package application

import (
	"context"
	"errors"

	"cryptoprices-service/internal/domain"
)

var errRepo = errors.New("repo error")

type fakeCurrencyRepo struct {
	byPair map[string]domain.Currency
	order  []string
	nextID int64
	err    error
}

func newFakeRepo(records ...domain.Currency) *fakeCurrencyRepo {
	r := &fakeCurrencyRepo{byPair: map[string]domain.Currency{}}
	for _, c := range records {
		_, _ = r.Upsert(context.Background(), c)
	}
	return r
}

func (f *fakeCurrencyRepo) FindByPair(_ context.Context, base, quote string) (domain.Currency, error) {
	if f.err != nil {
		return domain.Currency{}, f.err
	}
	c, ok := f.byPair[base+"/"+quote]
	if !ok {
		return domain.Currency{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeCurrencyRepo) ExistsByPair(_ context.Context, base, quote string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byPair[base+"/"+quote]
	return ok, nil
}

func (f *fakeCurrencyRepo) Upsert(_ context.Context, c domain.Currency) (domain.Currency, error) {
	if f.err != nil {
		return domain.Currency{}, f.err
	}
	key := c.Base + "/" + c.Quote
	if existing, ok := f.byPair[key]; ok {
		c.ID = existing.ID
	} else {
		f.nextID++
		c.ID = f.nextID
		f.order = append(f.order, key)
	}
	f.byPair[key] = c
	return c, nil
}

func (f *fakeCurrencyRepo) FindAll(context.Context) ([]domain.Currency, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Currency, 0, len(f.order))
	for _, key := range f.order {
		out = append(out, f.byPair[key])
	}
	return out, nil
}

type fakeFetcher struct {
	prices []domain.Price
	err    error

	calls []domain.FetchWindow
}

func (f *fakeFetcher) Fetch(_ context.Context, _, _ string, w domain.FetchWindow) ([]domain.Price, error) {
	f.calls = append(f.calls, w)
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

type fakeCache struct {
	entries     map[string][]domain.Price
	invalidated []string
	sets        int
	hits        int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string][]domain.Price{}} }

func (f *fakeCache) GetSorted(_ context.Context, base, quote string) ([]domain.Price, bool, error) {
	ps, ok := f.entries[base+"/"+quote]
	if ok {
		f.hits++
	}
	return ps, ok, nil
}

func (f *fakeCache) SetSorted(_ context.Context, base, quote string, prices []domain.Price) error {
	f.sets++
	f.entries[base+"/"+quote] = prices
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, base, quote string) error {
	f.invalidated = append(f.invalidated, base+"/"+quote)
	delete(f.entries, base+"/"+quote)
	return nil
}
