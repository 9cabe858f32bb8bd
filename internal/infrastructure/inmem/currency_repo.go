package inmem

import (
	"context"
	"sync"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"
)

// CurrencyRepo is a map-backed store for local runs and tests. FindAll
// iterates in insertion order.
type CurrencyRepo struct {
	mu     sync.RWMutex
	byPair map[string]domain.Currency
	order  []string
	nextID int64
}

var _ application.CurrencyRepo = (*CurrencyRepo)(nil)

func NewCurrencyRepo() *CurrencyRepo {
	return &CurrencyRepo{byPair: map[string]domain.Currency{}}
}

func key(base, quote string) string { return base + "/" + quote }

func (r *CurrencyRepo) FindByPair(_ context.Context, base, quote string) (domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byPair[key(base, quote)]
	if !ok {
		return domain.Currency{}, application.ErrNotFound
	}
	return copyCurrency(c), nil
}

func (r *CurrencyRepo) ExistsByPair(_ context.Context, base, quote string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byPair[key(base, quote)]
	return ok, nil
}

func (r *CurrencyRepo) Upsert(_ context.Context, c domain.Currency) (domain.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(c.Base, c.Quote)
	if existing, ok := r.byPair[k]; ok {
		c.ID = existing.ID
	} else {
		r.nextID++
		c.ID = r.nextID
		r.order = append(r.order, k)
	}
	r.byPair[k] = copyCurrency(c)
	return copyCurrency(c), nil
}

func (r *CurrencyRepo) FindAll(context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Currency, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, copyCurrency(r.byPair[k]))
	}
	return out, nil
}

func copyCurrency(c domain.Currency) domain.Currency {
	if c.Prices != nil {
		ps := make([]domain.Price, len(c.Prices))
		copy(ps, c.Prices)
		c.Prices = ps
	}
	return c
}
