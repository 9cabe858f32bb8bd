package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Price is a single observation from the upstream price feed. The price
// value travels as text and is only ever compared numerically.
type Price struct {
	Timestamp int64  `json:"tmsp"`
	Price     string `json:"price"`
}

// Value parses the price text into a decimal.
func (p Price) Value() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", p.Price, err)
	}
	return v, nil
}

// MinByValue returns the numerically smallest price. Ties resolve to the
// earliest occurrence. ok is false for an empty slice.
func MinByValue(prices []Price) (min Price, ok bool, err error) {
	return pickByValue(prices, func(cand, best decimal.Decimal) bool {
		return cand.LessThan(best)
	})
}

// MaxByValue returns the numerically largest price. Ties resolve to the
// earliest occurrence. ok is false for an empty slice.
func MaxByValue(prices []Price) (max Price, ok bool, err error) {
	return pickByValue(prices, func(cand, best decimal.Decimal) bool {
		return cand.GreaterThan(best)
	})
}

func pickByValue(prices []Price, better func(cand, best decimal.Decimal) bool) (Price, bool, error) {
	if len(prices) == 0 {
		return Price{}, false, nil
	}
	best := prices[0]
	bestVal, err := best.Value()
	if err != nil {
		return Price{}, false, err
	}
	for _, p := range prices[1:] {
		v, err := p.Value()
		if err != nil {
			return Price{}, false, err
		}
		if better(v, bestVal) {
			best, bestVal = p, v
		}
	}
	return best, true, nil
}

// SortedByValue returns a new slice ordered ascending by numeric value.
// The sort is stable: equal prices keep their original relative order.
func SortedByValue(prices []Price) ([]Price, error) {
	type keyed struct {
		p Price
		v decimal.Decimal
	}
	ks := make([]keyed, len(prices))
	for i, p := range prices {
		v, err := p.Value()
		if err != nil {
			return nil, err
		}
		ks[i] = keyed{p: p, v: v}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].v.LessThan(ks[j].v) })
	out := make([]Price, len(ks))
	for i, k := range ks {
		out[i] = k.p
	}
	return out, nil
}
