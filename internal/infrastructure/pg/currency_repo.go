package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

// CurrencyRepo stores one row per currency pair; the price series lives
// in a JSONB column and is replaced wholesale on upsert.
type CurrencyRepo struct{ db *DB }

var _ application.CurrencyRepo = (*CurrencyRepo)(nil)

func NewCurrencyRepo(db *DB) *CurrencyRepo { return &CurrencyRepo{db: db} }

func (r *CurrencyRepo) FindByPair(ctx context.Context, base, quote string) (domain.Currency, error) {
	const q = `SELECT id, base_symbol, quote_symbol, prices
	             FROM currencies WHERE base_symbol=$1 AND quote_symbol=$2`
	var (
		out domain.Currency
		raw []byte
	)
	err := r.db.Pool.QueryRow(ctx, q, base, quote).Scan(&out.ID, &out.Base, &out.Quote, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Currency{}, application.ErrNotFound
		}
		return domain.Currency{}, fmt.Errorf("find currency: %w", err)
	}
	if err := json.Unmarshal(raw, &out.Prices); err != nil {
		return domain.Currency{}, fmt.Errorf("decode prices: %w", err)
	}
	return out, nil
}

func (r *CurrencyRepo) ExistsByPair(ctx context.Context, base, quote string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM currencies WHERE base_symbol=$1 AND quote_symbol=$2)`
	var exists bool
	if err := r.db.Pool.QueryRow(ctx, q, base, quote).Scan(&exists); err != nil {
		return false, fmt.Errorf("check currency: %w", err)
	}
	return exists, nil
}

func (r *CurrencyRepo) Upsert(ctx context.Context, c domain.Currency) (domain.Currency, error) {
	const up = `
        INSERT INTO currencies(base_symbol, quote_symbol, prices)
        VALUES ($1, $2, $3)
        ON CONFLICT (base_symbol, quote_symbol) DO UPDATE
          SET prices=EXCLUDED.prices
        RETURNING id`
	if c.Prices == nil {
		c.Prices = []domain.Price{}
	}
	raw, err := json.Marshal(c.Prices)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("encode prices: %w", err)
	}
	if err := r.db.Pool.QueryRow(ctx, up, c.Base, c.Quote, raw).Scan(&c.ID); err != nil {
		return domain.Currency{}, fmt.Errorf("upsert currency: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepo) FindAll(ctx context.Context) ([]domain.Currency, error) {
	const q = `SELECT id, base_symbol, quote_symbol, prices FROM currencies ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var out []domain.Currency
	for rows.Next() {
		var (
			c   domain.Currency
			raw []byte
		)
		if err := rows.Scan(&c.ID, &c.Base, &c.Quote, &raw); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		if err := json.Unmarshal(raw, &c.Prices); err != nil {
			return nil, fmt.Errorf("decode prices: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
