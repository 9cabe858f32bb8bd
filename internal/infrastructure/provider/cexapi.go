package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"
	"cryptoprices-service/internal/infrastructure/httpx"
)

// CexAPIFetcher fetches price histories from the cex.io REST API.
// The endpoint is POST /api/price_stats/{base}/{quote} with a JSON body
// selecting the lookback window; the response is a flat array of
// {tmsp, price} observations.
type CexAPIFetcher struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.PriceFetcher = (*CexAPIFetcher)(nil)

type priceStatsRequest struct {
	LastHours      int `json:"lastHours"`
	MaxRespArrSize int `json:"maxRespArrSize"`
}

func (f *CexAPIFetcher) Fetch(ctx context.Context, base, quote string, w domain.FetchWindow) ([]domain.Price, error) {
	if f.BaseURL == "" {
		return nil, errors.New("cexapi: missing base url")
	}
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("cexapi: invalid base url: %w", err)
	}
	u.Path = "/api/price_stats/" + url.PathEscape(base) + "/" + url.PathEscape(quote)

	body, err := json.Marshal(priceStatsRequest{LastHours: w.LastHours, MaxRespArrSize: w.MaxCount})
	if err != nil {
		return nil, fmt.Errorf("cexapi: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cexapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var prices []domain.Price
	if err := client.DoJSON(ctx, req, &prices); err != nil {
		return nil, fmt.Errorf("cexapi: price_stats %s/%s: %w", base, quote, err)
	}
	for _, p := range prices {
		if _, err := p.Value(); err != nil {
			return nil, fmt.Errorf("cexapi: malformed payload: %w", err)
		}
	}
	return prices, nil
}
