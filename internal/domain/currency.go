package domain

// Currency is one stored record: a currency pair and its fetched price
// history. The (Base, Quote) pair is unique in the store; Prices keeps
// fetch-response order and is wholesale-replaced on every re-fetch.
type Currency struct {
	ID     int64
	Base   string
	Quote  string
	Prices []Price
}

// PairKey returns the canonical "BASE/QUOTE" form of the pair.
func (c Currency) PairKey() string { return c.Base + "/" + c.Quote }

// FetchWindow bounds an upstream history request.
type FetchWindow struct {
	LastHours int
	MaxCount  int
}
