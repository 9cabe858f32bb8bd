package application

import "errors"

var (
	// ErrNotFound reports that no currency record exists for the pair.
	ErrNotFound = errors.New("currency not found")
	// ErrEmptyPrices reports a record whose price series is empty.
	ErrEmptyPrices = errors.New("empty price series")
	// ErrFetchFailed reports an upstream fetch that produced no usable payload.
	ErrFetchFailed = errors.New("fetch failed")
)
