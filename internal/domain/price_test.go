package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxByValue(t *testing.T) {
	t.Parallel()
	ps := prices("9400.5", "9212.0", "10100.0", "9212.0")

	min, ok, err := MinByValue(ps)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "9212.0", min.Price)
	require.Equal(t, int64(1), min.Timestamp) // first of the tied pair

	max, ok, err := MaxByValue(ps)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "10100.0", max.Price)

	// Comparison is numeric, not lexicographic: "9" < "10" would fail
	// a string compare.
	minVal, err := min.Value()
	require.NoError(t, err)
	maxVal, err := max.Value()
	require.NoError(t, err)
	for _, p := range ps {
		v, err := p.Value()
		require.NoError(t, err)
		require.True(t, minVal.LessThanOrEqual(v))
		require.True(t, maxVal.GreaterThanOrEqual(v))
	}
}

func TestMinMaxByValue_Empty(t *testing.T) {
	t.Parallel()
	_, ok, err := MinByValue(nil)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = MaxByValue([]Price{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMinMaxByValue_MalformedPrice(t *testing.T) {
	t.Parallel()
	ps := []Price{{Timestamp: 1, Price: "1.0"}, {Timestamp: 2, Price: "not-a-number"}}

	_, _, err := MinByValue(ps)
	require.Error(t, err)
	_, _, err = MaxByValue(ps)
	require.Error(t, err)
}

func TestSortedByValue(t *testing.T) {
	t.Parallel()
	in := []Price{
		{Timestamp: 10, Price: "3.50"},
		{Timestamp: 20, Price: "2.0"},
		{Timestamp: 30, Price: "10.0"},
		{Timestamp: 40, Price: "2.00"},
	}

	got, err := SortedByValue(in)
	require.NoError(t, err)
	require.Len(t, got, len(in))

	// Ascending numeric order, stable for the tied 2.0/2.00 pair.
	require.Equal(t, []int64{20, 40, 10, 30}, []int64{
		got[0].Timestamp, got[1].Timestamp, got[2].Timestamp, got[3].Timestamp,
	})

	// Input order untouched.
	require.Equal(t, int64(10), in[0].Timestamp)
}

func TestSortedByValue_Empty(t *testing.T) {
	t.Parallel()
	got, err := SortedByValue(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSortedByValue_MalformedPrice(t *testing.T) {
	t.Parallel()
	_, err := SortedByValue([]Price{{Price: "x"}})
	require.Error(t, err)
}
