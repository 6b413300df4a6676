package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFixedPoint3(t *testing.T) {
	chain := newTestChain()

	cases := map[string]uint64{
		"":       0,
		"0":      0,
		"1":      1000,
		"1.2":    1200,
		"1.23":   1230,
		"1.234":  1234,
		"10.000": 10_000,
		"0.001":  1,
	}
	for in, want := range cases {
		require.Equal(t, want, parseFixedPoint3(chain, in), "input %q", in)
	}

	expectAbort(t, "too many fractional digits", func() {
		parseFixedPoint3(chain, "1.2345")
	})
	expectAbort(t, "invalid number: multiple dots", func() {
		parseFixedPoint3(chain, "1.2.3")
	})
	expectAbort(t, "invalid character in number", func() {
		parseFixedPoint3(chain, "-1")
	})
}

func TestAppendFixedPoint3(t *testing.T) {
	require.Equal(t, "0.000", string(appendFixedPoint3(nil, 0)))
	require.Equal(t, "0.001", string(appendFixedPoint3(nil, 1)))
	require.Equal(t, "1.230", string(appendFixedPoint3(nil, 1230)))
	require.Equal(t, "30.000", string(appendFixedPoint3(nil, 30_000)))
}

func TestParseISO8601ToUnix(t *testing.T) {
	cases := []string{
		"1970-01-01T00:00:00",
		"2000-03-01T00:00:00",
		"2023-06-01T00:00:00",
		"2024-01-15T08:00:00",
		"2024-02-29T12:30:45",
		"2024-06-01T00:00:00",
		"2025-09-03T12:00:00",
		"2100-01-01T00:00:00",
	}
	for _, s := range cases {
		want, err := time.Parse("2006-01-02T15:04:05", s)
		require.NoError(t, err)
		require.Equal(t, uint64(want.Unix()), parseISO8601ToUnix(s), "input %q", s)
	}
}

func TestNextField(t *testing.T) {
	s := "a|b||c"
	require.Equal(t, "a", nextField(&s))
	require.Equal(t, "b", nextField(&s))
	require.Equal(t, "", nextField(&s))
	require.Equal(t, "c", nextField(&s))
	require.Equal(t, "", s)
}

func TestAppendU64(t *testing.T) {
	require.Equal(t, "0", string(appendU64(nil, 0)))
	require.Equal(t, "18446744073709551615", string(appendU64(nil, ^uint64(0))))
}
