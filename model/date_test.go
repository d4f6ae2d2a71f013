package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `"2024-03-09"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal(b, &got))
	require.True(t, got.Equal(d.Time))
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	d, err := ParseDate("1992-10-05T00:00:00.000Z")
	require.NoError(t, err)
	require.Equal(t, "1992-10-05", d.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "05/10/1992", "1992-13-01", "1992-02-30"} {
		_, err := ParseDate(s)
		require.Error(t, err, s)
	}
}

func TestDaysUntil(t *testing.T) {
	start := NewDate(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC))
	require.Equal(t, 3, start.DaysUntil(start.AddDays(3)))
	require.Equal(t, -2, start.DaysUntil(start.AddDays(-2)))
	// crosses a month boundary
	require.Equal(t, "2024-02-02", start.AddDays(3).String())
}

func TestZeroDateMarshalsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}
