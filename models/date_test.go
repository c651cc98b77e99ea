package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-11-10"`), &parsed))
	assert.Equal(t, time.November, time.Time(parsed).Month())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, d.Scan("2024-10-01"))
	require.NoError(t, d.Scan([]byte("2024-10-01")))
	assert.Error(t, d.Scan(42))
}

func TestDateTimeScanLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-11-10T12:30:00Z",
		"2024-11-10 12:30:00",
		"2024-11-10",
	} {
		var dt DateTime
		assert.NoErrorf(t, dt.Scan(s), "layout %q", s)
	}

	var dt DateTime
	assert.Error(t, dt.Scan("half past noon"))
}
