package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "2026-03-15", back.String())
}

func TestDateScanAcceptsDriverShapes(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-15", d.String())

	require.NoError(t, d.Scan("2026-04-01 00:00:00"))
	assert.Equal(t, "2026-04-01", d.String())

	require.NoError(t, d.Scan([]byte("2026-05-20")))
	assert.Equal(t, "2026-05-20", d.String())

	require.NoError(t, d.Scan(nil))
}

func TestParseDateRejectsBadInput(t *testing.T) {
	_, err := ParseDate("15-03-2026")
	assert.Error(t, err)
}
