package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	row, err := ParseRow([]string{"B1", "4.2", "2.5", "1.5", "250UB25.7", "2", "office-floor"})
	require.NoError(t, err)

	assert.Equal(t, "B1", row.Name)
	assert.Equal(t, 4.2, row.Span)
	assert.Equal(t, 2.5, row.UDLDead)
	assert.Equal(t, 1.5, row.UDLLive)
	assert.Equal(t, "250UB25.7", row.Section)
	assert.Equal(t, 2, row.Members)
	assert.Equal(t, "office-floor", row.Usage)
}

func TestParseRowDefaults(t *testing.T) {
	row, err := ParseRow([]string{"B2", "3.6", "1.0", "2.0", "190x45 MGP10"})
	require.NoError(t, err)
	assert.Equal(t, 1, row.Members)
	assert.Empty(t, row.Usage)
}

func TestParseRowRejectsBadRows(t *testing.T) {
	cases := [][]string{
		{"B1", "4.2", "2.5"},                        // too short
		{"B1", "oops", "2.5", "1.5", "250UB25.7"},   // bad span
		{"B1", "0", "2.5", "1.5", "250UB25.7"},      // zero span
		{"B1", "4.2", "2.5", "1.5", ""},             // no section
		{"B1", "4.2", "2.5", "1.5", "250UB", "two"}, // bad member count
	}
	for _, c := range cases {
		_, err := ParseRow(c)
		assert.Error(t, err, "row %v should be rejected", c)
	}
}
