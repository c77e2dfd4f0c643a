package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cents    int64
		currency string
		expected string
	}{
		{3500, "MXN", "35.00 MXN"},
		{1, "MXN", "0.01 MXN"},
		{-250, "USD", "-2.50 USD"},
		{0, "", "0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatAmount(tt.cents, tt.currency))
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{input: "12.50", expected: 1250},
		{input: "12.5", expected: 1250},
		{input: "7", expected: 700},
		{input: "0.01", expected: 1},
		{input: "12.345", wantErr: true},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			cents, err := parseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", formatTimestamp(0))
	assert.Equal(t, "2023-11-14 22:13:20", formatTimestamp(1700000000))
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := renderTable(&out, []string{"ID", "Amount"}, [][]string{{"ord_1", "1.00 MXN"}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ord_1")
	assert.Contains(t, out.String(), "1.00 MXN")
}
