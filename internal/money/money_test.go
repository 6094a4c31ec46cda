package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "120", 120, true},
		{"dot decimal", "12.50", 12.5, true},
		{"comma decimal", "12,50", 12.5, true},
		{"surrounding spaces", "  7,25 ", 7.25, true},
		{"empty", "", 0, false},
		{"text", "lunch", 0, false},
		{"zero", "0", 0, false},
		{"zero with comma", "0,00", 0, false},
		{"negative", "-5", 0, false},
		{"infinity", "Inf", 0, false},
		{"nan", "NaN", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "12.50", Format(12.5))
	assert.Equal(t, "100.00", Format(100))
	assert.Equal(t, "0.10", Format(0.1))
	assert.Equal(t, "-3.25", Format(-3.25))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "0.00", FormatString(""))
	assert.Equal(t, "0.00", FormatString("garbage"))
	assert.Equal(t, "12.50", FormatString("12,5"))
	assert.Equal(t, "99.90", FormatString("99.9"))
}

func TestFormatStringIdempotent(t *testing.T) {
	for _, in := range []string{"", "12,5", "0.333", "not a number", "100"} {
		once := FormatString(in)
		assert.Equal(t, once, FormatString(once), "input %q", in)
	}
}
