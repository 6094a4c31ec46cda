package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "12.50", FormatMoney(12.5))
	assert.Equal(t, "1,234.00", FormatMoney(1234))
	assert.Equal(t, "1,234,567.50", FormatMoney(1234567.5))
	assert.Equal(t, "-1,234.25", FormatMoney(-1234.25))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-1,234", FormatNumber(-1234))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(0.5))
	assert.Equal(t, "100.0%", FormatPercent(1))
}
