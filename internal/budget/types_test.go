package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxTypeValid(t *testing.T) {
	assert.True(t, Income.Valid())
	assert.True(t, Expense.Valid())
	assert.False(t, TxType("transfer").Valid())
	assert.False(t, TxType("").Valid())
}

func TestPlanProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"halfway", 50, 100, 0.5},
		{"complete", 100, 100, 1},
		{"overshoot clamps", 150, 100, 1},
		{"empty", 0, 100, 0},
		{"zero target", 50, 0, 0},
		{"negative target", 50, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Plan{CurrentAmount: tt.current, TargetAmount: tt.target}
			assert.Equal(t, tt.want, p.Progress())
		})
	}
}

func TestPlanRemaining(t *testing.T) {
	assert.Equal(t, 40.0, Plan{CurrentAmount: 60, TargetAmount: 100}.Remaining())
	assert.Equal(t, 0.0, Plan{CurrentAmount: 100, TargetAmount: 100}.Remaining())
	assert.Equal(t, 0.0, Plan{CurrentAmount: 150, TargetAmount: 100}.Remaining(), "overshoot never negative")
}
