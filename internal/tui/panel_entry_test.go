package tui

import (
	"testing"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/stretchr/testify/assert"
)

func TestTransactionRow(t *testing.T) {
	tx := budget.Transaction{Amount: 15.5, Description: "coffee", Category: "food"}
	assert.Equal(t, "15.50 · coffee · food", transactionRow(tx))

	bare := budget.Transaction{Amount: 100}
	assert.Equal(t, "100.00", transactionRow(bare))

	shared := budget.Transaction{Amount: 9.99, Description: "bus", AddedBy: "Ann"}
	assert.Equal(t, "9.99 · bus — Ann", transactionRow(shared))
}
