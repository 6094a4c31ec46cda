package session

import (
	"testing"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"github.com/stretchr/testify/assert"
)

func TestGuardEnsure(t *testing.T) {
	assert.True(t, NewGuard("token").Ensure())
	assert.False(t, NewGuard("").Ensure())

	var nilGuard *Guard
	assert.False(t, nilGuard.Ensure())
}

func TestFromInit(t *testing.T) {
	s := FromInit("token", &api.InitResult{
		TelegramID: 7,
		Balance:    42.5,
		IsOwner:    true,
		Mode:       budget.Shared,
		HasShared:  true,
	})

	assert.Equal(t, "token", s.Credential)
	assert.Equal(t, int64(7), s.TelegramID)
	assert.Equal(t, 42.5, s.Balance)
	assert.True(t, s.IsOwner)
	assert.Equal(t, budget.Shared, s.Mode)
	assert.True(t, s.HasShared)
}
