package tui

import (
	"context"
	"testing"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRefreshOpsFailSoft(t *testing.T) {
	rec := &pathRecorder{fail: map[string]string{"/api/categories": "storage hiccup"}}
	client := newRecordedClient(t, rec)

	var u storeUpdates
	ops := []refreshOp{refreshCategories, refreshTransactions}
	runRefreshOps(context.Background(), client, ops, testScope(), &u)

	assert.Equal(t, []string{"/api/categories", "/api/transactions/list"}, rec.recorded(),
		"a failed fetch must not stop the sequence")
	assert.True(t, u.catDone)
	assert.Equal(t, "storage hiccup", u.catErr)
	assert.True(t, u.txDone)
	assert.Empty(t, u.txErr)
}

func TestApplyUpdatesClampsCursor(t *testing.T) {
	a := NewApp(config.DefaultConfig(), nil, "cred")
	a.cats.items = []budget.Category{{ID: 1, Name: "food"}, {ID: 2, Name: "rent"}, {ID: 3, Name: "fun"}}
	a.cats.cursor = 2

	a.applyUpdates(storeUpdates{
		catDone:  true,
		catItems: []budget.Category{{ID: 1, Name: "food"}},
	})

	assert.Equal(t, 0, a.cats.cursor)
	require.Len(t, a.cats.items, 1)
}

func TestApplyUpdatesKeepsItemsOnError(t *testing.T) {
	a := NewApp(config.DefaultConfig(), nil, "cred")
	a.tx.items = []budget.Transaction{{ID: 1, Amount: 5}}

	a.applyUpdates(storeUpdates{txDone: true, txErr: "offline"})

	assert.Equal(t, "offline", a.tx.errMsg)
	assert.Len(t, a.tx.items, 1, "stale items survive a failed refresh")
}

func TestApplyUpdatesMembersSyncSession(t *testing.T) {
	a := NewApp(config.DefaultConfig(), nil, "cred")

	a.applyUpdates(storeUpdates{
		membersDone: true,
		members: &api.MembersResult{
			Users:     []budget.Member{{TelegramID: 1, DisplayName: "Ann"}},
			Mode:      budget.Shared,
			HasShared: true,
		},
	})

	assert.Equal(t, budget.Shared, a.sess.Mode)
	assert.True(t, a.sess.HasShared)
	assert.Len(t, a.members.members, 1)
}

func TestCanKick(t *testing.T) {
	a := NewApp(config.DefaultConfig(), nil, "cred")
	a.sess.TelegramID = 10

	other := budget.Member{TelegramID: 20}
	self := budget.Member{TelegramID: 10}

	a.sess.IsOwner = true
	assert.True(t, a.canKick(other))
	assert.False(t, a.canKick(self), "never on the owner's own row")

	a.sess.IsOwner = false
	assert.False(t, a.canKick(other), "non-owners see no kick control")
	assert.False(t, a.canKick(self))
}
