// Package session holds the per-launch session state and the credential
// guard that fronts every data load and mutation.
package session

import (
	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"
)

// RelaunchMessage is the fixed text for the global error panel when no
// credential is present. There is no recovery besides relaunching inside
// the host messenger.
const RelaunchMessage = "Open the mini app inside the messenger and relaunch."

// Session is created once at startup from the host credential and the
// init response. Read-only afterwards except Mode and Balance, which
// change only through their dedicated mutations.
type Session struct {
	Credential string
	TelegramID int64
	IsOwner    bool
	Mode       budget.Mode
	HasShared  bool
	Balance    float64
}

// FromInit builds the session record from the bootstrap response.
func FromInit(credential string, res *api.InitResult) *Session {
	return &Session{
		Credential: credential,
		TelegramID: res.TelegramID,
		IsOwner:    res.IsOwner,
		Mode:       res.Mode,
		HasShared:  res.HasShared,
		Balance:    res.Balance,
	}
}

// Guard verifies a credential exists before any panel action.
type Guard struct {
	credential string
}

// NewGuard creates a guard over the given credential.
func NewGuard(credential string) *Guard {
	return &Guard{credential: credential}
}

// Ensure reports whether a non-empty credential is present. A false
// return is fatal for the session: the caller must route to the error
// panel and abort the action. No retries.
func (g *Guard) Ensure() bool {
	return g != nil && g.credential != ""
}
