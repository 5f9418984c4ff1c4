// Package identity resolves the acting user. The core never decides authz
// policy itself; it only requires that every write carries a verified user id.
package identity

import (
	"errors"

	"github.com/julianstephens/effort/internal/storage"
)

// ErrNotAuthenticated indicates no verified user profile is available.
var ErrNotAuthenticated = errors.New("not authenticated")

type Provider interface {
	// CurrentUser returns the stable id of the acting user, or
	// ErrNotAuthenticated.
	CurrentUser() (string, error)
}

// FromSettings resolves the user from the local profile stored in settings.
type FromSettings struct {
	Store storage.Provider
}

func (p FromSettings) CurrentUser() (string, error) {
	settings, err := p.Store.GetSettings()
	if err != nil {
		return "", err
	}
	if settings.UserID == "" || !settings.Verified {
		return "", ErrNotAuthenticated
	}
	return settings.UserID, nil
}

// Static always resolves to a fixed user id. Used in tests; an empty id
// behaves as unauthenticated.
type Static struct {
	ID string
}

func (p Static) CurrentUser() (string, error) {
	if p.ID == "" {
		return "", ErrNotAuthenticated
	}
	return p.ID, nil
}
