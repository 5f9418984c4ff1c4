package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/effort/internal/commitment"
	"github.com/julianstephens/effort/internal/models"
	"github.com/julianstephens/effort/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Service *commitment.Service
}

// parseDesiredState accepts the canonical state names plus the short form
// "miss" for potential_miss.
func parseDesiredState(s string) (models.CommitmentState, error) {
	if strings.EqualFold(s, "miss") {
		return models.StatePotentialMiss, nil
	}
	return models.ParseCommitmentState(strings.ToLower(s))
}

// resolveApplication matches ref against an application id first, then
// against a unique case-insensitive name prefix.
func resolveApplication(store storage.Provider, userID, ref string) (models.Application, error) {
	apps, err := store.GetAllApplications(userID)
	if err != nil {
		return models.Application{}, err
	}

	for _, app := range apps {
		if app.ID == ref {
			return app, nil
		}
	}

	var matches []models.Application
	for _, app := range apps {
		if strings.HasPrefix(strings.ToLower(app.Name), strings.ToLower(ref)) {
			matches = append(matches, app)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Application{}, fmt.Errorf("no application matches %q", ref)
	default:
		var names []string
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return models.Application{}, fmt.Errorf("ambiguous application %q (matches: %s)", ref, strings.Join(names, ", "))
	}
}

func currentUserID(store storage.Provider) (string, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return "", err
	}
	if settings.UserID == "" {
		return "", fmt.Errorf("no user profile, run 'effort init' first")
	}
	return settings.UserID, nil
}
