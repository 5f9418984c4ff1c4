package commitment

import "github.com/julianstephens/effort/internal/models"

// CanTransition reports whether a stored record may move from current to
// desired. The absent state (no record yet) is handled by the create path,
// not here.
//
// Rules: completed absorbs; touched may only be upgraded to completed;
// potential_miss is a soft placeholder upgradable to touched or completed.
// Resubmitting the current state is rejected so callers can distinguish
// "already recorded" from "recorded now".
func CanTransition(current, desired models.CommitmentState) bool {
	if current == desired {
		return false
	}
	switch current {
	case models.StateTouched:
		return desired == models.StateCompleted
	case models.StatePotentialMiss:
		return desired == models.StateTouched || desired == models.StateCompleted
	case models.StateCompleted:
		return false
	}
	return false
}
