package storage

import "github.com/julianstephens/effort/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Applications
	AddApplication(models.Application) error
	GetApplication(id string) (models.Application, error)
	GetAllApplications(userID string) ([]models.Application, error)
	UpdateApplication(models.Application) error

	// Commitments. CreateCommitment and TransitionCommitment are the only
	// write paths and both are atomic: an insert that fails with
	// ErrDuplicate when a record for the (user, application, day) triple
	// exists, and a state-guarded update that fails with ErrStaleState
	// when the current state does not match. There is deliberately no
	// unconditional overwrite.
	CreateCommitment(models.CommitmentRecord) error
	TransitionCommitment(userID, applicationID, day string, from, to models.CommitmentState) error
	GetCommitment(userID, applicationID, day string) (models.CommitmentRecord, error)
	ListCommitments(userID, fromDay, toDay string) ([]models.CommitmentRecord, error)

	// Utils
	GetConfigPath() string
}
