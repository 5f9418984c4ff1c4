package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/julianstephens/effort/internal/models"
)

type Store struct {
	Version      int                                `json:"version"`
	Settings     Settings                           `json:"settings"`
	Applications map[string]models.Application      `json:"applications"`
	Commitments  map[string]models.CommitmentRecord `json:"commitments"`
}

// JSONStore is the file-backed alternative to SQLite. A single mutex guards
// every operation so the check-and-insert / check-and-update pairs inside
// CreateCommitment and TransitionCommitment are atomic in-process.
type JSONStore struct {
	mu    sync.Mutex
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// commitmentKey joins the uniqueness triple. Day keys and uuids contain no
// '|', so the separator is unambiguous.
func commitmentKey(userID, applicationID, day string) string {
	return userID + "|" + applicationID + "|" + day
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:      1,
		Settings:     Settings{CalendarWeeks: DefaultCalendarWeeks},
		Applications: make(map[string]models.Application),
		Commitments:  make(map[string]models.CommitmentRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'effort init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Applications == nil {
		s.store.Applications = make(map[string]models.Application)
	}
	if s.store.Commitments == nil {
		s.store.Commitments = make(map[string]models.CommitmentRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return Settings{}, ErrNotLoaded
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddApplication(app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotLoaded
	}
	if _, ok := s.store.Applications[app.ID]; ok {
		return fmt.Errorf("application already exists: %s", app.ID)
	}

	s.store.Applications[app.ID] = app
	return s.save()
}

func (s *JSONStore) GetApplication(id string) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.Application{}, ErrNotLoaded
	}

	app, ok := s.store.Applications[id]
	if !ok {
		return models.Application{}, fmt.Errorf("application %s: %w", id, ErrNotFound)
	}

	return app, nil
}

func (s *JSONStore) GetAllApplications(userID string) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNotLoaded
	}

	apps := make([]models.Application, 0, len(s.store.Applications))
	for _, app := range s.store.Applications {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.Before(apps[j].CreatedAt)
	})

	return apps, nil
}

func (s *JSONStore) UpdateApplication(app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotLoaded
	}
	if _, ok := s.store.Applications[app.ID]; !ok {
		return fmt.Errorf("application %s: %w", app.ID, ErrNotFound)
	}

	s.store.Applications[app.ID] = app
	return s.save()
}

func (s *JSONStore) CreateCommitment(rec models.CommitmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotLoaded
	}

	key := commitmentKey(rec.UserID, rec.ApplicationID, rec.Day)
	if _, ok := s.store.Commitments[key]; ok {
		return ErrDuplicate
	}

	s.store.Commitments[key] = rec
	return s.save()
}

func (s *JSONStore) TransitionCommitment(userID, applicationID, day string, from, to models.CommitmentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNotLoaded
	}

	key := commitmentKey(userID, applicationID, day)
	rec, ok := s.store.Commitments[key]
	if !ok || rec.State != from {
		return ErrStaleState
	}

	rec.State = to
	s.store.Commitments[key] = rec
	return s.save()
}

func (s *JSONStore) GetCommitment(userID, applicationID, day string) (models.CommitmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.CommitmentRecord{}, ErrNotLoaded
	}

	rec, ok := s.store.Commitments[commitmentKey(userID, applicationID, day)]
	if !ok {
		return models.CommitmentRecord{}, ErrNotFound
	}

	return rec, nil
}

func (s *JSONStore) ListCommitments(userID, fromDay, toDay string) ([]models.CommitmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNotLoaded
	}

	var recs []models.CommitmentRecord
	for _, rec := range s.store.Commitments {
		if rec.UserID == userID && rec.Day >= fromDay && rec.Day <= toDay {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Day != recs[j].Day {
			return recs[i].Day < recs[j].Day
		}
		return recs[i].ApplicationID < recs[j].ApplicationID
	})

	return recs, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
