package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/effort/internal/migration"
	"github.com/julianstephens/effort/internal/models"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(Settings{CalendarWeeks: DefaultCalendarWeeks}); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'effort init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.runMigrations()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner := migration.NewRunner(s.db, MigrationsFS())
	_, err := runner.ApplyMigrations(nil)
	return err
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, ErrNotLoaded
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "user_id":
			settings.UserID = value
		case "display_name":
			settings.DisplayName = value
		case "verified":
			settings.Verified = value == "true"
		case "calendar_weeks":
			weeks, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing calendar_weeks: %w", err)
			}
			settings.CalendarWeeks = weeks
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	verified := "false"
	if settings.Verified {
		verified = "true"
	}

	pairs := [][2]string{
		{"user_id", settings.UserID},
		{"display_name", settings.DisplayName},
		{"verified", verified},
		{"calendar_weeks", strconv.Itoa(settings.CalendarWeeks)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddApplication(app models.Application) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	var archivedAt sql.NullString
	if app.ArchivedAt != nil {
		archivedAt = sql.NullString{String: app.ArchivedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO applications (id, user_id, name, status, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		app.ID, app.UserID, app.Name, app.Status, app.CreatedAt.UTC().Format(time.RFC3339), archivedAt,
	)
	return err
}

func (s *SQLiteStore) GetApplication(id string) (models.Application, error) {
	if s.db == nil {
		return models.Application{}, ErrNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT id, user_id, name, status, created_at, archived_at
		FROM applications WHERE id = ?`, id)

	app, err := scanApplication(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Application{}, fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	return app, err
}

func (s *SQLiteStore) GetAllApplications(userID string) ([]models.Application, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, user_id, name, status, created_at, archived_at
		FROM applications WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (s *SQLiteStore) UpdateApplication(app models.Application) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	var archivedAt sql.NullString
	if app.ArchivedAt != nil {
		archivedAt = sql.NullString{String: app.ArchivedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE applications SET name = ?, status = ?, archived_at = ? WHERE id = ?`,
		app.Name, app.Status, archivedAt, app.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("application %s: %w", app.ID, ErrNotFound)
	}
	return nil
}

// CreateCommitment inserts a new record. The UNIQUE(user_id, application_id,
// day) constraint makes racing inserts collide inside the database, so exactly
// one writer wins and the rest observe ErrDuplicate.
func (s *SQLiteStore) CreateCommitment(rec models.CommitmentRecord) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO commitments (id, user_id, application_id, day, state, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.ApplicationID, rec.Day, rec.State, rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// TransitionCommitment performs the compare-and-swap: the update only matches
// while the stored state still equals from. Zero affected rows means another
// writer got there first (or the caller's read was stale).
func (s *SQLiteStore) TransitionCommitment(userID, applicationID, day string, from, to models.CommitmentState) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	res, err := s.db.Exec(`
		UPDATE commitments SET state = ?
		WHERE user_id = ? AND application_id = ? AND day = ? AND state = ?`,
		to, userID, applicationID, day, from,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaleState
	}
	return nil
}

func (s *SQLiteStore) GetCommitment(userID, applicationID, day string) (models.CommitmentRecord, error) {
	if s.db == nil {
		return models.CommitmentRecord{}, ErrNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT id, user_id, application_id, day, state, created_at
		FROM commitments WHERE user_id = ? AND application_id = ? AND day = ?`,
		userID, applicationID, day)

	rec, err := scanCommitment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CommitmentRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *SQLiteStore) ListCommitments(userID, fromDay, toDay string) ([]models.CommitmentRecord, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	// Day keys are zero-padded YYYY-MM-DD, so lexicographic range == date range.
	rows, err := s.db.Query(`
		SELECT id, user_id, application_id, day, state, created_at
		FROM commitments WHERE user_id = ? AND day >= ? AND day <= ?
		ORDER BY day, application_id`,
		userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.CommitmentRecord
	for rows.Next() {
		rec, err := scanCommitment(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func scanApplication(scan func(...any) error) (models.Application, error) {
	var app models.Application
	var status, createdAt string
	var archivedAt sql.NullString

	if err := scan(&app.ID, &app.UserID, &app.Name, &status, &createdAt, &archivedAt); err != nil {
		return models.Application{}, err
	}

	app.Status = models.ApplicationStatus(status)
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Application{}, fmt.Errorf("parsing created_at: %w", err)
	}
	app.CreatedAt = created

	if archivedAt.Valid {
		archived, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Application{}, fmt.Errorf("parsing archived_at: %w", err)
		}
		app.ArchivedAt = &archived
	}

	return app, nil
}

func scanCommitment(scan func(...any) error) (models.CommitmentRecord, error) {
	var rec models.CommitmentRecord
	var state, createdAt string

	if err := scan(&rec.ID, &rec.UserID, &rec.ApplicationID, &rec.Day, &state, &createdAt); err != nil {
		return models.CommitmentRecord{}, err
	}

	rec.State = models.CommitmentState(state)
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.CommitmentRecord{}, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = created

	return rec, nil
}
