package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hyperengineering/roster/internal/store/migrations"
	"github.com/oklog/ulid/v2"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store manages the local SQLite people database.
// It is safe for concurrent use; each operation is a single transaction.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

// NewStore opens or creates a local people store.
func NewStore(path string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("store: set goose dialect: %w", err)
	}
	if err := goose.Up(s.db, "."); err != nil {
		return fmt.Errorf("store: run migrations: %w", err)
	}

	// Set schema version if not set
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', ?)
	`, schemaVersion)
	return err
}

// Create inserts a new person and returns it with store-assigned fields.
// A duplicate email surfaces as *ConflictError.
func (s *Store) Create(ctx context.Context, params CreateParams) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	now := time.Now().UTC().Truncate(time.Second)
	person := Person{
		ID:          ulid.Make().String(),
		Name:        params.Name,
		Email:       params.Email,
		PhoneNumber: params.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO people (id, name, email, phone_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		person.ID,
		person.Name,
		person.Email,
		person.PhoneNumber,
		person.CreatedAt.Format(time.RFC3339),
		person.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err, "people.email") {
			return nil, &ConflictError{Field: "email", Value: params.Email}
		}
		return nil, fmt.Errorf("store: insert person: %w", err)
	}

	return &person, nil
}

// Get retrieves a person by ID. Returns ErrNotFound if absent.
func (s *Store) Get(ctx context.Context, id string) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone_number, created_at, updated_at
		FROM people WHERE id = ?
	`, id)

	return scanPerson(row)
}

// List retrieves people matching the given parameters.
//
// Without a query, results are ordered by creation time descending
// (newest first). With a query, the match is a case-insensitive
// substring match on name and results are ordered by name ascending.
// The limit is clamped to [1, MaxLimit]; zero means DefaultLimit.
func (s *Store) List(ctx context.Context, params ListParams) ([]Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := `
		SELECT id, name, email, phone_number, created_at, updated_at
		FROM people
	`
	args := []any{}

	if params.Query != "" {
		query += ` WHERE instr(lower(name), lower(?)) > 0 ORDER BY name ASC, id ASC`
		args = append(args, params.Query)
	} else {
		query += ` ORDER BY created_at DESC, id DESC`
	}

	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list people: %w", err)
	}
	defer rows.Close()

	people := []Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	return people, rows.Err()
}

// Update applies a sparse patch to a person and returns the updated row.
// Unspecified fields are left untouched. Returns ErrNotFound if the id
// does not exist, ErrNoFields for an empty patch, and *ConflictError when
// the new email is already taken.
func (s *Store) Update(ctx context.Context, id string, patch UpdateParams) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if patch.IsEmpty() {
		return nil, ErrNoFields
	}

	sets := []string{}
	args := []any{}
	if patch.Name != "" {
		sets = append(sets, "name = ?")
		args = append(args, patch.Name)
	}
	if patch.Email != "" {
		sets = append(sets, "email = ?")
		args = append(args, patch.Email)
	}
	if patch.PhoneNumber != "" {
		sets = append(sets, "phone_number = ?")
		args = append(args, patch.PhoneNumber)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second).Format(time.RFC3339))
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE people SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isUniqueViolation(err, "people.email") {
			return nil, &ConflictError{Field: "email", Value: patch.Email}
		}
		return nil, fmt.Errorf("store: update person: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("store: update person: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone_number, created_at, updated_at
		FROM people WHERE id = ?
	`, id)
	return scanPerson(row)
}

// Delete removes a person by ID. Returns ErrNotFound if the id does not
// exist; deletion is deliberately not idempotent at this layer.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete person: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every person. Used by the seed command.
func (s *Store) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM people`)
	if err != nil {
		return fmt.Errorf("store: delete all: %w", err)
	}
	return nil
}

// Stats returns store statistics.
func (s *Store) Stats() (*StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	stats := &StoreStats{DBPath: s.path}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&stats.PeopleCount); err != nil {
		return nil, fmt.Errorf("store: count people: %w", err)
	}
	if err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = 'schema_version'`).Scan(&stats.SchemaVer); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: read schema version: %w", err)
	}
	return stats, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for scanPerson.
type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (*Person, error) {
	var p Person
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: scan person: %w", err)
	}

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("store: parse created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("store: parse updated_at: %w", err)
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure on the given column.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
