// Package history persists translation records.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/pkg/filesystem"
	"github.com/doeshing/shellbridge/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.shellbridge/history/history.db
// database. When the database cannot be opened the store degrades to
// the JSONL file backend next to it.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.UserHomeDir(), ".shellbridge", "history", "history.db"))
}

// NewSQLiteStoreAt opens a database at an explicit path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		direction TEXT,
		input TEXT,
		output TEXT,
		shell TEXT,
		executed INTEGER,
		exit_code INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.TranslationRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO translations
		(id, timestamp, direction, input, output, shell, executed, exit_code, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Direction,
		record.Input,
		record.Output,
		record.Shell,
		boolToInt(record.Executed),
		record.ExitCode,
		record.DurationMS,
	)
	return err
}

// Records returns history entries newest first. A limit <= 0 means no
// limit; search filters on input or output substrings.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.TranslationRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, direction, input, output, shell, executed, exit_code, duration_ms FROM translations")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE input LIKE ? OR output LIKE ?")
		like := "%" + search + "%"
		args = append(args, like, like)
	}
	builder.WriteString(" ORDER BY timestamp DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TranslationRecord
	for rows.Next() {
		var rec domain.TranslationRecord
		var ts string
		var executed int
		if err := rows.Scan(&rec.ID, &ts, &rec.Direction, &rec.Input, &rec.Output, &rec.Shell, &executed, &rec.ExitCode, &rec.DurationMS); err != nil {
			return nil, err
		}
		rec.Timestamp, _ = time.Parse(time.RFC3339, ts)
		rec.Executed = executed != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes all records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM translations")
	return err
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStoreAt(filepath.Join(filepath.Dir(s.path), "history.jsonl"))
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
