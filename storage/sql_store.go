// Package storage provides SQLite-backed persistence for analyzed strings.
// It handles database persistence, JSON serialization of the character
// frequency column, and predicate-to-SQL query construction.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/solset/stringlens/analysis"
	"github.com/solset/stringlens/errors"
)

// Query constants
const (
	StringInsertQuery = `
		INSERT INTO strings (content_hash, value, length, is_palindrome, unique_characters, word_count, character_frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	StringExistsQuery = `
		SELECT EXISTS(SELECT 1 FROM strings WHERE content_hash = ?)`

	stringColumns = `content_hash, value, length, is_palindrome, unique_characters, word_count, character_frequency, created_at`

	StringSelectByHashQuery = `
		SELECT ` + stringColumns + ` FROM strings WHERE content_hash = ?`

	StringSelectByValueQuery = `
		SELECT ` + stringColumns + ` FROM strings WHERE value = ?`

	StringListQuery = `
		SELECT ` + stringColumns + ` FROM strings ORDER BY created_at ASC, rowid ASC`

	StringDeleteQuery = `
		DELETE FROM strings WHERE content_hash = ?`

	StringCountQuery = `
		SELECT COUNT(*) FROM strings`
)

// SQLStore persists analyzed strings in SQLite
type SQLStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLStore creates a new SQL-backed string store
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

// CreateRecord inserts an analyzed string. The content hash is the primary
// key, so submitting the same value twice returns a conflict error.
func (s *SQLStore) CreateRecord(record analysis.PropertyRecord) error {
	freqJSON, err := json.Marshal(record.CharacterFrequency)
	if err != nil {
		return fmt.Errorf("failed to marshal character frequency: %w", err)
	}

	_, err = s.db.Exec(
		StringInsertQuery,
		record.ContentHash,
		record.Value,
		record.Length,
		record.IsPalindrome,
		record.UniqueCharacters,
		record.WordCount,
		string(freqJSON),
		record.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(errors.ErrConflict, "string already exists (hash %s)", record.ContentHash)
		}
		return fmt.Errorf("failed to insert string record: %w", err)
	}

	if s.logger != nil {
		s.logger.Debugw("Stored string record",
			"content_hash", record.ContentHash,
			"length", record.Length,
		)
	}

	return nil
}

// RecordExists checks if a record with the given content hash exists
func (s *SQLStore) RecordExists(hash string) bool {
	var exists bool
	err := s.db.QueryRow(StringExistsQuery, hash).Scan(&exists)
	return err == nil && exists
}

// GetByHash retrieves a single record by its content hash
func (s *SQLStore) GetByHash(hash string) (*analysis.PropertyRecord, error) {
	row := s.db.QueryRow(StringSelectByHashQuery, hash)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no string with hash %s", hash)
		}
		return nil, fmt.Errorf("failed to get string by hash: %w", err)
	}
	return record, nil
}

// GetByValue retrieves a single record by its exact value
func (s *SQLStore) GetByValue(value string) (*analysis.PropertyRecord, error) {
	row := s.db.QueryRow(StringSelectByValueQuery, value)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no string with value %q", value)
		}
		return nil, fmt.Errorf("failed to get string by value: %w", err)
	}
	return record, nil
}

// ListRecords returns all stored records in insertion order
func (s *SQLStore) ListRecords() ([]analysis.PropertyRecord, error) {
	rows, err := s.db.Query(StringListQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list string records: %w", err)
	}
	defer rows.Close()

	records := []analysis.PropertyRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan string record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading string records: %w", err)
	}

	return records, nil
}

// DeleteByHash removes a record by its content hash
func (s *SQLStore) DeleteByHash(hash string) error {
	result, err := s.db.Exec(StringDeleteQuery, hash)
	if err != nil {
		return fmt.Errorf("failed to delete string record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return errors.Wrapf(errors.ErrNotFound, "no string with hash %s", hash)
	}

	if s.logger != nil {
		s.logger.Debugw("Deleted string record", "content_hash", hash)
	}

	return nil
}

// Count returns the number of stored records
func (s *SQLStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(StringCountQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count string records: %w", err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanRecord
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*analysis.PropertyRecord, error) {
	var record analysis.PropertyRecord
	var freqJSON string

	err := row.Scan(
		&record.ContentHash,
		&record.Value,
		&record.Length,
		&record.IsPalindrome,
		&record.UniqueCharacters,
		&record.WordCount,
		&freqJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(freqJSON), &record.CharacterFrequency); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character frequency: %w", err)
	}

	return &record, nil
}

// isUniqueViolation reports whether err is a SQLite primary key or unique
// constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
