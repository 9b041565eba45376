package dict

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite persistence for a word set: a single `words` table. The driver
// is registered by the blank import; callers only deal in file paths.

// OpenSQLite loads every word from a SQLite dictionary file into a Set.
func OpenSQLite(path string) (*Set, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words ORDER BY length(word), word`)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	s := NewSet()
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		if err := s.Add(word); err != nil {
			return nil, fmt.Errorf("bad word in dictionary db: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return s, nil
}

// SaveSQLite writes the set to a SQLite dictionary file, replacing any
// existing words table.
func SaveSQLite(s *Set, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		DROP TABLE IF EXISTS words;
		CREATE TABLE words (word TEXT PRIMARY KEY);
	`); err != nil {
		return fmt.Errorf("failed to create words table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO words (word) VALUES (?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range s.Lengths() {
		for _, word := range s.byLength[n] {
			if _, err := stmt.Exec(word); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert %q: %w", word, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %w", err)
	}
	return nil
}
