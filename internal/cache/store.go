package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"golang.org/x/crypto/blake2b"
)

// Store persists a GeneratorCache's resolved entries across process
// restarts, so a `watch` run picks up right where a previous one left
// off instead of re-resolving every candidate on startup.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) a sqlite database at path and
// ensures its schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS generated (
			cache_key BLOB PRIMARY KEY,
			raw TEXT NOT NULL,
			css TEXT NOT NULL,
			extra TEXT NOT NULL,
			valid INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`)
	return err
}

// ConfigHash hashes config bytes with blake2b (the watch command passes
// the config file's raw contents), used to detect a config edit between
// process restarts.
func ConfigHash(resolved []byte) [32]byte {
	return blake2b.Sum256(resolved)
}

// Reconcile compares hash against the hash stored from a previous run.
// A mismatch (or no previous run) wipes the persisted table, since a
// config edit invalidates every entry it could contain, and records the
// new hash.
func (s *Store) Reconcile(hash [32]byte) error {
	var stored []byte
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'config_hash'`).Scan(&stored)
	if err == nil && len(stored) == len(hash) && string(stored) == string(hash[:]) {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM generated`); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('config_hash', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, hash[:]); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Load populates cc with every entry this store has persisted, letting
// a fresh process resume from FirstRun with a warm cache.
func (s *Store) Load(cc *GeneratorCache) error {
	rows, err := s.db.Query(`SELECT raw, css, extra, valid FROM generated`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var raw, cssText, extraText string
		var valid bool
		if err := rows.Scan(&raw, &cssText, &extraText, &valid); err != nil {
			return err
		}
		cc.Remember(raw, cssText, extraText, valid)
	}
	if cc.State() == FirstRun {
		cc.Advance()
	}
	return rows.Err()
}

// Flush upserts every entry cc has remembered (not only those added since
// the last Flush), keyed by a fingerprint of the raw candidate string.
func (s *Store) Flush(cc *GeneratorCache) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO generated (cache_key, raw, css, extra, valid)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET css = excluded.css, extra = excluded.extra, valid = excluded.valid`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, raw := range cc.order {
		e := cc.seen[raw]
		key := NewKey(raw, cc.genHash)
		if _, err := stmt.Exec(key[:], raw, e.css, e.extra, e.valid); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
