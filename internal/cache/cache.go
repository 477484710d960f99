// Package cache implements the incremental check cache described in
// a small SQLite table remembering, per declaration
// name, the hash of its resolved type/body pair and the verdict from
// the last time it passed, so an unchanged declaration doesn't have to
// be re-run through member_of on the next invocation.
//
// This is purely an optimisation. It never changes pass/fail outcomes:
// a cache miss (or a declaration touching SORRY) always falls back to
// a full check.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/funvibe/proofcheck/internal/kernel"
	"github.com/funvibe/proofcheck/internal/prettyprinter"
)

// Verdict is what was previously recorded for a declaration.
type Verdict string

const (
	VerdictPass  Verdict = "pass"  // had a body, member_of succeeded
	VerdictAxiom Verdict = "axiom" // no body, never needs checking
)

type Cache struct {
	db *sql.DB
}

// Open creates (if needed) the parent directory and the backing
// SQLite file at path, and ensures the proofs table exists.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `CREATE TABLE IF NOT EXISTS proofs (
		name       TEXT PRIMARY KEY,
		hash       TEXT NOT NULL,
		verdict    TEXT NOT NULL,
		checked_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Hash fingerprints a declaration's resolved type and body. Two
// declarations with the same name hash equal iff their kernel
// expressions print identically, which is enough to detect "nothing
// relevant to this proof changed" across runs.
func Hash(ty, def kernel.Expr) string {
	h := sha256.New()
	h.Write([]byte(prettyprinter.Print(ty)))
	h.Write([]byte{0})
	if def != nil {
		h.Write([]byte(prettyprinter.Print(def)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the previously recorded verdict for name if its hash
// still matches what's stored.
func (c *Cache) Lookup(name, hash string) (Verdict, bool) {
	row := c.db.QueryRow(`SELECT verdict FROM proofs WHERE name = ? AND hash = ?`, name, hash)
	var v string
	if err := row.Scan(&v); err != nil {
		return "", false
	}
	return Verdict(v), true
}

// Store records (or updates) the verdict for name.
func (c *Cache) Store(name, hash string, verdict Verdict, checkedAt string) error {
	const upsert = `INSERT INTO proofs(name, hash, verdict, checked_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET hash = excluded.hash, verdict = excluded.verdict, checked_at = excluded.checked_at`
	_, err := c.db.Exec(upsert, name, hash, string(verdict), checkedAt)
	return err
}
