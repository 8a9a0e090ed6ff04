// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists pipeline state between stages in a SQLite
// database: resolved journals, raw fetched works, and per-article keyword
// hits. Every write is an upsert so re-running a stage is idempotent.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/journal-prevalence/pkg/types"
)

const dbFile = "prevalence.db"

// Store manages the pipeline SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DataDir/prevalence.db and
// creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS journals (
			discipline TEXT NOT NULL,
			input_name TEXT NOT NULL,
			input_issn TEXT,
			openalex_id TEXT,
			openalex_name TEXT,
			matched_issn TEXT,
			found INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (discipline, input_name)
		)`,
		`CREATE TABLE IF NOT EXISTS works (
			discipline TEXT NOT NULL,
			id TEXT NOT NULL,
			journal TEXT NOT NULL,
			doi TEXT,
			title TEXT,
			authors TEXT,
			year INTEGER,
			inverted_index TEXT,
			abstract TEXT,
			tagged INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (discipline, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_works_journal ON works(discipline, journal)`,
		`CREATE TABLE IF NOT EXISTS hits (
			discipline TEXT NOT NULL,
			work_id TEXT NOT NULL,
			keyword TEXT NOT NULL,
			PRIMARY KEY (discipline, work_id, keyword)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// UpsertJournal records one journal resolution.
func (s *Store) UpsertJournal(ctx context.Context, j types.Journal) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO journals (discipline, input_name, input_issn, openalex_id, openalex_name, matched_issn, found)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(discipline, input_name) DO UPDATE SET
			input_issn=excluded.input_issn, openalex_id=excluded.openalex_id,
			openalex_name=excluded.openalex_name, matched_issn=excluded.matched_issn,
			found=excluded.found`,
		j.Discipline, j.InputName, j.InputISSN, j.OpenAlexID, j.OpenAlexName, j.MatchedISSN, j.Found,
	)
	if err != nil {
		return fmt.Errorf("upserting journal %s: %w", j.InputName, err)
	}
	return nil
}

// Journals returns all journal resolutions for a discipline, resolved and
// unresolved, ordered by input name.
func (s *Store) Journals(ctx context.Context, discipline string) ([]types.Journal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT discipline, input_name, input_issn, openalex_id, openalex_name, matched_issn, found
		 FROM journals WHERE discipline = ? ORDER BY input_name`, discipline)
	if err != nil {
		return nil, fmt.Errorf("querying journals: %w", err)
	}
	defer rows.Close()

	var journals []types.Journal
	for rows.Next() {
		var j types.Journal
		var issn, oaID, oaName, matched sql.NullString
		if err := rows.Scan(&j.Discipline, &j.InputName, &issn, &oaID, &oaName, &matched, &j.Found); err != nil {
			return nil, fmt.Errorf("scanning journal: %w", err)
		}
		j.InputISSN = issn.String
		j.OpenAlexID = oaID.String
		j.OpenAlexName = oaName.String
		j.MatchedISSN = matched.String
		journals = append(journals, j)
	}
	return journals, rows.Err()
}

// UpsertWorks stores a page of fetched works in one transaction. The
// tagged flag is reset so the tag stage revisits updated records.
func (s *Store) UpsertWorks(ctx context.Context, works []types.Work) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO works (discipline, id, journal, doi, title, authors, year, inverted_index, abstract, tagged)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', 0)
		 ON CONFLICT(discipline, id) DO UPDATE SET
			journal=excluded.journal, doi=excluded.doi, title=excluded.title,
			authors=excluded.authors, year=excluded.year,
			inverted_index=excluded.inverted_index, tagged=0`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range works {
		authorsJSON, _ := json.Marshal(w.Authors)
		indexJSON := ""
		if w.InvertedIndex != nil {
			data, err := json.Marshal(w.InvertedIndex)
			if err != nil {
				return fmt.Errorf("marshaling index for %s: %w", w.ID, err)
			}
			indexJSON = string(data)
		}
		if _, err := stmt.ExecContext(ctx,
			w.Discipline, w.ID, w.Journal, w.DOI, w.Title,
			string(authorsJSON), w.Year, indexJSON,
		); err != nil {
			return fmt.Errorf("upserting work %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

// Works returns all works for a discipline ordered by identifier. The
// inverted index and abstract round-trip through their stored forms.
func (s *Store) Works(ctx context.Context, discipline string) ([]types.Work, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT discipline, id, journal, doi, title, authors, year, inverted_index, abstract
		 FROM works WHERE discipline = ? ORDER BY id`, discipline)
	if err != nil {
		return nil, fmt.Errorf("querying works: %w", err)
	}
	defer rows.Close()

	var works []types.Work
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// UntaggedWorks returns works the tag stage has not processed yet.
func (s *Store) UntaggedWorks(ctx context.Context, discipline string) ([]types.Work, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT discipline, id, journal, doi, title, authors, year, inverted_index, abstract
		 FROM works WHERE discipline = ? AND tagged = 0 ORDER BY id`, discipline)
	if err != nil {
		return nil, fmt.Errorf("querying untagged works: %w", err)
	}
	defer rows.Close()

	var works []types.Work
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

func scanWork(rows *sql.Rows) (types.Work, error) {
	var w types.Work
	var doi, title, authorsJSON, indexJSON, abstract sql.NullString
	var year sql.NullInt64
	if err := rows.Scan(&w.Discipline, &w.ID, &w.Journal, &doi, &title, &authorsJSON, &year, &indexJSON, &abstract); err != nil {
		return w, fmt.Errorf("scanning work: %w", err)
	}
	w.DOI = doi.String
	w.Title = title.String
	w.Year = int(year.Int64)
	w.Abstract = abstract.String
	if authorsJSON.String != "" {
		if err := json.Unmarshal([]byte(authorsJSON.String), &w.Authors); err != nil {
			return w, fmt.Errorf("parsing authors for %s: %w", w.ID, err)
		}
	}
	if indexJSON.String != "" {
		if err := json.Unmarshal([]byte(indexJSON.String), &w.InvertedIndex); err != nil {
			return w, fmt.Errorf("parsing inverted index for %s: %w", w.ID, err)
		}
	}
	return w, nil
}

// SetTagged stores the reconstructed abstract and keyword hits for one
// work in a single transaction, replacing any earlier hits.
func (s *Store) SetTagged(ctx context.Context, discipline, workID, abstract string, labels []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE works SET abstract = ?, tagged = 1 WHERE discipline = ? AND id = ?`,
		abstract, discipline, workID,
	); err != nil {
		return fmt.Errorf("updating work %s: %w", workID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM hits WHERE discipline = ? AND work_id = ?`, discipline, workID,
	); err != nil {
		return fmt.Errorf("clearing hits for %s: %w", workID, err)
	}

	for _, label := range labels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO hits (discipline, work_id, keyword) VALUES (?, ?, ?)`,
			discipline, workID, label,
		); err != nil {
			return fmt.Errorf("inserting hit %s/%s: %w", workID, label, err)
		}
	}

	return tx.Commit()
}

// Hit is one article-keyword pairing with the metadata the hits export
// needs.
type Hit struct {
	Journal string
	WorkID  string
	DOI     string
	Title   string
	Year    int
	Keyword string
}

// Hits returns all keyword hits for a discipline joined with work
// metadata, ordered by keyword, journal, year, then work ID.
func (s *Store) Hits(ctx context.Context, discipline string) ([]Hit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT w.journal, w.id, w.doi, w.title, w.year, h.keyword
		 FROM hits h JOIN works w ON w.discipline = h.discipline AND w.id = h.work_id
		 WHERE h.discipline = ?
		 ORDER BY h.keyword, w.journal, w.year, w.id`, discipline)
	if err != nil {
		return nil, fmt.Errorf("querying hits: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		var doi, title sql.NullString
		var year sql.NullInt64
		if err := rows.Scan(&h.Journal, &h.WorkID, &doi, &title, &year, &h.Keyword); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		h.DOI = doi.String
		h.Title = title.String
		h.Year = int(year.Int64)
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
