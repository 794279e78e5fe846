// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/layoutstat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrRunNotFound is returned by GetRun for unknown ids.
var ErrRunNotFound = errors.New("run not found")

// Store wraps SQLite access for saved analysis runs.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			layout_name TEXT NOT NULL,
			letters TEXT NOT NULL,
			corpus_path TEXT NOT NULL,
			category TEXT NOT NULL,
			chars INTEGER NOT NULL,
			score REAL NOT NULL,
			stats_json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_ngrams (
			run_id INTEGER NOT NULL,
			ngram BLOB NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, ngram)
		);`,
		`CREATE TABLE IF NOT EXISTS run_freq (
			run_id INTEGER NOT NULL,
			char INTEGER NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, char)
		);`,
		`CREATE TABLE IF NOT EXISTS run_bad_bigrams (
			run_id INTEGER NOT NULL,
			bigram BLOB NOT NULL,
			weight INTEGER NOT NULL,
			PRIMARY KEY (run_id, bigram)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout_name);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed analysis with its n-gram, frequency and
// bad-bigram tables.
func (s *Store) InsertRun(ctx context.Context, run model.Run) (int64, error) {
	payload, err := json.Marshal(run.Stats)
	if err != nil {
		return 0, fmt.Errorf("failed to encode stats: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, layout_name, letters, corpus_path, category, chars, score, stats_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.LayoutName,
		run.Letters,
		run.CorpusPath,
		run.Category.String(),
		run.Stats.Chars,
		run.Stats.Score,
		string(payload),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(run.Stats.Ngrams) > 0 {
		if err = insertRows(ctx, tx, `INSERT INTO run_ngrams (run_id, ngram, count) VALUES (?, ?, ?)`, func(exec func(args ...any) error) error {
			for ng, count := range run.Stats.Ngrams {
				if err := exec(id, ng[:], count); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return 0, err
		}
	}
	if len(run.Stats.Freq) > 0 {
		if err = insertRows(ctx, tx, `INSERT INTO run_freq (run_id, char, count) VALUES (?, ?, ?)`, func(exec func(args ...any) error) error {
			for c, count := range run.Stats.Freq {
				if err := exec(id, int64(c), count); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return 0, err
		}
	}

	if len(run.Stats.BadBigrams) > 0 {
		if err = insertRows(ctx, tx, `INSERT INTO run_bad_bigrams (run_id, bigram, weight) VALUES (?, ?, ?)`, func(exec func(args ...any) error) error {
			for bg, weight := range run.Stats.BadBigrams {
				if err := exec(id, bg[:], weight); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func insertRows(ctx context.Context, tx *sql.Tx, query string, fill func(exec func(args ...any) error) error) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	return fill(func(args ...any) error {
		_, err := stmt.ExecContext(ctx, args...)
		return err
	})
}

// ListRuns returns run summaries filtered by cfg, oldest first.
func (s *Store) ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.RunSummary, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Layout != "" {
		clauses = append(clauses, "layout_name = ?")
		args = append(args, cfg.Layout)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, created_at, layout_name, chars, score
		FROM runs
		WHERE %s
		ORDER BY created_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunSummary
	for rows.Next() {
		var r model.RunSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.LayoutName, &r.Chars, &r.Score); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		r.CreatedAt = parsed
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}
	return runs, nil
}

// GetRun loads a saved run including its tables.
func (s *Store) GetRun(ctx context.Context, id int64) (model.Run, error) {
	var run model.Run
	var createdAt, category, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, layout_name, letters, corpus_path, category, stats_json
		 FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &createdAt, &run.LayoutName, &run.Letters, &run.CorpusPath, &category, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return model.Run{}, err
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Run{}, err
	}
	if run.Category, err = model.ParseCategory(category); err != nil {
		return model.Run{}, err
	}
	stats := model.NewStats()
	if err := json.Unmarshal([]byte(payload), stats); err != nil {
		return model.Run{}, fmt.Errorf("failed to decode stats: %w", err)
	}
	if err := s.loadNgrams(ctx, id, stats); err != nil {
		return model.Run{}, err
	}
	if err := s.loadFreq(ctx, id, stats); err != nil {
		return model.Run{}, err
	}
	if err := s.loadBadBigrams(ctx, id, stats); err != nil {
		return model.Run{}, err
	}
	run.Stats = *stats
	return run, nil
}

func (s *Store) loadNgrams(ctx context.Context, id int64, stats *model.Stats) error {
	rows, err := s.db.QueryContext(ctx, `SELECT ngram, count FROM run_ngrams WHERE run_id = ?`, id)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var raw []byte
		var count int64
		if err := rows.Scan(&raw, &count); err != nil {
			return err
		}
		if len(raw) != len(model.Ngram{}) {
			return fmt.Errorf("corrupt ngram of length %d in run %d", len(raw), id)
		}
		var ng model.Ngram
		copy(ng[:], raw)
		stats.Ngrams[ng] = count
	}
	return rows.Err()
}

func (s *Store) loadFreq(ctx context.Context, id int64, stats *model.Stats) error {
	rows, err := s.db.QueryContext(ctx, `SELECT char, count FROM run_freq WHERE run_id = ?`, id)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var c, count int64
		if err := rows.Scan(&c, &count); err != nil {
			return err
		}
		stats.Freq[byte(c)] = count
	}
	return rows.Err()
}

func (s *Store) loadBadBigrams(ctx context.Context, id int64, stats *model.Stats) error {
	rows, err := s.db.QueryContext(ctx, `SELECT bigram, weight FROM run_bad_bigrams WHERE run_id = ?`, id)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var raw []byte
		var weight int64
		if err := rows.Scan(&raw, &weight); err != nil {
			return err
		}
		if len(raw) != len(model.Bigram{}) {
			return fmt.Errorf("corrupt bigram of length %d in run %d", len(raw), id)
		}
		var bg model.Bigram
		copy(bg[:], raw)
		stats.BadBigrams[bg] = weight
	}
	return rows.Err()
}
