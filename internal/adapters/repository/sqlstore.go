package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go driver, no cgo

	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/scoring"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/pkg/metrics"
)

// SQLite-backed Store implementation.
//
// RankedScores pushes the scoring arithmetic into the database: one
// set-at-a-time SELECT computes every candidate's score without
// materializing raw vectors in the process. The SQL mirrors the domain
// scorer exactly - same tier constants, same normalizer, same ROUND
// semantics (half away from zero on both sides).
//
// Every query is parameterized; no value is ever concatenated into SQL
// text. A single connection serializes access so each bulk read sees a
// consistent snapshot.

const schema = `
CREATE TABLE IF NOT EXISTS vectors (
	entity_id  TEXT PRIMARY KEY,
	c1         REAL NOT NULL,
	c2         REAL NOT NULL,
	c3         REAL NOT NULL,
	c4         REAL NOT NULL,
	c5         REAL NOT NULL,
	updated_at INTEGER NOT NULL
);`

const upsertQuery = `
INSERT INTO vectors (entity_id, c1, c2, c3, c4, c5, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7)
ON CONFLICT(entity_id) DO UPDATE SET
	c1 = excluded.c1,
	c2 = excluded.c2,
	c3 = excluded.c3,
	c4 = excluded.c4,
	c5 = excluded.c5,
	updated_at = excluded.updated_at;`

const vectorQuery = `
SELECT c1, c2, c3, c4, c5 FROM vectors WHERE entity_id = ?1;`

const allVectorsQuery = `
SELECT entity_id, c1, c2, c3, c4, c5, updated_at
FROM vectors
ORDER BY entity_id ASC;`

// rankedWeightedQuery binds: ?1..?5 reference components, ?6 tier
// threshold, ?7 small weight, ?8 large weight, ?9 max total distance,
// ?10 score precision, ?11 reference id, ?12 limit.
const rankedWeightedQuery = `
SELECT entity_id,
       ROUND((1.0 - (
         CASE WHEN ABS(c1 - ?1) <= ?6 THEN ABS(c1 - ?1) * ?7 ELSE ABS(c1 - ?1) * ?8 END +
         CASE WHEN ABS(c2 - ?2) <= ?6 THEN ABS(c2 - ?2) * ?7 ELSE ABS(c2 - ?2) * ?8 END +
         CASE WHEN ABS(c3 - ?3) <= ?6 THEN ABS(c3 - ?3) * ?7 ELSE ABS(c3 - ?3) * ?8 END +
         CASE WHEN ABS(c4 - ?4) <= ?6 THEN ABS(c4 - ?4) * ?7 ELSE ABS(c4 - ?4) * ?8 END +
         CASE WHEN ABS(c5 - ?5) <= ?6 THEN ABS(c5 - ?5) * ?7 ELSE ABS(c5 - ?5) * ?8 END
       ) / ?9) * 100.0, ?10) AS score
FROM vectors
WHERE entity_id <> ?11
ORDER BY score DESC, entity_id ASC
LIMIT ?12;`

// rankedNaiveQuery binds: ?1..?5 reference components, ?6 max total
// distance, ?7 score precision, ?8 reference id, ?9 limit.
const rankedNaiveQuery = `
SELECT entity_id,
       ROUND((1.0 - (
         ABS(c1 - ?1) + ABS(c2 - ?2) + ABS(c3 - ?3) + ABS(c4 - ?4) + ABS(c5 - ?5)
       ) / ?6) * 100.0, ?7) AS score
FROM vectors
WHERE entity_id <> ?8
ORDER BY score DESC, entity_id ASC
LIMIT ?9;`

// SQLStore persists profiles in SQLite and ranks candidates in-database.
type SQLStore struct {
	db      *sql.DB
	variant scoring.Variant
}

// NewSQLStore opens (or creates) the database at path and prepares the
// schema. Use ":memory:" for an ephemeral store.
func NewSQLStore(ctx context.Context, path string, opts ...Option) (*SQLStore, error) {
	cfg := newSettings(opts...)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection: serialized writes and snapshot-consistent bulk reads.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare schema: %w", err)
	}

	return &SQLStore{db: db, variant: cfg.variant}, nil
}

// PutVector creates or replaces the vector owned by entityID.
func (s *SQLStore) PutVector(ctx context.Context, entityID string, v vector.Vector) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if len(v) != vector.Dimension {
		return fmt.Errorf("put %q: %w: got %d components, want %d",
			entityID, vector.ErrDimension, len(v), vector.Dimension)
	}

	_, err := s.db.ExecContext(ctx, upsertQuery,
		entityID, v[0], v[1], v[2], v[3], v[4], time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("put %q: %w", entityID, err)
	}

	metrics.UpdateStoreRecordsTotal(s.Count(ctx))
	return nil
}

// Vector returns the vector owned by entityID.
func (s *SQLStore) Vector(ctx context.Context, entityID string) (vector.Vector, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	v := make(vector.Vector, vector.Dimension)
	err := s.db.QueryRowContext(ctx, vectorQuery, entityID).
		Scan(&v[0], &v[1], &v[2], &v[3], &v[4])
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, fmt.Errorf("vector for %q: %w", entityID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("vector for %q: %w", entityID, err)
	}
	return v, nil
}

// AllVectors returns every stored profile in one bulk read.
func (s *SQLStore) AllVectors(ctx context.Context) ([]model.Profile, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	rows, err := s.db.QueryContext(ctx, allVectorsQuery)
	if err != nil {
		return nil, fmt.Errorf("bulk read: %w", err)
	}
	defer rows.Close()

	var out []model.Profile
	for rows.Next() {
		v := make(vector.Vector, vector.Dimension)
		var p model.Profile
		var updatedAt int64
		if err := rows.Scan(&p.EntityID, &v[0], &v[1], &v[2], &v[3], &v[4], &updatedAt); err != nil {
			return nil, fmt.Errorf("bulk read scan: %w", err)
		}
		p.Vector = v
		p.UpdatedAt = time.Unix(0, updatedAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bulk read: %w", err)
	}
	return out, nil
}

// RankedScores computes every candidate's score inside the database.
func (s *SQLStore) RankedScores(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}

	ref, err := s.Vector(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	switch s.variant {
	case scoring.Naive:
		rows, err = s.db.QueryContext(ctx, rankedNaiveQuery,
			ref[0], ref[1], ref[2], ref[3], ref[4],
			vector.MaxTotalDistance, scoring.ScorePrecision,
			referenceID, n)
	default:
		rows, err = s.db.QueryContext(ctx, rankedWeightedQuery,
			ref[0], ref[1], ref[2], ref[3], ref[4],
			scoring.TierThreshold, scoring.SmallWeight, scoring.LargeWeight,
			vector.MaxTotalDistance, scoring.ScorePrecision,
			referenceID, n)
	}
	if err != nil {
		return nil, fmt.Errorf("ranked read for %q: %w", referenceID, err)
	}
	defer rows.Close()

	var out []model.EntityScore
	for rows.Next() {
		var es model.EntityScore
		if err := rows.Scan(&es.EntityID, &es.Score); err != nil {
			return nil, fmt.Errorf("ranked read scan: %w", err)
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ranked read for %q: %w", referenceID, err)
	}
	return out, nil
}

// Delete removes the entity and its vector together.
func (s *SQLStore) Delete(ctx context.Context, entityID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE entity_id = ?1;`, entityID)
	if err != nil {
		return fmt.Errorf("delete %q: %w", entityID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", entityID, err)
	}
	if affected == 0 {
		metrics.RecordErrorByComponent("repository", "not_found")
		return fmt.Errorf("delete %q: %w", entityID, ErrNotFound)
	}
	metrics.UpdateStoreRecordsTotal(s.Count(ctx))
	return nil
}

// Count returns the number of entities with a stored vector.
func (s *SQLStore) Count(ctx context.Context) int {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vectors;`).Scan(&count); err != nil {
		return 0
	}
	return count
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
