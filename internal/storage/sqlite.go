// Package storage provides SQLite-based persistence for recorded casts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/sweep"
)

// Store manages the SQLite database connection for cast history.
type Store struct {
	db *sql.DB
}

// CastRecord is one committed sweep.
type CastRecord struct {
	ID       int64
	Scene    string
	Box      geom.Box
	Delta    geom.Vec2
	HitType  string // Empty when the sweep was clear
	Normal   geom.Vec2
	Distance float64
	Collider int // Index into the scene, -1 when clear
	Source   string
	// CreatedAt is filled in by the database.
	CreatedAt time.Time
}

// Hit reports whether the cast touched anything.
func (r CastRecord) Hit() bool {
	return r.HitType != ""
}

// NewCastRecord flattens a sweep result for storage.
// The distance of a clear sweep is its full travel.
func NewCastRecord(scene, source string, res sweep.Result) CastRecord {
	rec := CastRecord{
		Scene:    scene,
		Box:      res.Start,
		Delta:    res.Delta,
		Distance: res.Travel.Len(),
		Collider: res.Index,
		Source:   source,
	}
	if res.HasHit {
		rec.HitType = res.Hit.Type.String()
		rec.Normal = res.Hit.Normal
		rec.Distance = res.Hit.Distance
	}
	return rec
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS casts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			min_x REAL NOT NULL,
			min_y REAL NOT NULL,
			max_x REAL NOT NULL,
			max_y REAL NOT NULL,
			delta_x REAL NOT NULL,
			delta_y REAL NOT NULL,
			hit_type TEXT NOT NULL DEFAULT '',
			normal_x REAL NOT NULL DEFAULT 0,
			normal_y REAL NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			collider INTEGER NOT NULL DEFAULT -1,
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_casts_scene_id ON casts(scene_id);
		CREATE INDEX IF NOT EXISTS idx_casts_hit_type ON casts(scene_id, hit_type);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCast records a cast and returns its ID.
func (s *Store) SaveCast(rec CastRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO casts
		 (scene_id, min_x, min_y, max_x, max_y, delta_x, delta_y,
		  hit_type, normal_x, normal_y, distance, collider, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Scene,
		rec.Box.Min.X(), rec.Box.Min.Y(), rec.Box.Max.X(), rec.Box.Max.Y(),
		rec.Delta.X(), rec.Delta.Y(),
		rec.HitType,
		rec.Normal.X(), rec.Normal.Y(),
		rec.Distance,
		rec.Collider,
		rec.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save cast: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const castColumns = `id, scene_id, min_x, min_y, max_x, max_y, delta_x, delta_y,
	hit_type, normal_x, normal_y, distance, collider, source, created_at`

// RecentCasts returns the newest casts across all scenes.
func (s *Store) RecentCasts(limit int) ([]CastRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryCasts(
		`SELECT `+castColumns+` FROM casts ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// CastsByScene returns the newest casts for one scene.
func (s *Store) CastsByScene(scene string, limit int) ([]CastRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryCasts(
		`SELECT `+castColumns+` FROM casts WHERE scene_id = ? ORDER BY id DESC LIMIT ?`,
		scene, limit,
	)
}

func (s *Store) queryCasts(query string, args ...any) ([]CastRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query casts: %w", err)
	}
	defer rows.Close()

	var records []CastRecord
	for rows.Next() {
		var (
			r                              CastRecord
			minX, minY, maxX, maxY, dx, dy float64
			nx, ny                         float64
			createdAt                      any
		)
		if err := rows.Scan(&r.ID, &r.Scene, &minX, &minY, &maxX, &maxY, &dx, &dy,
			&r.HitType, &nx, &ny, &r.Distance, &r.Collider, &r.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Box = geom.NewBox(minX, minY, maxX, maxY)
		r.Delta = geom.V(dx, dy)
		r.Normal = geom.V(nx, ny)
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HitStats counts casts per hit type for a scene, or for every scene when
// scene is empty. Clear sweeps are counted under "none".
func (s *Store) HitStats(scene string) (map[string]int, error) {
	query := `SELECT hit_type, COUNT(*) FROM casts GROUP BY hit_type`
	var args []any
	if scene != "" {
		query = `SELECT hit_type, COUNT(*) FROM casts WHERE scene_id = ? GROUP BY hit_type`
		args = append(args, scene)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query hit stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var hitType string
		var n int
		if err := rows.Scan(&hitType, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if hitType == "" {
			hitType = "none"
		}
		stats[hitType] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// SceneStats contains aggregated statistics for one scene.
type SceneStats struct {
	Scene       string
	Casts       int
	Hits        int
	AvgDistance float64
	LastCast    time.Time
}

// AllSceneStats returns statistics for every scene that has casts.
func (s *Store) AllSceneStats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), SUM(CASE WHEN hit_type != '' THEN 1 ELSE 0 END),
		        AVG(distance), MAX(created_at)
		 FROM casts
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var last any
		if err := rows.Scan(&st.Scene, &st.Casts, &st.Hits, &st.AvgDistance, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastCast = parseTimestamp(last)
		stats[st.Scene] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearCasts deletes the casts of one scene, or all casts when scene is empty.
// Returns how many rows were removed.
func (s *Store) ClearCasts(scene string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if scene == "" {
		res, err = s.db.Exec("DELETE FROM casts")
	} else {
		res, err = s.db.Exec("DELETE FROM casts WHERE scene_id = ?", scene)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear casts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared casts: %w", err)
	}
	return n, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
