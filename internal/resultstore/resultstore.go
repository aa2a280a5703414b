// Package resultstore persists analysis runs to a local SQLite database so
// that tracks analyzed over a season can be compared later.
package resultstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver

	"github.com/sailhq/windward/schema"
)

// Table names for run tracking.
const (
	analysisRunsTable   = "windward_analysis_runs"
	segmentMetricsTable = "windward_segment_metrics"
)

// RunRecord is one persisted analysis run.
type RunRecord struct {
	RunID         int64
	GPXPath       string
	RunTime       time.Time
	WindDirection float64
	WindKnown     bool
	WindMethod    string
	NumPoints     int
	NumTurns      int
	NumSegments   int
	ConfigParams  string // JSON-encoded parameters
}

// Store wraps the SQLite connection used for run tracking.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and ensures
// the run tracking tables exist.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create run tracking tables: %w", err)
	}

	return &Store{db: db}, nil
}

// createTables creates the run tracking tables.
func createTables(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{analysisRunsTable, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				gpx_path TEXT NOT NULL,
				run_time TEXT NOT NULL,
				wind_direction REAL NOT NULL,
				wind_known INTEGER NOT NULL,
				wind_method TEXT NOT NULL,
				num_points INTEGER NOT NULL,
				num_turns INTEGER NOT NULL,
				num_segments INTEGER NOT NULL,
				config_params TEXT
			);
		`, analysisRunsTable)},
		{segmentMetricsTable, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				segment_index INTEGER NOT NULL,
				kind TEXT NOT NULL,
				num_points INTEGER NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT NOT NULL,
				duration_s REAL NOT NULL,
				distance_m REAL NOT NULL,
				avg_speed_knots REAL NOT NULL,
				bearing REAL NOT NULL,
				dominant_tack TEXT,
				relative_wind_angle REAL,
				point_of_sail TEXT,
				PRIMARY KEY (run_id, segment_index)
			);
		`, segmentMetricsTable)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// SaveAnalysis records one full analysis run and its per-segment metrics.
// It returns the run ID assigned by the database.
func (s *Store) SaveAnalysis(gpxPath string, runTime time.Time, result *schema.AnalysisResult, configParams map[string]any) (int64, error) {
	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (gpx_path, run_time, wind_direction, wind_known, wind_method,
		                num_points, num_turns, num_segments, config_params)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, analysisRunsTable)

	res, err := s.db.Exec(query,
		gpxPath,
		runTime.Format(time.RFC3339Nano),
		result.Wind.Direction,
		result.Wind.Known,
		string(result.Wind.Method),
		len(result.Points),
		len(result.Turns),
		len(result.Segments),
		string(configJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run ID: %w", err)
	}

	for _, m := range result.Metrics {
		if err := s.insertSegmentMetrics(runID, m); err != nil {
			return 0, err
		}
	}

	return runID, nil
}

// insertSegmentMetrics stores the metrics row for one segment.
func (s *Store) insertSegmentMetrics(runID int64, m schema.SegmentMetrics) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, segment_index, kind, num_points, start_time, end_time,
		                duration_s, distance_m, avg_speed_knots, bearing,
		                dominant_tack, relative_wind_angle, point_of_sail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, segmentMetricsTable)

	_, err := s.db.Exec(query,
		runID,
		m.Index,
		string(m.Kind),
		m.NumPoints,
		m.StartTime.Format(time.RFC3339Nano),
		m.EndTime.Format(time.RFC3339Nano),
		m.Duration,
		m.Distance,
		m.AvgSpeedKnots,
		m.Bearing,
		string(m.DominantTack),
		m.RelativeWindAngle,
		string(m.PointOfSail),
	)
	if err != nil {
		return fmt.Errorf("failed to insert segment metrics: %w", err)
	}
	return nil
}

// GetAllRuns retrieves all persisted analysis runs, oldest first.
func (s *Store) GetAllRuns() ([]RunRecord, error) {
	query := fmt.Sprintf(`
		SELECT run_id, gpx_path, run_time, wind_direction, wind_known, wind_method,
		       num_points, num_turns, num_segments, config_params
		FROM %s ORDER BY run_id
	`, analysisRunsTable)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []RunRecord
	for rows.Next() {
		var record RunRecord
		var runTimeStr string
		if err := rows.Scan(&record.RunID, &record.GPXPath, &runTimeStr, &record.WindDirection,
			&record.WindKnown, &record.WindMethod, &record.NumPoints, &record.NumTurns,
			&record.NumSegments, &record.ConfigParams); err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		runTime, err := time.Parse(time.RFC3339Nano, runTimeStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run_time: %w", err)
		}
		record.RunTime = runTime
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis runs: %w", err)
	}

	return results, nil
}

// GetSegmentMetrics retrieves the stored metrics for one run.
func (s *Store) GetSegmentMetrics(runID int64) ([]schema.SegmentMetrics, error) {
	query := fmt.Sprintf(`
		SELECT segment_index, kind, num_points, start_time, end_time,
		       duration_s, distance_m, avg_speed_knots, bearing,
		       dominant_tack, relative_wind_angle, point_of_sail
		FROM %s WHERE run_id = ? ORDER BY segment_index
	`, segmentMetricsTable)

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SegmentMetrics
	for rows.Next() {
		var m schema.SegmentMetrics
		var kind, tack, pos string
		var startStr, endStr string
		if err := rows.Scan(&m.Index, &kind, &m.NumPoints, &startStr, &endStr,
			&m.Duration, &m.Distance, &m.AvgSpeedKnots, &m.Bearing,
			&tack, &m.RelativeWindAngle, &pos); err != nil {
			return nil, fmt.Errorf("failed to scan segment metrics: %w", err)
		}
		m.Kind = schema.SegmentKind(kind)
		m.DominantTack = schema.Tack(tack)
		m.PointOfSail = schema.PointOfSail(pos)
		if m.StartTime, err = time.Parse(time.RFC3339Nano, startStr); err != nil {
			return nil, fmt.Errorf("failed to parse start_time: %w", err)
		}
		if m.EndTime, err = time.Parse(time.RFC3339Nano, endStr); err != nil {
			return nil, fmt.Errorf("failed to parse end_time: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segment metrics: %w", err)
	}

	return results, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
