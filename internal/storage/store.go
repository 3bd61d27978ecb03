package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/orbit"
)

// Store persists finished runs under a base directory, one subdirectory per
// run holding metadata.json and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Planet        string             `json:"planet"`
	Method        string             `json:"method"`
	Timestamp     time.Time          `json:"timestamp"`
	Dt            float64            `json:"dt_s"`
	Steps         int                `json:"steps"`
	AphelionM     float64            `json:"aphelion_m"`
	AphelionIndex int                `json:"aphelion_index"`
	AphelionSpeed float64            `json:"aphelion_speed_ms"`
	PerihelionM   float64            `json:"perihelion_m"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// Save writes one run and returns its id.
func (s *Store) Save(planet, method string, traj *orbit.Trajectory, ap, peri apsis.Result, runMetrics map[string]float64) (string, error) {
	// Nanoseconds keep back-to-back runs of the same planet and method from
	// colliding on one directory.
	runID := fmt.Sprintf("%s_%s_%d", planet, method, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Planet:        planet,
		Method:        method,
		Timestamp:     time.Now(),
		Dt:            traj.Dt,
		Steps:         traj.Len(),
		AphelionM:     ap.Distance,
		AphelionIndex: ap.Index,
		AphelionSpeed: ap.Speed(),
		PerihelionM:   peri.Distance,
		Metrics:       runMetrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "rx", "ry", "vx", "vy"}); err != nil {
		return "", err
	}
	for i := 0; i < traj.Len(); i++ {
		row := []string{
			formatFloat(traj.Time(i)),
			formatFloat(traj.R[i].X()),
			formatFloat(traj.R[i].Y()),
			formatFloat(traj.V[i].X()),
			formatFloat(traj.V[i].Y()),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a stored trajectory back into memory.
func (s *Store) LoadTrajectory(runID string) (*orbit.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("run %s: empty trajectory file", runID)
	}

	rows := records[1:] // skip header
	traj := orbit.NewTrajectory(len(rows), meta.Dt)
	for i, row := range rows {
		if len(row) != 5 {
			return nil, fmt.Errorf("run %s: row %d has %d fields, want 5", runID, i+1, len(row))
		}
		vals := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
			}
			vals[j] = v
		}
		traj.R[i] = mgl64.Vec2{vals[0], vals[1]}
		traj.V[i] = mgl64.Vec2{vals[2], vals[3]}
	}
	return traj, nil
}
