package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxHistory bounds the number of finished runs kept on disk.
const MaxHistory = 50

// RunRecord describes one finished run.
type RunRecord struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Ticks     int       `json:"ticks"`
	Cause     string    `json:"cause"`
}

// Duration is the wall-clock length of the run.
func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

type GameStats struct {
	HighScore int         `json:"highScore"`
	Runs      []RunRecord `json:"runs"`
}

// StateManager persists the best score and recent runs as a JSON file.
// It is safe for concurrent use.
type StateManager struct {
	mu sync.RWMutex
	// saveMu serializes writers of the .tmp file and the rename.
	saveMu    sync.Mutex
	path      string
	highScore int
	runs      []RunRecord
}

// NewStateManager opens the store at path. A missing file yields an empty
// store; an unreadable or corrupt one is an error.
func NewStateManager(path string) (*StateManager, error) {
	sm := &StateManager{
		path: path,
		runs: make([]RunRecord, 0),
	}

	if err := sm.LoadStats(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return sm, nil
}

func (sm *StateManager) Path() string {
	return sm.path
}

// SaveStats writes the store atomically through a temp file next to it.
func (sm *StateManager) SaveStats() error {
	sm.saveMu.Lock()
	defer sm.saveMu.Unlock()

	sm.mu.RLock()
	stats := GameStats{
		HighScore: sm.highScore,
		Runs:      sm.runs,
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	sm.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp := sm.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	if err := os.Rename(tmp, sm.path); err != nil {
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}

func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode %s: %w", sm.path, err)
	}
	if stats.HighScore < 0 {
		stats.HighScore = 0
	}

	sm.mu.Lock()
	sm.highScore = stats.HighScore
	sm.runs = stats.Runs
	if sm.runs == nil {
		sm.runs = make([]RunRecord, 0)
	}
	sm.mu.Unlock()
	return nil
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

// SetHighScore stores score as the best score and writes the file.
// Negative scores are ignored.
func (sm *StateManager) SetHighScore(score int) error {
	if score < 0 {
		return nil
	}
	sm.mu.Lock()
	sm.highScore = score
	sm.mu.Unlock()
	return sm.SaveStats()
}

// RecordRun appends a finished run, dropping the oldest beyond MaxHistory.
func (sm *StateManager) RecordRun(run RunRecord) error {
	sm.mu.Lock()
	sm.runs = append(sm.runs, run)
	if len(sm.runs) > MaxHistory {
		sm.runs = sm.runs[len(sm.runs)-MaxHistory:]
	}
	sm.mu.Unlock()
	return sm.SaveStats()
}

// GetRuns returns finished runs, oldest first.
func (sm *StateManager) GetRuns() []RunRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	runs := make([]RunRecord, len(sm.runs))
	copy(runs, sm.runs)
	return runs
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	scores := make([]int, len(sm.runs))
	for i, run := range sm.runs {
		scores[i] = run.Score
	}
	return scores
}

// AverageScore is the mean score over the kept history, 0 when empty.
func (sm *StateManager) AverageScore() float64 {
	scores := sm.GetScoreHistory()
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
