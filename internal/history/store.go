package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/labloom-cli/internal/extract"
	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/google/uuid"
)

const runExt = ".json"

// ErrNotFound is returned when no run with the requested ID exists.
var ErrNotFound = errors.New("run not found")

// Store persists runs as one JSON file per run under a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the on-disk location of the store.
func (s *Store) Dir() string { return s.dir }

// Save records a new run and returns it with its assigned ID.
func (s *Store) Save(source string, threshold float64, res *extract.Result) (*Run, error) {
	if s.dir == "" {
		return nil, errors.New("history directory not set")
	}
	if res == nil {
		return nil, errors.New("nothing to save: result is nil")
	}
	if err := utils.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	run := &Run{
		ID:        uuid.NewString(),
		Source:    source,
		Threshold: threshold,
		CreatedAt: time.Now().UTC(),
		Result:    res,
	}
	data, err := utils.PrettyJSON(run)
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(s.path(run.ID), data); err != nil {
		return nil, err
	}
	return run, nil
}

// Load reads a run by ID.
func (s *Store) Load(id string) (*Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", id, err)
	}
	b, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read run: %w", err)
	}
	var run Run
	if err := json.Unmarshal(b, &run); err != nil {
		return nil, fmt.Errorf("parse run %s: %w", id, err)
	}
	return &run, nil
}

// List returns all saved runs, newest first. Files that are not runs are skipped.
func (s *Store) List() ([]*Run, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	var runs []*Run
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), runExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), runExt)
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		run, err := s.Load(id)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+runExt)
}
