// Package snapshot reads and writes the JSON blob that holds every schedule
// of a local workspace.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey names the snapshot blob.
const StorageKey = "schedule-builder-data"

var now = time.Now

// Decode reads a JSON array of schedules and fills in what older snapshots
// omit: timestamps default to now, slots to an empty list.
func Decode(r io.Reader) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	if err := json.NewDecoder(r).Decode(&schedules); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Schedule{}, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}
	if schedules == nil {
		return []domain.Schedule{}, nil
	}

	ts := now().UTC()
	for i := range schedules {
		normalize(&schedules[i], ts)
	}
	return schedules, nil
}

func normalize(s *domain.Schedule, ts time.Time) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = ts
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = ts
	}
	if s.ViewType == "" {
		s.ViewType = domain.ViewWeek
	}
	if s.TimeSlots == nil {
		s.TimeSlots = []domain.TimeSlot{}
	}
	for j := range s.TimeSlots {
		slot := &s.TimeSlots[j]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		if slot.Category == "" {
			slot.Category = domain.CategoryOther
		}
		slot.ScheduleID = s.ID
	}
}

// Encode writes schedules as a JSON array.
func Encode(w io.Writer, schedules []domain.Schedule) error {
	if schedules == nil {
		schedules = []domain.Schedule{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schedules)
}

// FileStore keeps the snapshot in <Dir>/<StorageKey>.json.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Dir: dir}
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return filepath.Join(s.Dir, StorageKey+".json")
}

// Load returns the stored schedules; a missing file is an empty workspace.
func (s *FileStore) Load() ([]domain.Schedule, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Schedule{}, nil
		}
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Save replaces the snapshot atomically via a temp file in the same directory.
func (s *FileStore) Save(schedules []domain.Schedule) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, StorageKey+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, schedules); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return err
	}

	zap.L().Debug("snapshot saved", zap.String("path", s.Path()), zap.Int("schedules", len(schedules)))
	return nil
}

// Clear removes the snapshot file. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
