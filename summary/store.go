package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Record is what the store persists: the run metadata together with the
// accumulated beam summary.
type Record struct {
	Run RunData    `yaml:"run"`
	POT POTSummary `yaml:"pot"`
}

// Store persists an accumulated POT summary in a YAML file. Concurrent
// processes are serialized through a sidecar lock file, so several jobs can
// fold their partial summaries into the same record.
type Store struct {
	path          string
	lock          *flock.Flock
	retryInterval time.Duration
}

// NewStore returns a store backed by the given file. The file does not need
// to exist yet.
func NewStore(path string) *Store {
	return &Store{
		path:          path,
		lock:          flock.New(path + ".lock"),
		retryInterval: 50 * time.Millisecond,
	}
}

// withLock runs fn while holding the exclusive file lock.
func (s *Store) withLock(ctx context.Context, fn func() error) error {
	locked, err := s.lock.TryLockContext(ctx, s.retryInterval)
	if err != nil {
		return fmt.Errorf("summary: acquiring lock for %s: %w", s.path, err)
	}
	if !locked {
		return fmt.Errorf("summary: could not lock %s", s.path)
	}
	defer s.lock.Unlock()
	return fn()
}

// read loads the current record; a missing file yields a zero record.
func (s *Store) read() (Record, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("summary: reading %s: %w", s.path, err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("summary: decoding %s: %w", s.path, err)
	}
	return rec, nil
}

// write replaces the record atomically: the new content lands in a
// temporary file first and is renamed over the old one.
func (s *Store) write(rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("summary: encoding record: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("summary: creating temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("summary: writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("summary: closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("summary: replacing %s: %w", s.path, err)
	}
	return nil
}

// Load returns the current record. A store whose file does not exist yet
// loads as a zero record.
func (s *Store) Load(ctx context.Context) (Record, error) {
	var rec Record
	err := s.withLock(ctx, func() error {
		var err error
		rec, err = s.read()
		return err
	})
	return rec, err
}

// Accumulate folds a partial summary into the stored record and returns the
// updated record. The run metadata is adopted on first write; accumulating
// under a different detector name is rejected.
func (s *Store) Accumulate(ctx context.Context, run RunData, pot POTSummary) (Record, error) {
	var rec Record
	err := s.withLock(ctx, func() error {
		var err error
		rec, err = s.read()
		if err != nil {
			return err
		}
		if rec.Run.DetectorName == "" {
			rec.Run = run
		} else if run.DetectorName != "" && run.DetectorName != rec.Run.DetectorName {
			return fmt.Errorf("summary: record %s belongs to detector %q, not %q",
				s.path, rec.Run.DetectorName, run.DetectorName)
		}
		rec.POT.Aggregate(pot)
		return s.write(rec)
	})
	return rec, err
}
