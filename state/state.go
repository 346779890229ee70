// Package state persists the record store as a YAML snapshot and watches
// that snapshot for edits made outside the running process.
package state

import (
	"os"
	"path/filepath"

	"github.com/grovetools/rolodex/errors"
	"github.com/grovetools/rolodex/records"
	"gopkg.in/yaml.v3"
)

// Snapshot is the on-disk form of the store. Records keep display order.
type Snapshot struct {
	Records []records.Record `yaml:"records"`
}

// Load reads the snapshot at path.
// Returns an empty snapshot if the file doesn't exist.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, errors.SnapshotRead(path, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.SnapshotRead(path, err)
	}
	return &snap, nil
}

// Exists reports whether a snapshot file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save writes recs to path. The file is replaced atomically so a watcher
// never observes a half-written snapshot.
func Save(path string, recs []records.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.SnapshotWrite(path, err)
	}

	if recs == nil {
		recs = []records.Record{}
	}
	data, err := yaml.Marshal(Snapshot{Records: recs})
	if err != nil {
		return errors.SnapshotWrite(path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.SnapshotWrite(path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.SnapshotWrite(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.SnapshotWrite(path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.SnapshotWrite(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.SnapshotWrite(path, err)
	}
	return nil
}

// Equal reports whether two record slices have the same records in the same order.
func Equal(a, b []records.Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
