package cmd

import (
	"os"

	"github.com/grovetools/rolodex/config"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/state"
)

// storeSource describes where the starting records came from.
type storeSource struct {
	Path         string
	FromSnapshot bool
}

// loadRecords returns the snapshot contents when the snapshot exists, and
// the configured seed records otherwise.
func loadRecords(cfg *config.Config) ([]records.Record, storeSource, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, storeSource{}, err
	}
	src := storeSource{Path: cfg.StorePath(cwd)}

	if state.Exists(src.Path) {
		snap, err := state.Load(src.Path)
		if err != nil {
			return nil, src, err
		}
		src.FromSnapshot = true
		return snap.Records, src, nil
	}

	recs := make([]records.Record, 0, len(cfg.Seed))
	for _, s := range cfg.Seed {
		recs = append(recs, records.Record{
			ID:      records.ID(s.ID),
			Name:    s.Name,
			Surname: s.Surname,
		})
	}
	return recs, src, nil
}
