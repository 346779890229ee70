package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/rolodex/errors"
)

var (
	validThemes  = []string{"kanagawa", "gruvbox", "terminal"}
	validKeymaps = []string{"vim", "emacs", "arrows"}
)

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.New(errors.ErrCodeConfigValidation, "version cannot be empty")
	}

	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New(errors.ErrCodeConfigValidation, "store.path cannot be empty")
	}

	seen := make(map[string]int, len(c.Seed))
	for i, rec := range c.Seed {
		if rec.ID == "" {
			continue
		}
		if j, dup := seen[rec.ID]; dup {
			return errors.Wrap(errors.DuplicateID(rec.ID), errors.ErrCodeConfigValidation,
				fmt.Sprintf("seed entries %d and %d share an id", j, i)).
				WithDetail("id", rec.ID)
		}
		seen[rec.ID] = i
	}

	if err := validateChoice("tui.theme", c.TUI.Theme, validThemes); err != nil {
		return err
	}
	if err := validateChoice("tui.keymap", c.TUI.Keymap, validKeymaps); err != nil {
		return err
	}

	return nil
}

func validateChoice(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.New(errors.ErrCodeConfigValidation,
		fmt.Sprintf("invalid %s '%s' (must be one of: %s)", field, value, strings.Join(allowed, ", "))).
		WithDetail("field", field).
		WithDetail("value", value)
}
