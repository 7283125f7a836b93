package search

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// watchlistFile is the on-disk structure of the watchlist configuration
type watchlistFile struct {
	Watchlists []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		EntityIDs   []string `yaml:"entity_ids"`
	} `yaml:"watchlists"`
}

// Watchlists maps short names to groups of vendor entity ids so callers can
// write "watchlist:<name>" inside entity_ids instead of repeating id lists
type Watchlists struct {
	groups map[string][]string
}

// LoadWatchlists reads a watchlist YAML file
func LoadWatchlists(path string) (*Watchlists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist file: %w", err)
	}

	var file watchlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse watchlist file %s: %w", path, err)
	}

	w := &Watchlists{groups: make(map[string][]string)}
	for _, entry := range file.Watchlists {
		if entry.Name == "" {
			return nil, fmt.Errorf("watchlist file %s contains an unnamed watchlist", path)
		}
		w.groups[entry.Name] = entry.EntityIDs
	}

	return w, nil
}

// Names returns the configured watchlist names
func (w *Watchlists) Names() []string {
	names := make([]string, 0, len(w.groups))
	for name := range w.groups {
		names = append(names, name)
	}
	return names
}

// resolveEntityIDs expands watchlist references in an entity id list. Plain
// ids pass through unchanged; duplicates introduced by expansion are removed.
// A reference to an unknown watchlist is a validation error.
func (w *Watchlists) resolveEntityIDs(ids []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range ids {
		name, found := strings.CutPrefix(id, WATCHLIST_PREFIX)
		if !found {
			add(id)
			continue
		}

		group, ok := w.groups[name]
		if !ok {
			return nil, newValidationError("entity_ids", "unknown watchlist %q", name)
		}
		for _, member := range group {
			add(member)
		}
	}

	return out, nil
}
