package preset

import (
	"errors"
	"fmt"
	"slices"
)

// Preset names
const (
	Large  = "large"
	Tiny   = "tiny"
	Medium = "medium"

	// Default is run when no preset is named
	Default = Medium
)

var ErrUnknownPreset = errors.New("unknown preset")

// registry maps preset names to their configuration. Get hands out copies,
// so the shared schema is never modified.
var registry = map[string]Preset{
	Large:  {Name: Large, Rows: 2_000_000, Output: "datafile.txt", Schema: benchSchema},
	Tiny:   {Name: Tiny, Rows: 100, Output: "tiny.txt", Schema: benchSchema},
	Medium: {Name: Medium, Rows: 10_000, Output: "med.txt", Schema: benchSchema},
}

// Get returns a preset by name
func Get(name string) (Preset, error) {
	p, exists := registry[name]
	if !exists {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	p.Schema = slices.Clone(p.Schema)
	return p, nil
}

// List returns all preset names, sorted
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
