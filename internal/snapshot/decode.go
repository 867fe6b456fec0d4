package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// document mirrors types.State with every field required. Pointers tell a
// missing key apart from a zero value.
type document struct {
	Entries         *[]entryDocument `yaml:"entries"`
	Exit            *bool            `yaml:"exit"`
	ManifestVersion *uint            `yaml:"manifest_version"`
}

type entryDocument struct {
	Name        *string `yaml:"name"`
	Description *string `yaml:"description"`
}

// Decode parses a state file. Every field of the state and of each entry
// must be present; unknown keys are ignored. Failures wrap ErrSnapshotParse.
func Decode(data []byte) (*types.State, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSnapshotParse, err)
	}

	switch {
	case doc.Entries == nil:
		return nil, missingField("entries")
	case doc.Exit == nil:
		return nil, missingField("exit")
	case doc.ManifestVersion == nil:
		return nil, missingField("manifest_version")
	}

	entries := make([]types.Entry, 0, len(*doc.Entries))
	for i, e := range *doc.Entries {
		if e.Name == nil {
			return nil, missingField(fmt.Sprintf("entries[%d].name", i))
		}
		if e.Description == nil {
			return nil, missingField(fmt.Sprintf("entries[%d].description", i))
		}
		entries = append(entries, types.NewEntry(*e.Name, *e.Description))
	}

	return &types.State{
		Entries:         entries,
		Exit:            *doc.Exit,
		ManifestVersion: *doc.ManifestVersion,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing field %q", types.ErrSnapshotParse, name)
}
