package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/neko/internal/domain/anim"
)

// CatalogFile is the root of an animation catalog YAML file.
// Keys of Sequences are kind names as printed by anim.Kind.String.
type CatalogFile struct {
	Sequences map[string]SequenceConfig `yaml:"sequences"`
}

type SequenceConfig struct {
	Interruptible *bool         `yaml:"interruptible,omitempty"` // defaults to true
	Frames        []FrameConfig `yaml:"frames"`
}

type FrameConfig struct {
	Cell       [2]uint8 `yaml:"cell,flow"` // column, row
	Duration   uint8    `yaml:"duration"`
	Loop       string   `yaml:"loop,omitempty"` // "", "begin" or "end"
	Iterations uint8    `yaml:"iterations,omitempty"`
}

// ParseCatalog decodes YAML and builds a validated catalog.
func ParseCatalog(data []byte) (*anim.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return file.Build()
}

// Build converts the file into an anim.Catalog.
func (f CatalogFile) Build() (*anim.Catalog, error) {
	defs := make(map[anim.Kind]anim.Sequence, len(f.Sequences))

	for name, sc := range f.Sequences {
		kind, err := anim.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", anim.ErrUnknownKind, name)
		}

		seq := anim.Sequence{Interruptible: true}
		if sc.Interruptible != nil {
			seq.Interruptible = *sc.Interruptible
		}

		for i, fc := range sc.Frames {
			role, err := parseLoopRole(fc.Loop)
			if err != nil {
				return nil, fmt.Errorf("sequence %s frame %d: %w", name, i, err)
			}
			seq.Frames = append(seq.Frames, anim.Frame{
				Cell:       anim.Cell{Col: fc.Cell[0], Row: fc.Cell[1]},
				Duration:   fc.Duration,
				Loop:       role,
				Iterations: fc.Iterations,
			})
		}
		defs[kind] = seq
	}

	return anim.NewCatalog(defs)
}

// MarshalCatalog writes c in the CatalogFile YAML layout.
func MarshalCatalog(c *anim.Catalog) ([]byte, error) {
	file := CatalogFile{Sequences: make(map[string]SequenceConfig)}

	for _, kind := range anim.Kinds() {
		seq := c.Lookup(kind)
		interruptible := seq.Interruptible
		sc := SequenceConfig{Interruptible: &interruptible}
		for _, f := range seq.Frames {
			fc := FrameConfig{
				Cell:     [2]uint8{f.Cell.Col, f.Cell.Row},
				Duration: f.Duration,
			}
			if f.Loop != anim.LoopNone {
				fc.Loop = f.Loop.String()
			}
			if f.Loop == anim.LoopBegin {
				fc.Iterations = f.Iterations
			}
			sc.Frames = append(sc.Frames, fc)
		}
		file.Sequences[kind.String()] = sc
	}

	return yaml.Marshal(file)
}

func parseLoopRole(s string) (anim.LoopRole, error) {
	switch s {
	case "", "none":
		return anim.LoopNone, nil
	case "begin":
		return anim.LoopBegin, nil
	case "end":
		return anim.LoopEnd, nil
	default:
		return anim.LoopNone, fmt.Errorf("unknown loop role %q", s)
	}
}
