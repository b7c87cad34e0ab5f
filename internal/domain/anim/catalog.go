package anim

import (
	"errors"
	"fmt"
)

// Catalog construction errors
var (
	ErrMissingSequence = errors.New("missing animation sequence")
	ErrUnknownKind     = errors.New("unknown animation kind")
	ErrEmptySequence   = errors.New("animation sequence has no frames")
	ErrZeroDuration    = errors.New("frame duration must be at least 1 tick")
	ErrLoopEndNoBegin  = errors.New("loop end without a preceding loop begin")
	ErrUnclosedLoop    = errors.New("loop begin without a matching loop end")
)

// Sequence is a named, ordered list of frames.
// An interruptible sequence may be cut short by a direction change;
// otherwise it must reach the last tick of its final frame first.
type Sequence struct {
	Frames        []Frame
	Interruptible bool

	// heads[i] is the loop head index for a LoopEnd frame at i, -1 elsewhere
	heads []int
}

// Len returns the number of frames
func (s *Sequence) Len() int {
	return len(s.Frames)
}

// LoopHead returns the index of the LoopBegin frame closing at end.
func (s *Sequence) LoopHead(end int) int {
	return s.heads[end]
}

// Catalog is the read-only table of animation sequences, one per Kind.
// It is safe to share between pets.
type Catalog struct {
	seqs [kindCount]*Sequence
}

// NewCatalog validates defs and builds a catalog. Every Kind must be present.
func NewCatalog(defs map[Kind]Sequence) (*Catalog, error) {
	c := &Catalog{}

	for kind := range defs {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
		}
	}

	for _, kind := range Kinds() {
		def, ok := defs[kind]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingSequence, kind)
		}
		seq, err := buildSequence(def)
		if err != nil {
			return nil, fmt.Errorf("sequence %s: %w", kind, err)
		}
		c.seqs[kind] = seq
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
func MustCatalog(defs map[Kind]Sequence) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the sequence for kind. Panics if kind is not declared.
func (c *Catalog) Lookup(kind Kind) *Sequence {
	if !kind.Valid() {
		panic(fmt.Sprintf("anim: lookup of undeclared kind %d", kind))
	}
	return c.seqs[kind]
}

func buildSequence(def Sequence) (*Sequence, error) {
	if len(def.Frames) == 0 {
		return nil, ErrEmptySequence
	}

	frames := make([]Frame, len(def.Frames))
	copy(frames, def.Frames)
	heads := make([]int, len(frames))

	open := -1
	for i, f := range frames {
		heads[i] = -1
		if f.Duration == 0 {
			return nil, fmt.Errorf("frame %d: %w", i, ErrZeroDuration)
		}
		switch f.Loop {
		case LoopBegin:
			if open >= 0 {
				return nil, fmt.Errorf("frame %d: %w", open, ErrUnclosedLoop)
			}
			open = i
		case LoopEnd:
			if open < 0 {
				return nil, fmt.Errorf("frame %d: %w", i, ErrLoopEndNoBegin)
			}
			heads[i] = open
			open = -1
		}
	}
	if open >= 0 {
		return nil, fmt.Errorf("frame %d: %w", open, ErrUnclosedLoop)
	}

	return &Sequence{
		Frames:        frames,
		Interruptible: def.Interruptible,
		heads:         heads,
	}, nil
}
