package anim

// DefaultDuration is the tick count of every built-in frame
const DefaultDuration = 8

// DefaultSequences returns the built-in frame tables for an 8x4 sprite grid.
// Row 0 holds idle/startled, rows 1-2 the run cycles, row 3 scratching.
func DefaultSequences() map[Kind]Sequence {
	const d = DefaultDuration
	return map[Kind]Sequence{
		Idle: {
			Interruptible: true,
			Frames: []Frame{
				F(0, 0, d), // sit
				F(1, 0, d), // scratch 1
				F(2, 0, d), // scratch 2
				F(3, 0, d), // scratch 3
				F(4, 0, d), // yawn
				Begin(5, 0, d, 0),
				End(6, 0, d),
			},
		},
		Startled: {
			Interruptible: false,
			Frames:        []Frame{F(7, 0, d)},
		},

		RunUp:        run(0, 2),
		RunUpRight:   run(6, 1),
		RunRight:     run(4, 1),
		RunDownRight: run(2, 1),
		RunDown:      run(0, 1),
		RunDownLeft:  run(6, 2),
		RunLeft:      run(4, 2),
		RunUpLeft:    run(2, 2),

		ScratchUp:    scratch(0),
		ScratchRight: scratch(2),
		ScratchDown:  scratch(4),
		ScratchLeft:  scratch(6),
	}
}

func run(col, row uint8) Sequence {
	return Sequence{
		Interruptible: true,
		Frames:        []Frame{F(col, row, DefaultDuration), F(col+1, row, DefaultDuration)},
	}
}

func scratch(col uint8) Sequence {
	return Sequence{
		Interruptible: true,
		Frames:        []Frame{F(col, 3, DefaultDuration), F(col+1, 3, DefaultDuration)},
	}
}

var defaultCatalog = MustCatalog(DefaultSequences())

// DefaultCatalog returns the shared built-in catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
