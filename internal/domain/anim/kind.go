package anim

import "fmt"

// Kind identifies one animation sequence in the catalog.
type Kind uint8

const (
	Idle Kind = iota
	Startled
	RunUp
	RunUpRight
	RunRight
	RunDownRight
	RunDown
	RunDownLeft
	RunLeft
	RunUpLeft
	ScratchUp
	ScratchRight
	ScratchDown
	ScratchLeft

	kindCount
)

var kindNames = [kindCount]string{
	Idle:         "Idle",
	Startled:     "Startled",
	RunUp:        "RunUp",
	RunUpRight:   "RunUpRight",
	RunRight:     "RunRight",
	RunDownRight: "RunDownRight",
	RunDown:      "RunDown",
	RunDownLeft:  "RunDownLeft",
	RunLeft:      "RunLeft",
	RunUpLeft:    "RunUpLeft",
	ScratchUp:    "ScratchUp",
	ScratchRight: "ScratchRight",
	ScratchDown:  "ScratchDown",
	ScratchLeft:  "ScratchLeft",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsRun reports whether k is one of the eight directional run kinds
func (k Kind) IsRun() bool {
	return k >= RunUp && k <= RunUpLeft
}

// IsScratch reports whether k is one of the four edge reactions
func (k Kind) IsScratch() bool {
	return k >= ScratchUp && k <= ScratchLeft
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind resolves a name as returned by Kind.String.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation kind %q", name)
}
