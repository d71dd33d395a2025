package blockview

import "github.com/npillmayer/bdeque"

// Occupancy classifies the fill level of a block.
type Occupancy int

// Fill levels of blocks. Underfull blocks hold fewer than Inf elements and are
// candidates for merging, near-full blocks are at least three quarters full.
const (
	Underfull Occupancy = iota
	Normal
	NearFull
)

func (o Occupancy) String() string {
	switch o {
	case Underfull:
		return "underfull"
	case NearFull:
		return "nearfull"
	}
	return "normal"
}

// Classify returns the occupancy class of a block holding size elements in a
// deque configured by cfg.
func Classify(size int, cfg bdeque.Config) Occupancy {
	sup := cfg.Sup()
	switch {
	case size < sup/4:
		return Underfull
	case 4*size >= 3*sup:
		return NearFull
	}
	return Normal
}
