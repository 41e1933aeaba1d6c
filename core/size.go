package core

import "github.com/lixenwraith/arena/constants"

// Size is the odd edge length of an entity's square footprint
type Size int

const (
	MinSize Size = constants.MinSize
	MaxSize Size = constants.MaxSize
)

// ClampSize forces n into [MinSize, MaxSize], rounding even values down
func ClampSize(n int) Size {
	if n < int(MinSize) {
		return MinSize
	}
	if n > int(MaxSize) {
		return MaxSize
	}
	if n%2 == 0 {
		n--
	}
	return Size(n)
}

// Grow returns the next size up, saturating at MaxSize
func (s Size) Grow() Size {
	return ClampSize(int(s) + constants.SizeStep)
}

// Shrink returns the next size down, saturating at MinSize
func (s Size) Shrink() Size {
	return ClampSize(int(s) - constants.SizeStep)
}
