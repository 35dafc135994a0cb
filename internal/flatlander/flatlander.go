package flatlander

import "flatland/internal/domain"

// Bounds are inclusive.
const (
	MinPosition int32  = 0
	MaxPosition int32  = 300_000
	MinHeight   uint32 = 1
	MaxHeight   uint32 = 1000
)

// Flatlander is an immutable inhabitant.
type Flatlander struct {
	position int32
	height   uint32
}

// New validates position and height and returns the inhabitant.
// It returns domain.ErrOutOfRange if either value is outside its bounds.
func New(position int32, height uint32) (Flatlander, error) {
	if position < MinPosition || position > MaxPosition {
		return Flatlander{}, domain.ErrOutOfRange
	}
	if height < MinHeight || height > MaxHeight {
		return Flatlander{}, domain.ErrOutOfRange
	}
	return Flatlander{position: position, height: height}, nil
}

// Position returns the ground coordinate.
func (f Flatlander) Position() int32 { return f.position }

// Height returns the height above the ground.
func (f Flatlander) Height() uint32 { return f.height }
