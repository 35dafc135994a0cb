package shadow

import (
	"cmp"
	"math"

	"flatland/internal/flatlander"
)

// Interval is a closed stretch of ground [Start, End] with Start <= End.
type Interval struct {
	Start float64
	End   float64
}

// Len returns the covered length.
func (i Interval) Len() float64 { return i.End - i.Start }

// Project returns the shadow cast by f under light at angleDeg degrees.
func Project(f flatlander.Flatlander, angleDeg float64) Interval {
	tan := math.Tan(angleDeg * math.Pi / 180)
	x := float64(f.Position())

	reach := math.Inf(1)
	if tan != 0 {
		reach = float64(f.Height()) / tan
	}

	if reach >= 0 {
		return Interval{Start: x, End: x + reach}
	}
	return Interval{Start: x + reach, End: x}
}

// Compare orders intervals by Start, then End. It is a total order over all
// float64 values, including infinities and NaN, so it is safe for slices.SortFunc.
func Compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
