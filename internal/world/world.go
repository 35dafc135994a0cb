package world

import (
	"slices"

	"flatland/internal/domain"
	"flatland/internal/flatlander"
	"flatland/internal/shadow"
)

// Bounds are inclusive.
const (
	MinAngle    domain.Angle = 10
	MaxAngle    domain.Angle = 80
	MinCapacity uint32       = 1
	MaxCapacity uint32       = 100_000
)

// slot pairs an inhabitant with the shadow it casts.
type slot struct {
	inhabitant flatlander.Flatlander
	shadow     shadow.Interval
}

// World is a bounded collection of inhabitants lit from a fixed angle.
type World struct {
	angle    domain.Angle
	capacity uint32
	slots    []slot
}

// New returns an empty world. It returns domain.ErrOutOfRange if angle or
// capacity is outside its bounds.
func New(angle domain.Angle, capacity uint32) (*World, error) {
	if angle < MinAngle || angle > MaxAngle {
		return nil, domain.ErrOutOfRange
	}
	if capacity < MinCapacity || capacity > MaxCapacity {
		return nil, domain.ErrOutOfRange
	}
	return &World{angle: angle, capacity: capacity}, nil
}

// Angle returns the light angle in degrees.
func (w *World) Angle() domain.Angle { return w.angle }

// Capacity returns the maximum number of inhabitants.
func (w *World) Capacity() uint32 { return w.capacity }

// Len returns the number of inhabitants added so far.
func (w *World) Len() int { return len(w.slots) }

// Add places a new inhabitant and records its shadow. It returns
// domain.ErrOutOfRange if the world is full or the inhabitant is invalid;
// the world is unchanged on error.
func (w *World) Add(position int32, height uint32) error {
	if len(w.slots) >= int(w.capacity) {
		return domain.ErrOutOfRange
	}
	f, err := flatlander.New(position, height)
	if err != nil {
		return err
	}
	w.slots = append(w.slots, slot{
		inhabitant: f,
		shadow:     shadow.Project(f, w.angle.Degrees()),
	})
	return nil
}

// Merge returns the union of all shadows as disjoint intervals in ascending
// order. Intervals that touch at a single point are merged.
func (w *World) Merge() []shadow.Interval {
	if len(w.slots) == 0 {
		return nil
	}

	slices.SortFunc(w.slots, func(a, b slot) int {
		return shadow.Compare(a.shadow, b.shadow)
	})

	var merged []shadow.Interval
	cur := w.slots[0].shadow
	for _, s := range w.slots[1:] {
		if s.shadow.Start <= cur.End {
			cur.End = max(cur.End, s.shadow.End)
			continue
		}
		merged = append(merged, cur)
		cur = s.shadow
	}
	return append(merged, cur)
}

// TotalShadowLength returns the length of ground covered by at least one
// shadow. It is 0 for an empty world and +Inf if any shadow is unbounded.
func (w *World) TotalShadowLength() float64 {
	return Total(w.Merge())
}

// Total sums the lengths of disjoint intervals.
func Total(merged []shadow.Interval) float64 {
	total := 0.0
	for _, iv := range merged {
		total += iv.Len()
	}
	return total
}
