package types

// Angle is the light angle above the horizon, in degrees.
type Angle int32

// Degrees returns the angle as a float for trigonometry.
func (a Angle) Degrees() float64 { return float64(a) }

// Record is one parsed "position height" input line.
type Record struct {
	Position int32
	Height   uint32
}

// Header is the parsed first input line.
type Header struct {
	Angle Angle
	Count uint32
}

// Digest is a short hex identifier of an input document.
type Digest string

// String returns the string form of the digest.
func (d Digest) String() string { return string(d) }

// RunID identifies a single run in logs and summaries.
type RunID string

// String returns the string form of the run identifier.
func (id RunID) String() string { return string(id) }
