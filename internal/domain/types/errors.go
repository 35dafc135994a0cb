package types

// Kind classifies a failure. It carries no payload beyond the kind itself;
// display text is chosen by the presentation layer.
type Kind int

const (
	// KindIo reports a failure reading the input stream.
	KindIo Kind = iota + 1
	// KindOutOfRange reports a numeric field outside its bounds, or a world
	// that is already at capacity.
	KindOutOfRange
	// KindMissingValue reports a line with fewer fields than expected.
	KindMissingValue
	// KindInvalidValue reports a field that is not a valid number.
	KindInvalidValue
	// KindMissingLine reports fewer records than the header declared.
	KindMissingLine
)

// Error implements error with a short, stable identifier for logs.
func (k Kind) Error() string {
	switch k {
	case KindIo:
		return "io"
	case KindOutOfRange:
		return "out of range"
	case KindMissingValue:
		return "missing value"
	case KindInvalidValue:
		return "invalid value"
	case KindMissingLine:
		return "missing line"
	default:
		return "unknown"
	}
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindIo, KindOutOfRange, KindMissingValue, KindInvalidValue, KindMissingLine}
}
