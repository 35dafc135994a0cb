// Package input parses the line-oriented flatland document.
//
// Format
//
//	<angle> <count>
//	<position> <height>
//	...
//
// Fields are separated by whitespace; fields past the second are ignored.
// Errors are reported as domain kinds:
//
//   - ErrIo           the stream could not be read, the header line is absent,
//     or a line is not valid UTF-8
//   - ErrMissingValue a line has fewer than two fields (including blank lines)
//   - ErrInvalidValue a field is not a number of the expected type
//
// Range checks are not performed here; they belong to the world.
package input
