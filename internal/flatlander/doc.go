// Package flatlander models a single inhabitant of the line: a point-width
// figure with a position on the ground and a height.
package flatlander
