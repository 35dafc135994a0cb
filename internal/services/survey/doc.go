// Package survey runs one input document through a world and reports the
// covered shadow length. It stops at the first error, which is returned
// with the offending line number and keeps its domain kind for errors.Is.
package survey
