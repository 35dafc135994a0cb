// Package crypto computes short, stable fingerprints of input documents.
//
// A fingerprint is a BLAKE2b-256 hash over the canonical form of the header
// and every record ("angle count\n", then "position height\n" per record),
// hex-encoded and truncated for display. Two documents that differ only in
// whitespace or ignored trailing fields share a fingerprint.
package crypto
