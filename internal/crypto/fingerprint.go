package crypto

import (
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"

	"flatland/internal/domain"
)

// FingerprintBytes is the number of hash bytes kept for display (20 hex chars).
const FingerprintBytes = 10

// Fingerprinter accumulates a document's canonical form.
type Fingerprinter struct {
	h hash.Hash
}

// NewFingerprinter returns an empty Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	// New256 only fails for keys longer than 64 bytes.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return &Fingerprinter{h: h}
}

// Header adds the header line.
func (f *Fingerprinter) Header(h domain.Header) {
	fmt.Fprintf(f.h, "%d %d\n", h.Angle, h.Count)
}

// Record adds one record line.
func (f *Fingerprinter) Record(r domain.Record) {
	fmt.Fprintf(f.h, "%d %d\n", r.Position, r.Height)
}

// Sum returns the truncated hex fingerprint of everything added so far.
func (f *Fingerprinter) Sum() domain.Digest {
	sum := f.h.Sum(nil)
	return domain.Digest(hex.EncodeToString(sum[:FingerprintBytes]))
}
