package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"

	"flatland/internal/crypto"
	"flatland/internal/domain"
)

// hashBytes hashes raw bytes the way Fingerprinter.Sum truncates them.
func hashBytes(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:crypto.FingerprintBytes])
}

func TestFingerprinter_MatchesCanonicalBytes(t *testing.T) {
	f := crypto.NewFingerprinter()
	f.Header(domain.Header{Angle: 45, Count: 2})
	f.Record(domain.Record{Position: 0, Height: 2})
	f.Record(domain.Record{Position: 1, Height: 2})

	want := hashBytes([]byte("45 2\n0 2\n1 2\n"))
	assert.Equal(t, want, f.Sum().String())
	assert.Len(t, want, 2*crypto.FingerprintBytes)
}

func TestFingerprinter_OrderMatters(t *testing.T) {
	a := crypto.NewFingerprinter()
	a.Record(domain.Record{Position: 0, Height: 2})
	a.Record(domain.Record{Position: 1, Height: 2})

	b := crypto.NewFingerprinter()
	b.Record(domain.Record{Position: 1, Height: 2})
	b.Record(domain.Record{Position: 0, Height: 2})

	assert.NotEqual(t, a.Sum(), b.Sum())
}

func TestFingerprinter_SumIsRepeatable(t *testing.T) {
	f := crypto.NewFingerprinter()
	f.Header(domain.Header{Angle: 10, Count: 1})
	assert.Equal(t, f.Sum(), f.Sum())
}
