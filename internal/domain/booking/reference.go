package booking

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	referencePrefix      = "LR"
	referenceSuffixChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referenceSuffixLen   = 8
)

// ReferenceGenerator produces booking references.
type ReferenceGenerator interface {
	Generate() string
}

// StandardReferenceGenerator creates references in the format "LR-123456-ABCD2345":
// the last six digits of the Unix millisecond clock followed by a random suffix.
//
// Uniqueness is probabilistic and never checked against storage.
type StandardReferenceGenerator struct {
	now func() time.Time
}

// NewStandardReferenceGenerator creates a generator backed by the wall clock.
func NewStandardReferenceGenerator() *StandardReferenceGenerator {
	return &StandardReferenceGenerator{now: time.Now}
}

// Generate returns a new reference. It cannot fail.
func (g *StandardReferenceGenerator) Generate() string {
	millis := g.now().UnixMilli() % 1_000_000

	buf := make([]byte, referenceSuffixLen)
	// crypto/rand.Read never returns an error; it aborts the process instead.
	_, _ = rand.Read(buf)
	for i := range buf {
		// 256 is a multiple of the alphabet size, so the modulo is unbiased.
		buf[i] = referenceSuffixChars[int(buf[i])%len(referenceSuffixChars)]
	}

	return fmt.Sprintf("%s-%06d-%s", referencePrefix, millis, buf)
}
