package librepcb

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource allocates the identifiers attached to every structural node of a
// generated document. Builders call NewID in document order, so a
// deterministic source yields reproducible documents.
type IDSource interface {
	NewID() string
}

// RandomIDs allocates random version 4 UUIDs. It is safe for concurrent use
// and is the source used outside of tests.
type RandomIDs struct{}

// NewID returns a fresh random UUID in canonical hyphenated form.
func (RandomIDs) NewID() string {
	return uuid.NewString()
}

// SequentialIDs allocates a fixed, predictable series of UUID-shaped
// identifiers ("00000001-...", "00000002-...", ...). It exists for tests and
// reproducible runs and is not safe for concurrent use.
type SequentialIDs struct {
	n int
}

// NewSequentialIDs returns a source whose first identifier ends in ...0001.
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

// NewID returns the next identifier in the series.
func (s *SequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", s.n, s.n)
}
