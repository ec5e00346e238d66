package phoneme

import (
	"errors"
	"fmt"
)

// ErrUncoverable is matched by every UncoverablePairError.
var ErrUncoverable = errors.New("uncoverable phoneme pair")

// UncoverablePairError is returned when the table has no fragment for a
// (current, next) pair. No fragment is guessed in its place.
type UncoverablePairError struct {
	Current Phoneme
	Next    Context
}

func (e *UncoverablePairError) Error() string {
	if e.Next.IsIsolated() {
		return fmt.Sprintf("uncoverable phoneme pair: no isolated form for %s", e.Current)
	}
	return fmt.Sprintf("uncoverable phoneme pair: %s followed by %s", e.Current, e.Next)
}

func (e *UncoverablePairError) Is(target error) bool {
	return target == ErrUncoverable
}
