package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepwise/trace"
)

// Sentinel errors for sort execution.
var (
	// ErrNilArray is returned when the array argument is nil.
	ErrNilArray = errors.New("sorting: array is nil")

	// ErrNilTrace is returned when the trace argument is nil.
	ErrNilTrace = errors.New("sorting: trace is nil")

	// ErrUnknownKind is returned for an algorithm name outside Kinds().
	ErrUnknownKind = errors.New("sorting: unknown algorithm")
)

// Kind names a sort algorithm.
type Kind string

// Supported algorithms.
const (
	Bubble    Kind = "bubble"
	Selection Kind = "selection"
	Insertion Kind = "insertion"
	Merge     Kind = "merge"
	Heap      Kind = "heap"
)

// Kinds lists the supported algorithms in presentation order.
func Kinds() []Kind {
	return []Kind{Bubble, Selection, Insertion, Merge, Heap}
}

// ParseKind resolves a case-insensitive algorithm name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := engines[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	return k, nil
}

// Result is the outcome of a sort run.
type Result struct {
	// Status is completed or aborted.
	Status trace.Status

	// Values is the array content when the run ended; sorted iff completed.
	Values []int64

	// Origins[k] is the input index of the element in slot k.
	Origins []int

	// Comparisons and Swaps count the delivered compare and swap events.
	Comparisons int
	Swaps       int
}
