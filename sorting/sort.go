package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// engines maps each Kind to its implementation.
var engines = map[Kind]func(*sorter) error{
	Bubble:    (*sorter).bubble,
	Selection: (*sorter).selection,
	Insertion: (*sorter).insertion,
	Merge:     (*sorter).mergeSort,
	Heap:      (*sorter).heapSort,
}

// Sort runs the algorithm kind over arr, reporting every step on tr.
//
// The array is claimed for the duration of the run; a second run on the same
// array, or on a busy trace handle, is rejected with trace.ErrRunInProgress
// before any event or mutation. Cancellation is not an error: the run stops
// at its next suspension point and Result.Status is trace.StatusAborted.
func Sort(arr *core.Array, kind Kind, tr *trace.Trace) (*Result, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	if tr == nil {
		return nil, ErrNilTrace
	}
	run, ok := engines[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !arr.TryAcquire() {
		return nil, fmt.Errorf("%w: %w", trace.ErrRunInProgress, core.ErrArrayBusy)
	}
	defer arr.Release()
	if err := tr.Begin("sort/" + string(kind)); err != nil {
		return nil, err
	}

	s := &sorter{a: arr, tr: tr}
	var err error
	if arr.Len() > 0 {
		if err = run(s); err == nil {
			err = tr.Emit(trace.Done(int64(s.swaps)))
		}
	}
	status, err := trace.Outcome(err)
	tr.End(status)
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:      status,
		Values:      arr.Values(),
		Origins:     arr.Origins(),
		Comparisons: s.cmps,
		Swaps:       s.swaps,
	}, nil
}

// sorter carries the per-run state shared by all algorithms.
type sorter struct {
	a     *core.Array
	tr    *trace.Trace
	cmps  int
	swaps int
}

// compare reports a comparison of slots i and j.
func (s *sorter) compare(i, j int) error {
	return s.tr.Commit(trace.Compare(i, j), func() { s.cmps++ })
}

// swap exchanges slots i and j; the mutation happens only if the run is live.
func (s *sorter) swap(i, j int) error {
	var swapErr error
	err := s.tr.Commit(trace.Swap(i, j), func() {
		swapErr = s.a.Swap(i, j)
		s.swaps++
	})
	if swapErr != nil {
		return swapErr
	}

	return err
}

// final reports that slot k holds its final value, brought from slot from.
func (s *sorter) final(k, from int) error {
	return s.tr.Emit(trace.SetFinal(k, from, s.a.At(k)))
}
