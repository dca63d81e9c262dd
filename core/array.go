package core

import "fmt"

// Array is the ArrayModel: a fixed-length sequence of int64 values mutated in
// place by sort engines.
//
// origin[k] is the input index of the element now stored at slot k; it is
// maintained by Swap and reset by Reset.
type Array struct {
	Guard

	values []int64
	origin []int
}

// NewArray copies values into a new Array.
// Complexity: O(n)
func NewArray(values []int64) *Array {
	a := &Array{}
	a.reset(values)

	return a
}

func (a *Array) reset(values []int64) {
	a.values = make([]int64, len(values))
	copy(a.values, values)
	a.origin = make([]int, len(values))
	for i := range a.origin {
		a.origin[i] = i
	}
}

// Reset replaces the contents with a copy of values and clears origins.
// Returns ErrArrayBusy while a run holds the array.
func (a *Array) Reset(values []int64) error {
	if a.Busy() {
		return ErrArrayBusy
	}
	a.reset(values)

	return nil
}

// Len returns the number of slots.
func (a *Array) Len() int { return len(a.values) }

// At returns the value at slot i. It panics on an out-of-range index, like a slice.
func (a *Array) At(i int) int64 { return a.values[i] }

// Less reports whether a[i] < a[j].
func (a *Array) Less(i, j int) bool { return a.values[i] < a.values[j] }

// Swap exchanges slots i and j together with their origins.
// Returns ErrIndexOutOfRange for invalid indices.
func (a *Array) Swap(i, j int) error {
	n := len(a.values)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: swap(%d,%d) on len %d", ErrIndexOutOfRange, i, j, n)
	}
	a.values[i], a.values[j] = a.values[j], a.values[i]
	a.origin[i], a.origin[j] = a.origin[j], a.origin[i]

	return nil
}

// Values returns a copy of the current contents.
func (a *Array) Values() []int64 {
	out := make([]int64, len(a.values))
	copy(out, a.values)

	return out
}

// Origins returns a copy of the origin permutation: Origins()[k] is the input
// index of the element currently at slot k.
func (a *Array) Origins() []int {
	out := make([]int, len(a.origin))
	copy(out, a.origin)

	return out
}
