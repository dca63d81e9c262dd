// Package sorting provides instrumented in-place comparison sorts over a
// core.Array: bubble, selection, insertion, merge and heap sort.
//
// Every engine reports its work on a trace.Trace as compare, swap and
// set-final events and closes a completed run with done (Value = number of
// swaps). The only mutation any engine performs is core.Array.Swap, routed
// through trace.Commit, so the array remains a permutation of the input at
// every instant, including after an aborted run.
//
// Event conventions:
//
//	bubble     compare(j,j+1) each inner step, swap(j,j+1) iff a[j] > a[j+1],
//	           set-final(n-1-i) after pass i.
//	selection  compare(j,min) while scanning, swap(i,min) iff min != i,
//	           set-final(i) after each pass.
//	insertion  compare(j-1,j), swap(j-1,j) while a[j-1] > a[j]; the prefix
//	           becomes final at the end, reported as set-final(0..n-1).
//	merge      top-down, stable: compare(left,right) per comparison, then the
//	           merged element is swapped into slot k and set-final(k<-src).
//	heap       max-heap; heapify compares left then right child against the
//	           current largest, extraction swaps root and boundary and emits
//	           set-final(end); set-final(0) closes the run.
//
// Complexity:
//
//   - bubble, selection, insertion: O(n²) time, O(1) extra space.
//   - merge: O(n log n) comparisons, O(n) bookkeeping per merge.
//   - heap: O(n log n) time, O(1) extra space.
//
// Empty input completes immediately without events.
package sorting
