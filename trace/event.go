package trace

import (
	"encoding/json"
	"fmt"
)

// Kind tags the elementary operation an Event describes.
type Kind string

// Event kinds, in the vocabulary shared with rendering collaborators.
const (
	KindCompare        Kind = "compare"
	KindSwap           Kind = "swap"
	KindSetFinal       Kind = "set-final"
	KindVisit          Kind = "visit"
	KindEdgeExplore    Kind = "edge-explore"
	KindEdgeCommit     Kind = "edge-commit"
	KindDistanceUpdate Kind = "distance-update"
	KindMSTAdd         Kind = "mst-add"
	KindMSTReject      Kind = "mst-reject"
	KindDone           Kind = "done"
)

// Event is one step of an algorithm run. Only the operands meaningful for
// Kind are set; see MarshalJSON for the per-kind schema.
type Event struct {
	// Seq is the 1-based position of the event in its run.
	Seq int

	// Kind identifies the operation.
	Kind Kind

	// I and J are array indices (compare, swap, set-final).
	I, J int

	// Node is the vertex visited or whose distance changed.
	Node string

	// From and To are edge endpoints; EdgeID names the edge.
	From, To, EdgeID string

	// Weight is the edge weight for edge events.
	Weight int64

	// Value is the updated scalar: the value written to a final slot, a
	// distance, a running MST cost, or a summary count for done.
	Value int64
}

// Compare reports a comparison of slots i and j.
func Compare(i, j int) Event { return Event{Kind: KindCompare, I: i, J: j} }

// Swap reports an exchange of slots i and j.
func Swap(i, j int) Event { return Event{Kind: KindSwap, I: i, J: j} }

// SetFinal reports that slot i now holds its final value v, taken from slot from.
func SetFinal(i, from int, v int64) Event {
	return Event{Kind: KindSetFinal, I: i, J: from, Value: v}
}

// Visit reports that node was visited; value carries a depth or distance.
func Visit(node string, value int64) Event {
	return Event{Kind: KindVisit, Node: node, Value: value}
}

// EdgeExplore reports that the edge edgeID between from and to was examined.
func EdgeExplore(from, to, edgeID string, w int64) Event {
	return Event{Kind: KindEdgeExplore, From: from, To: to, EdgeID: edgeID, Weight: w}
}

// EdgeCommit reports that the edge from→to joined the traversal tree.
func EdgeCommit(from, to, edgeID string, w int64) Event {
	return Event{Kind: KindEdgeCommit, From: from, To: to, EdgeID: edgeID, Weight: w}
}

// DistanceUpdate reports a relaxation: node's distance became d via from.
func DistanceUpdate(node, from string, d int64) Event {
	return Event{Kind: KindDistanceUpdate, Node: node, From: from, Value: d}
}

// MSTAdd reports an edge committed to the spanning forest; cost is the running total.
func MSTAdd(from, to, edgeID string, w, cost int64) Event {
	return Event{Kind: KindMSTAdd, From: from, To: to, EdgeID: edgeID, Weight: w, Value: cost}
}

// MSTReject reports an edge refused because it would close a cycle; cost is the running total.
func MSTReject(from, to, edgeID string, w, cost int64) Event {
	return Event{Kind: KindMSTReject, From: from, To: to, EdgeID: edgeID, Weight: w, Value: cost}
}

// Done closes a completed run; v is an engine-specific summary count.
func Done(v int64) Event { return Event{Kind: KindDone, Value: v} }

// String renders the event compactly, e.g. "compare(0,1)" or "visit(A=3)".
func (e Event) String() string {
	switch e.Kind {
	case KindCompare, KindSwap:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.I, e.J)
	case KindSetFinal:
		if e.J != e.I {
			return fmt.Sprintf("%s(%d<-%d=%d)", e.Kind, e.I, e.J, e.Value)
		}
		return fmt.Sprintf("%s(%d=%d)", e.Kind, e.I, e.Value)
	case KindVisit:
		return fmt.Sprintf("%s(%s=%d)", e.Kind, e.Node, e.Value)
	case KindEdgeExplore, KindEdgeCommit:
		return fmt.Sprintf("%s(%s-%s:%d)", e.Kind, e.From, e.To, e.Weight)
	case KindDistanceUpdate:
		return fmt.Sprintf("%s(%s=%d via %s)", e.Kind, e.Node, e.Value, e.From)
	case KindMSTAdd, KindMSTReject:
		return fmt.Sprintf("%s(%s-%s:%d cost=%d)", e.Kind, e.From, e.To, e.Weight, e.Value)
	case KindDone:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	default:
		return string(e.Kind)
	}
}

// MarshalJSON encodes {"kind": ..., "seq": ..., operands...} with only the
// operands meaningful for the event kind.
func (e Event) MarshalJSON() ([]byte, error) {
	m := map[string]any{"kind": e.Kind, "seq": e.Seq}
	switch e.Kind {
	case KindCompare, KindSwap:
		m["i"], m["j"] = e.I, e.J
	case KindSetFinal:
		m["i"], m["from"], m["value"] = e.I, e.J, e.Value
	case KindVisit:
		m["node"], m["value"] = e.Node, e.Value
	case KindEdgeExplore, KindEdgeCommit:
		m["from"], m["to"], m["edge"], m["weight"] = e.From, e.To, e.EdgeID, e.Weight
	case KindDistanceUpdate:
		m["node"], m["from"], m["distance"] = e.Node, e.From, e.Value
	case KindMSTAdd, KindMSTReject:
		m["from"], m["to"], m["edge"], m["weight"], m["cost"] = e.From, e.To, e.EdgeID, e.Weight, e.Value
	case KindDone:
		m["value"] = e.Value
	}

	return json.Marshal(m)
}

// Sink receives delivered events. It runs on the engine's goroutine and
// must return before the engine proceeds.
type Sink func(Event)

// Observer is notified of every delivered event after the Sink.
type Observer interface {
	ObserveEvent(Event)
}

// Recorder is a Sink target that keeps every delivered event.
type Recorder struct {
	Events []Event
}

// Sink returns a Sink appending to r.Events.
func (r *Recorder) Sink() Sink {
	return func(e Event) { r.Events = append(r.Events, e) }
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}

	return out
}

// Strings returns String() of every recorded event, without sequence numbers.
func (r *Recorder) Strings() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.String()
	}

	return out
}
