package adjacent

import (
	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/util"
)

// ConcatSlice joins a and b when b starts exactly where a ends, without any
// proof: adjacency is shown by re-slicing a within its own capacity and
// checking that the element after a is b's first element. The result keeps
// a's capacity.
//
// A slice whose capacity was clipped (s[i:j:j]) cannot show what follows it
// and never joins. Empty inputs join with anything, as with AllocationProof.
// Elements of a zero-size type all share one address, so non-empty slices of
// them never join.
func ConcatSlice[T any](a, b []T) ([]T, error) {
	if r := capAdjacency(a, b); r != "" {
		return nil, common.NewErrNotAdjacent(r)
	}
	return capJoin(a, b), nil
}

// ConcatSliceUnordered is like ConcatSlice but accepts a and b in either order.
func ConcatSliceUnordered[T any](a, b []T) ([]T, error) {
	r := capAdjacency(a, b)
	if r == "" {
		return capJoin(a, b), nil
	}
	rr := capAdjacency(b, a)
	if rr == "" {
		return capJoin(b, a), nil
	}
	if r == common.ReasonReversed {
		r = rr
	}
	return nil, common.NewErrNotAdjacent(r)
}

func capAdjacency[T any](a, b []T) string {
	if len(a) == 0 || len(b) == 0 {
		return ""
	}
	aBegin, aEnd := util.SliceSpan(a)
	bBegin, bEnd := util.SliceSpan(b)
	if aBegin == aEnd {
		return common.ReasonOutsideAllocation
	}
	if cap(a)-len(a) >= len(b) && &a[:len(a)+1][len(a)] == &b[0] {
		return ""
	}
	if r := placement(aBegin, aEnd, bBegin, bEnd); r != "" {
		return r
	}
	// b starts right after a in memory, but a's capacity does not reach it.
	return common.ReasonBeyondCapacity
}

func capJoin[T any](a, b []T) []T {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	return a[:len(a)+len(b)]
}
