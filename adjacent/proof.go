package adjacent

import (
	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/util"
)

// AllocationProof pins one allocation. Inputs that lie entirely inside it
// share that allocation, which makes joining them by address sound.
//
// The proof keeps the allocation reachable, and since it then lives on the heap
// its address never changes while the proof is in use.
type AllocationProof struct {
	begin uintptr
	end   uintptr
	keep  any
}

// NewProof binds a proof to the bytes of s.
func NewProof(s string) *AllocationProof {
	begin, end := util.StrSpan(s)
	return &AllocationProof{begin: begin, end: end, keep: s}
}

// NewSliceProof binds a proof to the elements of s, up to len(s).
func NewSliceProof[T any](s []T) *AllocationProof {
	begin, end := util.SliceSpan(s)
	return &AllocationProof{begin: begin, end: end, keep: s}
}

// Contains reports whether s lies inside the bound allocation. Empty strings
// hold no bytes and are always contained.
func (p *AllocationProof) Contains(s string) bool {
	return len(s) == 0 || p.contains(util.StrSpan(s))
}

// ContainsSlice is the slice form of Contains. Non-empty slices of a zero-size
// element type occupy no memory, so they are never contained.
func ContainsSlice[T any](p *AllocationProof, s []T) bool {
	if len(s) == 0 {
		return true
	}
	begin, end := util.SliceSpan(s)
	return begin != end && p.contains(begin, end)
}

func (p *AllocationProof) contains(begin, end uintptr) bool {
	return p.begin <= begin && end <= p.end
}

// Concat joins a and b when b starts exactly where a ends. Both must lie in
// the bound allocation, otherwise ErrNotAdjacent is returned without looking
// at their positions.
//
// Go keeps no position for an empty substring, so an empty input joins with
// anything and the result is the other input.
func (p *AllocationProof) Concat(a, b string) (string, error) {
	if !p.Contains(a) || !p.Contains(b) {
		return "", common.NewErrNotAdjacent(common.ReasonOutsideAllocation)
	}
	if r := strAdjacency(a, b); r != "" {
		return "", common.NewErrNotAdjacent(r)
	}
	return joinStr(a, b), nil
}

// ConcatUnordered is like Concat but accepts a and b in either order.
func (p *AllocationProof) ConcatUnordered(a, b string) (string, error) {
	if !p.Contains(a) || !p.Contains(b) {
		return "", common.NewErrNotAdjacent(common.ReasonOutsideAllocation)
	}
	r := strAdjacency(a, b)
	if r == "" {
		return joinStr(a, b), nil
	}
	rr := strAdjacency(b, a)
	if rr == "" {
		return joinStr(b, a), nil
	}
	if r == common.ReasonReversed {
		r = rr
	}
	return "", common.NewErrNotAdjacent(r)
}

func strAdjacency(a, b string) string {
	if len(a) == 0 || len(b) == 0 {
		return ""
	}
	aBegin, aEnd := util.StrSpan(a)
	bBegin, bEnd := util.StrSpan(b)
	return placement(aBegin, aEnd, bBegin, bEnd)
}

func joinStr(a, b string) string {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	return util.JoinStr(a, b)
}

// ConcatSliceIn is the slice form of AllocationProof.Concat.
func ConcatSliceIn[T any](p *AllocationProof, a, b []T) ([]T, error) {
	if !ContainsSlice(p, a) || !ContainsSlice(p, b) {
		return nil, common.NewErrNotAdjacent(common.ReasonOutsideAllocation)
	}
	if r := sliceAdjacency(a, b); r != "" {
		return nil, common.NewErrNotAdjacent(r)
	}
	return joinSlice(a, b), nil
}

// ConcatSliceUnorderedIn is the slice form of AllocationProof.ConcatUnordered.
func ConcatSliceUnorderedIn[T any](p *AllocationProof, a, b []T) ([]T, error) {
	if !ContainsSlice(p, a) || !ContainsSlice(p, b) {
		return nil, common.NewErrNotAdjacent(common.ReasonOutsideAllocation)
	}
	r := sliceAdjacency(a, b)
	if r == "" {
		return joinSlice(a, b), nil
	}
	rr := sliceAdjacency(b, a)
	if rr == "" {
		return joinSlice(b, a), nil
	}
	if r == common.ReasonReversed {
		r = rr
	}
	return nil, common.NewErrNotAdjacent(r)
}

func sliceAdjacency[T any](a, b []T) string {
	if len(a) == 0 || len(b) == 0 {
		return ""
	}
	aBegin, aEnd := util.SliceSpan(a)
	bBegin, bEnd := util.SliceSpan(b)
	return placement(aBegin, aEnd, bBegin, bEnd)
}

func joinSlice[T any](a, b []T) []T {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	return util.JoinSlice(a, b)
}
