package adjacent

import (
	"github.com/erpc/adjcat/common"
)

// Concat joins a and b when b starts exactly where a ends in the same buffer.
// The result covers [a.Start(), b.End()) and shares the buffer's memory.
//
// An empty view only touches the offset it sits at, so Slice(5, 5) joins after
// Slice(0, 5) but not after Slice(0, 4).
func Concat(a, b View) (View, error) {
	if r := adjacency(a, b); r != "" {
		return View{}, common.NewErrNotAdjacent(r)
	}
	return join(a, b), nil
}

// ConcatUnordered is like Concat but accepts the two views in either order.
func ConcatUnordered(a, b View) (View, error) {
	r := adjacency(a, b)
	if r == "" {
		return join(a, b), nil
	}
	rr := adjacency(b, a)
	if rr == "" {
		return join(b, a), nil
	}
	if r == common.ReasonReversed {
		r = rr
	}
	return View{}, common.NewErrNotAdjacent(r)
}

func join(first, second View) View {
	return View{buf: first.buf, start: first.start, end: second.end}
}

// adjacency returns "" when b directly follows a, otherwise the failure reason.
func adjacency(a, b View) string {
	if a.buf == nil || a.buf != b.buf {
		return common.ReasonDifferentBuffers
	}
	return placement(a.start, a.end, b.start, b.end)
}

// placement classifies where [bStart, bEnd) sits relative to [aStart, aEnd).
func placement[N int | uintptr](aStart, aEnd, bStart, bEnd N) string {
	switch {
	case aEnd == bStart:
		return ""
	case aEnd < bStart:
		return common.ReasonGap
	case bEnd <= aStart:
		return common.ReasonReversed
	default:
		return common.ReasonOverlap
	}
}
