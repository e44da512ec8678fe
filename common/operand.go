package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand addresses a byte range of a configured buffer. End is -1 when the
// range runs to the end of the buffer.
type Operand struct {
	BufferId string
	Start    int
	End      int
}

// ParseOperand parses "id[start:end]", "[start:end]" or "start:end". Either
// bound may be omitted as in Go slice expressions.
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	op := Operand{End: -1}

	rng := s
	if open := strings.IndexByte(s, '['); open >= 0 {
		if !strings.HasSuffix(s, "]") {
			return op, fmt.Errorf("operand '%s' is missing a closing bracket", s)
		}
		op.BufferId = strings.TrimSpace(s[:open])
		rng = s[open+1 : len(s)-1]
	}

	lo, hi, ok := strings.Cut(rng, ":")
	if !ok {
		return op, fmt.Errorf("operand '%s' must contain a start:end range", s)
	}

	var err error
	if lo = strings.TrimSpace(lo); lo != "" {
		if op.Start, err = strconv.Atoi(lo); err != nil || op.Start < 0 {
			return op, fmt.Errorf("operand '%s' has an invalid start offset", s)
		}
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if op.End, err = strconv.Atoi(hi); err != nil || op.End < 0 {
			return op, fmt.Errorf("operand '%s' has an invalid end offset", s)
		}
		if op.End < op.Start {
			return op, fmt.Errorf("operand '%s' ends before it starts", s)
		}
	}

	return op, nil
}

// Resolve returns concrete [start, end) bounds for a buffer of the given length.
func (o Operand) Resolve(length int) (int, int) {
	if o.End < 0 {
		return o.Start, length
	}
	return o.Start, o.End
}

func (o Operand) String() string {
	end := ""
	if o.End >= 0 {
		end = strconv.Itoa(o.End)
	}
	return fmt.Sprintf("%s[%d:%s]", o.BufferId, o.Start, end)
}
