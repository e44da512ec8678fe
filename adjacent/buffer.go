// Package adjacent joins text views that sit back to back inside one backing
// buffer into a single view, without copying.
//
// Views carry the identity of the Buffer they were cut from, so two views of
// different buffers never join even if their bytes happen to be neighbours in
// memory. Raw strings and slices can be joined through an AllocationProof,
// which pins the allocation they must come from.
package adjacent

import (
	"unicode/utf8"

	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/util"
	"github.com/rs/zerolog"
)

// Buffer is the owner identity of a piece of UTF-8 text. The pointer is the
// identity: two Buffers built from equal text are unrelated.
type Buffer struct {
	data string
}

func NewBuffer(s string) (*Buffer, error) {
	if !utf8.ValidString(s) {
		return nil, common.NewErrInvalidText(firstInvalid(s))
	}
	return &Buffer{data: s}, nil
}

// NewBufferBytes wraps b without copying it. b must not be modified while the
// buffer or any view of it is in use.
func NewBufferBytes(b []byte) (*Buffer, error) {
	return NewBuffer(util.B2Str(b))
}

// MustBuffer is like NewBuffer but panics on invalid text.
func MustBuffer(s string) *Buffer {
	b, err := NewBuffer(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Buffer) String() string {
	return b.data
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// View returns a view over the whole buffer.
func (b *Buffer) View() View {
	return View{buf: b, start: 0, end: len(b.data)}
}

// Slice returns the view over [start, end). It panics when the range is out
// of bounds or does not fall on rune boundaries.
func (b *Buffer) Slice(start, end int) View {
	v, err := b.CheckedSlice(start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// CheckedSlice is like Slice but reports a bad range as ErrInvalidRange.
func (b *Buffer) CheckedSlice(start, end int) (View, error) {
	if start < 0 || end < start || end > len(b.data) {
		return View{}, common.NewErrInvalidRange(start, end, len(b.data), "out of bounds")
	}
	if !b.isBoundary(start) || !b.isBoundary(end) {
		return View{}, common.NewErrInvalidRange(start, end, len(b.data), "not on a rune boundary")
	}
	return View{buf: b, start: start, end: end}, nil
}

// Proof returns an allocation proof bound to the buffer's text, for joining
// raw substrings of String().
func (b *Buffer) Proof() *AllocationProof {
	return NewProof(b.data)
}

func (b *Buffer) isBoundary(i int) bool {
	return i == 0 || i == len(b.data) || utf8.RuneStart(b.data[i])
}

func firstInvalid(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}

// View is a read-only window [Start, End) into a Buffer. The zero View belongs
// to no buffer and is never adjacent to anything.
type View struct {
	buf   *Buffer
	start int
	end   int
}

func (v View) Buffer() *Buffer {
	return v.buf
}

func (v View) Start() int {
	return v.start
}

func (v View) End() int {
	return v.end
}

func (v View) Len() int {
	return v.end - v.start
}

func (v View) IsEmpty() bool {
	return v.start == v.end
}

// String returns the viewed text. It shares memory with the buffer.
func (v View) String() string {
	if v.buf == nil {
		return ""
	}
	return v.buf.data[v.start:v.end]
}

// Slice cuts a sub-view, with offsets relative to v. Same panics as Buffer.Slice.
func (v View) Slice(start, end int) View {
	sub, err := v.CheckedSlice(start, end)
	if err != nil {
		panic(err)
	}
	return sub
}

func (v View) CheckedSlice(start, end int) (View, error) {
	if v.buf == nil {
		return View{}, common.NewErrInvalidRange(start, end, 0, "view has no buffer")
	}
	if start < 0 || end < start || end > v.Len() {
		return View{}, common.NewErrInvalidRange(start, end, v.Len(), "out of bounds")
	}
	return v.buf.CheckedSlice(v.start+start, v.start+end)
}

func (v View) SameBuffer(o View) bool {
	return v.buf != nil && v.buf == o.buf
}

func (v View) MarshalZerologObject(e *zerolog.Event) {
	e.Int("start", v.start).Int("end", v.end)
}
