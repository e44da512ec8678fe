package util

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestB2Str_S2Bytes_ShareMemory(t *testing.T) {
	b := []byte("hello")
	s := B2Str(b)
	require.Equal(t, "hello", s)
	require.Equal(t, unsafe.Pointer(&b[0]), unsafe.Pointer(unsafe.StringData(s)))

	back := S2Bytes(s)
	require.Same(t, &b[0], &back[0])

	require.Equal(t, "", B2Str(nil))
	require.Nil(t, S2Bytes(""))
}

func TestStrSpan(t *testing.T) {
	s := strings.Clone("0123456789")
	begin, end := StrSpan(s)
	require.Equal(t, uintptr(10), end-begin)

	subBegin, subEnd := StrSpan(s[3:5])
	require.Equal(t, begin+3, subBegin)
	require.Equal(t, begin+5, subEnd)

	b, e := StrSpan(s[4:4])
	require.Zero(t, b)
	require.Zero(t, e)
}

func TestSliceSpan(t *testing.T) {
	words := make([]uint32, 6)
	begin, end := SliceSpan(words)
	require.Equal(t, uintptr(24), end-begin)

	subBegin, subEnd := SliceSpan(words[2:4])
	require.Equal(t, begin+8, subBegin)
	require.Equal(t, begin+16, subEnd)

	b, e := SliceSpan(words[:0])
	require.Zero(t, b)
	require.Zero(t, e)
}

func TestJoin(t *testing.T) {
	s := strings.Clone("0123456789")
	require.Equal(t, "2345", JoinStr(s[2:3], s[3:5]))

	data := []int{1, 2, 3, 4, 5}
	joined := JoinSlice(data[1:2], data[2:4])
	require.Equal(t, []int{2, 3, 4}, joined)
	require.Equal(t, 3, cap(joined))
}
