package util

import (
	"unsafe"
)

// B2Str converts a byte slice to a read‑only string without allocation.
//
// WARNING: The caller must **guarantee** that `b` will not be mutated for as
// long as the returned string is alive, or a data race / memory corruption will
// occur.
//
//go:nosplit
//go:nocheckptr
func B2Str(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// S2Bytes converts a string to a byte slice **without** copying.
//
// WARNING: Mutating the returned slice is *undefined behaviour* since
// Go strings are immutable. Use this only for read‑only access.
//
//go:nosplit
//go:nocheckptr
func S2Bytes(s string) (v []byte) {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// StrSpan returns the [begin, end) address range of the bytes backing s.
// Empty strings carry no usable address and report (0, 0).
func StrSpan(s string) (begin, end uintptr) {
	if len(s) == 0 {
		return 0, 0
	}
	begin = uintptr(unsafe.Pointer(unsafe.StringData(s)))
	return begin, begin + uintptr(len(s))
}

// SliceSpan returns the [begin, end) address range of the elements of s, in bytes.
func SliceSpan[T any](s []T) (begin, end uintptr) {
	if len(s) == 0 {
		return 0, 0
	}
	var zero T
	begin = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return begin, begin + uintptr(len(s))*unsafe.Sizeof(zero)
}

// JoinStr returns the string of length len(a)+len(b) starting at a's first byte.
//
// WARNING: only valid when a and b were proven to be back to back inside one
// live allocation. The result aliases that allocation.
//
//go:nocheckptr
func JoinStr(a, b string) string {
	return unsafe.String(unsafe.StringData(a), len(a)+len(b))
}

// JoinSlice is the slice counterpart of JoinStr. The result has no spare capacity.
//
//go:nocheckptr
func JoinSlice[T any](a, b []T) []T {
	return unsafe.Slice(unsafe.SliceData(a), len(a)+len(b))
}
