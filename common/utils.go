package common

import (
	"unsafe"
)

// SliceToBytes re-interprets a slice of any fixed-size element type as its raw
// byte representation. The returned slice aliases the input; it must not
// outlive it.
//
// Parameters:
//   - data: the slice to re-interpret
//
// Returns:
//   - []byte: the backing bytes of the slice, or nil for an empty slice
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(data[0])) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size)
}

// StructToBytes re-interprets a pointer to a struct as its raw byte
// representation. The struct must be laid out for GPU consumption already
// (explicit padding fields, fixed-size arrays).
//
// Parameters:
//   - data: pointer to the struct to re-interpret
//
// Returns:
//   - []byte: the backing bytes of the struct
func StructToBytes[T any](data *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), int(unsafe.Sizeof(*data)))
}

// Coalesce returns the first non-zero value from the provided arguments, or
// the zero value if all arguments are zero.
//
// Parameters:
//   - values: the candidate values in priority order
//
// Returns:
//   - T: the first non-zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
