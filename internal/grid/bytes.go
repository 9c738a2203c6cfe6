package grid

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ToUnsignedBytes reinterprets signed cell data as unsigned bytes without
// copying. The result aliases data: -1 reads as 255, -128 as 128.
func ToUnsignedBytes(data []int8) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}

// FromIntegers copies data into a new byte slice, keeping the low 8 bits of
// each value (300 becomes 44, -1 becomes 255).
func FromIntegers[T constraints.Integer](data []T) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(v)
	}
	return out
}

// FromFloats copies data into a new byte slice, truncating each value toward
// zero before keeping its low 8 bits.
func FromFloats[T constraints.Float](data []T) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(int64(v))
	}
	return out
}

// FromBytes reinterprets unsigned bytes as signed cell data without copying.
func FromBytes(data []byte) []int8 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}
