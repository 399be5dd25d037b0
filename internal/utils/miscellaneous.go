package utils

import (
	"unsafe"
)

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

// GetByteSize returns the in-memory size of a value of type T.
func GetByteSize[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}
