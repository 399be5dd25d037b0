package utils

// Reverse reverses the elements of slice in place.
func Reverse[T any](slice []T) {
	length := len(slice)

	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}

// CopyReversed copies src into dst in reverse order and returns the number of copied elements,
// which is the minimum of len(src) and len(dst).
func CopyReversed[T any](dst, src []T) int {
	n := min(len(dst), len(src))

	for i := 0; i < n; i++ {
		dst[i] = src[len(src)-1-i]
	}
	return n
}

func EmptySliceIfNil[T any](slice []T) []T {
	if slice == nil {
		return make([]T, 0)
	}
	return slice
}
