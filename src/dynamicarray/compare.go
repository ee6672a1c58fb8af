package dynamicarray

import "cmp"

// Equal reports whether a and b hold the same number of elements and the
// elements compare equal pairwise in order.
func Equal[T comparable](a, b *DynamicArray[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.Get(i) != b.buf.Get(i) {
			return false
		}
	}
	return true
}

// Less reports whether a orders lexicographically before b.
func Less[T cmp.Ordered](a, b *DynamicArray[T]) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := a.buf.Get(i), b.buf.Get(i)
		if x < y {
			return true
		}
		if y < x {
			return false
		}
	}
	return a.size < b.size
}

// The remaining relations derive from Less alone.

func Greater[T cmp.Ordered](a, b *DynamicArray[T]) bool {
	return Less(b, a)
}

func LessOrEqual[T cmp.Ordered](a, b *DynamicArray[T]) bool {
	return !Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *DynamicArray[T]) bool {
	return !Less(a, b)
}
