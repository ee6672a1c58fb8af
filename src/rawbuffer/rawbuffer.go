// Package rawbuffer provides the owning block primitive the dynamic array
// is built on: a contiguous run of elements with exactly one owner at a
// time. Ownership moves by handing the *Block to someone else and never
// touching it again; Free makes the release explicit.
package rawbuffer

// Block is an exclusively owned contiguous block of elements. A nil Block
// behaves as an empty block of length zero.
type Block[T any] struct {
	data []T
}

// Alloc allocates a block of n zero-valued elements. n <= 0 yields the nil
// (empty) block.
func Alloc[T any](n int) *Block[T] {
	if n <= 0 {
		return nil
	}
	return &Block[T]{data: make([]T, n)}
}

// Len returns the number of element slots in the block.
func (b *Block[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Get returns the element at index without bounds checking.
func (b *Block[T]) Get(index int) T {
	return b.data[index]
}

// Set stores value at index without bounds checking.
func (b *Block[T]) Set(index int, value T) {
	b.data[index] = value
}

// Take removes and returns the element at index, leaving the slot
// zero-valued so the block drops any references the element held.
func (b *Block[T]) Take(index int) T {
	var zero T
	value := b.data[index]
	b.data[index] = zero
	return value
}

// Reset zeroes the slots in [from, to).
func (b *Block[T]) Reset(from, to int) {
	clear(b.data[from:to])
}

// Data returns a slice view over the first n slots, or nil when n is 0.
func (b *Block[T]) Data(n int) []T {
	if b == nil || n == 0 {
		return nil
	}
	return b.data[:n]
}

// Free releases the block's storage. The block must not be used afterwards.
func (b *Block[T]) Free() {
	if b == nil {
		return
	}
	b.data = nil
}
