// Package dynamicarray implements a growable contiguous container with
// value semantics: deep copy, ownership-transferring move, equality and
// lexicographic ordering. Storage lives in an exclusively owned
// rawbuffer.Block; capacity is the block length.
package dynamicarray

import (
	"errors"
	"iter"

	"github.com/containerkit/dynamicarray-go/src/rawbuffer"
)

var ErrOutOfRange = errors.New("DynamicArray: index out of range")

// DynamicArray holds size live elements in a block of Capacity() slots.
// Slots at [size, capacity) are placeholders, never logically present.
type DynamicArray[T any] struct {
	buf  *rawbuffer.Block[T]
	size int
}

// New returns an empty container with no allocated block.
func New[T any]() *DynamicArray[T] {
	return &DynamicArray[T]{}
}

// NewWithSize returns a container of size zero-valued elements with
// capacity == size.
func NewWithSize[T any](size int) *DynamicArray[T] {
	if size <= 0 {
		return &DynamicArray[T]{}
	}
	return &DynamicArray[T]{
		buf:  rawbuffer.Alloc[T](size),
		size: size,
	}
}

// NewWithValue returns a container of size elements, each set to value.
func NewWithValue[T any](size int, value T) *DynamicArray[T] {
	a := NewWithSize[T](size)
	a.Fill(value)
	return a
}

// NewFromValues returns a container holding the given values in order,
// with capacity == size == len(values).
func NewFromValues[T any](values ...T) *DynamicArray[T] {
	a := NewWithSize[T](len(values))
	for i, v := range values {
		a.buf.Set(i, v)
	}
	return a
}

// NewWithCapacity returns an empty container with capacity allocated up
// front, so the first pushes do not reallocate.
func NewWithCapacity[T any](capacity int) *DynamicArray[T] {
	a := &DynamicArray[T]{}
	a.Reserve(capacity)
	return a
}

// Take returns a new container that steals src's block, size and capacity.
// src is left empty with no block.
func Take[T any](src *DynamicArray[T]) *DynamicArray[T] {
	a := &DynamicArray[T]{}
	a.MoveFrom(src)
	return a
}

func (a *DynamicArray[T]) Size() int {
	return a.size
}

func (a *DynamicArray[T]) Capacity() int {
	return a.buf.Len()
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at index. No bounds check: index >= Size() is the
// caller's bug. This is the fast path; use At for the checked one.
func (a *DynamicArray[T]) Get(index int) T {
	return a.buf.Get(index)
}

// Set stores value at index. No bounds check, same contract as Get.
func (a *DynamicArray[T]) Set(index int, value T) {
	a.buf.Set(index, value)
}

// At returns the element at index, or ErrOutOfRange when index is not in
// [0, Size()).
func (a *DynamicArray[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, ErrOutOfRange
	}
	return a.buf.Get(index), nil
}

// SetAt stores value at index, or returns ErrOutOfRange when index is not
// in [0, Size()).
func (a *DynamicArray[T]) SetAt(index int, value T) error {
	if index < 0 || index >= a.size {
		return ErrOutOfRange
	}
	a.buf.Set(index, value)
	return nil
}

// Front returns the first live element. Unchecked.
func (a *DynamicArray[T]) Front() T {
	return a.buf.Get(0)
}

// Back returns the last live element. Unchecked.
func (a *DynamicArray[T]) Back() T {
	return a.buf.Get(a.size - 1)
}

// Data returns a mutable slice view over the live range, or nil when empty.
// Any operation that reallocates or shifts elements invalidates the view.
func (a *DynamicArray[T]) Data() []T {
	return a.buf.Data(a.size)
}

// Fill assigns value to every live element.
func (a *DynamicArray[T]) Fill(value T) {
	for i := 0; i < a.size; i++ {
		a.buf.Set(i, value)
	}
}

// Clear drops all live elements without touching capacity or the block.
func (a *DynamicArray[T]) Clear() {
	a.size = 0
}

// Reserve grows capacity to exactly newCap, relocating the live elements.
// Requests at or below the current capacity are no-ops; capacity never
// shrinks and size never changes.
func (a *DynamicArray[T]) Reserve(newCap int) {
	if newCap <= a.buf.Len() {
		return
	}
	a.relocate(newCap)
}

// Resize sets the live element count to newSize. Shrinking truncates in
// place. Growing within capacity zero-fills the newly live slots, which may
// hold stale values from an earlier truncation. Growing past capacity
// relocates into a block of exactly newSize — grow-to-fit, unlike the
// doubling Insert uses.
func (a *DynamicArray[T]) Resize(newSize int) {
	if newSize < 0 {
		newSize = 0
	}
	switch {
	case newSize <= a.size:
	case newSize <= a.buf.Len():
		a.buf.Reset(a.size, newSize)
	default:
		a.relocate(newSize)
	}
	a.size = newSize
}

// Insert places value at index, shifting later elements one slot right.
// index may equal Size(), which appends. An index outside [0, Size()]
// returns ErrOutOfRange with the container untouched.
func (a *DynamicArray[T]) Insert(index int, value T) error {
	if index < 0 || index > a.size {
		return ErrOutOfRange
	}
	if a.size == a.buf.Len() {
		newCap := 1
		if a.buf.Len() > 0 {
			newCap = 2 * a.buf.Len()
		}
		newBuf := rawbuffer.Alloc[T](newCap)
		for i := 0; i < index; i++ {
			newBuf.Set(i, a.buf.Take(i))
		}
		newBuf.Set(index, value)
		for i := index; i < a.size; i++ {
			newBuf.Set(i+1, a.buf.Take(i))
		}
		a.buf.Free()
		a.buf = newBuf
	} else {
		// Shift back-to-front so no unmoved slot is overwritten.
		for i := a.size; i > index; i-- {
			a.buf.Set(i, a.buf.Take(i-1))
		}
		a.buf.Set(index, value)
	}
	a.size++
	return nil
}

// Erase removes the element at index, shifting later elements one slot
// left. Capacity is never reduced. An index outside [0, Size()) returns
// ErrOutOfRange with the container untouched.
func (a *DynamicArray[T]) Erase(index int) error {
	if index < 0 || index >= a.size {
		return ErrOutOfRange
	}
	// Shift front-to-back; the destination always trails the source.
	for i := index + 1; i < a.size; i++ {
		a.buf.Set(i-1, a.buf.Take(i))
	}
	a.size--
	return nil
}

// PushBack appends value, doubling capacity when the block is full
// (0 grows to 1).
func (a *DynamicArray[T]) PushBack(value T) {
	// index == Size() is always valid, so Insert cannot fail here.
	_ = a.Insert(a.size, value)
}

// PopBack removes the last element. Popping an empty container is a no-op.
func (a *DynamicArray[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
}

// Clone returns a deep copy holding the same elements in a fresh block
// sized to the live element count.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	clone := NewWithSize[T](a.size)
	for i := 0; i < a.size; i++ {
		clone.buf.Set(i, a.buf.Get(i))
	}
	return clone
}

// CopyFrom replaces the contents with a deep copy of other. Copying a
// container into itself leaves it unchanged. The copy is built fully before
// the old state is swapped out and released.
func (a *DynamicArray[T]) CopyFrom(other *DynamicArray[T]) {
	if a == other {
		return
	}
	tmp := other.Clone()
	a.Swap(tmp)
	tmp.buf.Free()
}

// MoveFrom takes ownership of other's block, size and capacity in O(1),
// releasing its own block first. other is left empty with no block.
// Moving a container into itself is a no-op.
func (a *DynamicArray[T]) MoveFrom(other *DynamicArray[T]) {
	if a == other {
		return
	}
	a.buf.Free()
	a.buf = other.buf
	a.size = other.size
	other.buf = nil
	other.size = 0
}

// Swap exchanges block ownership, size and capacity with other in O(1).
func (a *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	a.buf, other.buf = other.buf, a.buf
	a.size, other.size = other.size, a.size
}

// All returns a forward iterator over index/element pairs of the live
// range. Mutating the container during iteration invalidates it.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf.Get(i)) {
				return
			}
		}
	}
}

// Values returns a forward iterator over the live elements.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.buf.Get(i)) {
				return
			}
		}
	}
}

// relocate moves the live elements into a fresh block of newCap slots and
// frees the old block. newCap must be >= size. The new block is allocated
// in full before the old state is touched.
func (a *DynamicArray[T]) relocate(newCap int) {
	newBuf := rawbuffer.Alloc[T](newCap)
	for i := 0; i < a.size; i++ {
		newBuf.Set(i, a.buf.Take(i))
	}
	a.buf.Free()
	a.buf = newBuf
}
