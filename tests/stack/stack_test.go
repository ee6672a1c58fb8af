package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerkit/dynamicarray-go/src/stack"
)

func TestNewStackIsEmpty(t *testing.T) {
	s := stack.New[int]()
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.IsEmpty())
}

func TestTopOnEmptyStack(t *testing.T) {
	s := stack.New[int]()
	_, err := s.Top()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
}

func TestPopOnEmptyStack(t *testing.T) {
	s := stack.New[int]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
}

func TestPushPopOrder(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())

	for _, expected := range []int{3, 2, 1} {
		top, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, expected, top)

		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestPushManyElements(t *testing.T) {
	s := stack.New[int]()
	for i := 0; i < 1000; i++ {
		s.Push(i)
	}
	assert.Equal(t, 1000, s.Size())
	for i := 999; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestClear(t *testing.T) {
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.IsEmpty())

	s.Push("c")
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "c", top)
}

func TestCloneIsIndependent(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)

	clone := s.Clone()
	clone.Push(3)

	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 3, clone.Size())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
}
