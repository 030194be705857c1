package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPanicsOnBadBlockSize(t *testing.T) {
	require.Panics(t, func() { NewStack[int](255) })
	require.Panics(t, func() { NewStack[int](300) }) // not a power of two
}

func TestStackReverseOrder(t *testing.T) {
	s := NewStack[int](256)
	require.True(t, s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, uint64(3), s.Len())

	require.Equal(t, 3, s.Top())
	s.Pop()
	require.Equal(t, 2, s.Top())
	s.Pop()
	require.Equal(t, 1, s.Top())
	s.Pop()
	require.True(t, s.Empty())
}

func TestStackSpansMultipleBlocks(t *testing.T) {
	const blockSize = 256
	s := NewStack[int](blockSize)
	for i := 0; i < blockSize*3+7; i++ {
		s.Push(i)
	}
	require.Equal(t, uint64(blockSize*3+7), s.Len())
	for i := blockSize*3 + 7 - 1; i >= 0; i-- {
		require.Equal(t, i, s.Top())
		s.Pop()
	}
	require.True(t, s.Empty())
}

func TestStackCleanPopFreesBlocks(t *testing.T) {
	const blockSize = 256
	s := NewStack[int](blockSize)
	for i := 0; i < blockSize+1; i++ {
		s.Push(i)
	}
	require.NotNil(t, s.root.next)

	for i := 0; i < blockSize+1; i++ {
		s.CleanPop()
	}
	require.True(t, s.Empty())
	require.Nil(t, s.root.next)
}

func TestStackClearThenPushIsValid(t *testing.T) {
	s := NewStack[int](256)
	s.Push(1)
	s.Push(2)
	s.Clear()
	require.True(t, s.Empty())

	s.Push(42)
	require.Equal(t, 42, s.Top())
	require.Equal(t, uint64(1), s.Len())
}

func TestStackClearReserve(t *testing.T) {
	const blockSize = 256
	s := NewStack[int](blockSize)
	for i := 0; i < blockSize*4; i++ {
		s.Push(i)
	}

	s.ClearReserve(2)
	require.True(t, s.Empty())

	// verify only 2 blocks were retained
	count := 1
	for n := s.root; n.next != nil; n = n.next {
		count++
	}
	require.Equal(t, 2, count)

	for i := 0; i < blockSize+5; i++ {
		s.Push(i)
	}
	require.Equal(t, blockSize+4, s.Top())
}
