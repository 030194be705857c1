package blockchain

import "iter"

// bufferBlock is a single fixed-capacity segment of a Buffer's chain.
type bufferBlock[T any] struct {
	data  []T
	count int
	next  *bufferBlock[T]
}

func newBufferBlock[T any](blockSize int) *bufferBlock[T] {
	return &bufferBlock[T]{data: make([]T, blockSize)}
}

func (b *bufferBlock[T]) full() bool { return b.count == len(b.data) }

// Buffer is an append-only FIFO container built from a chain of fixed-size
// blocks. Unlike Stack, it supports only insertion and forward iteration -
// there is no pop, erase, or random access, which keeps writes cheap and
// cache-friendly for bulk producer workloads.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	blockSize int
	head      *bufferBlock[T]
	tail      *bufferBlock[T]
	size      uint64
}

// NewBuffer constructs an empty Buffer whose blocks each hold blockSize
// elements. blockSize must be a power of two, and at least 1024.
func NewBuffer[T any](blockSize int) *Buffer[T] {
	if blockSize < 1024 || blockSize&(blockSize-1) != 0 {
		panic(`blockchain: buffer: block size must be a power of two >= 1024`)
	}
	return &Buffer[T]{blockSize: blockSize}
}

// Empty reports whether the buffer has no elements.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Len returns the number of elements currently stored.
func (b *Buffer[T]) Len() uint64 { return b.size }

// EmplaceBack appends v to the end of the buffer.
func (b *Buffer[T]) EmplaceBack(v T) {
	switch {
	case b.tail == nil:
		b.head = newBufferBlock[T](b.blockSize)
		b.tail = b.head
	case b.tail.full():
		if b.tail.next == nil {
			b.tail.next = newBufferBlock[T](b.blockSize)
		} else {
			b.tail.next.count = 0
		}
		b.tail = b.tail.next
	}
	b.tail.data[b.tail.count] = v
	b.tail.count++
	b.size++
}

// BulkAppend appends every element of items, in order.
func (b *Buffer[T]) BulkAppend(items ...T) {
	for _, v := range items {
		b.EmplaceBack(v)
	}
}

// BulkAppendSeq appends every element produced by seq, in order, supporting
// any iter.Seq[T]-shaped source (including those derived from other
// Buffer.All calls, maps.Values, slices.Values, and similar).
func (b *Buffer[T]) BulkAppendSeq(seq iter.Seq[T]) {
	seq(func(v T) bool {
		b.EmplaceBack(v)
		return true
	})
}

// All returns a single-pass iterator over the buffer's elements, in
// insertion order.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := b.head; n != nil; n = n.next {
			for i := 0; i < n.count; i++ {
				if !yield(n.data[i]) {
					return
				}
			}
		}
	}
}

// InplaceMap applies f to every stored element, in insertion order,
// replacing each with f's result.
func (b *Buffer[T]) InplaceMap(f func(T) T) {
	for n := b.head; n != nil; n = n.next {
		for i := 0; i < n.count; i++ {
			n.data[i] = f(n.data[i])
		}
	}
}

// Clear resets the buffer to empty, releasing every block.
func (b *Buffer[T]) Clear() {
	b.head = nil
	b.tail = nil
	b.size = 0
}

// ClearReserve resets the buffer to empty, keeping at most keepBlocks linked
// blocks for reuse. A negative keepBlocks keeps every existing block.
func (b *Buffer[T]) ClearReserve(keepBlocks int) {
	b.size = 0
	if b.head == nil {
		return
	}
	if keepBlocks == 0 {
		b.Clear()
		return
	}
	b.head.count = 0
	b.tail = b.head
	if keepBlocks < 0 {
		for n := b.head.next; n != nil; n = n.next {
			n.count = 0
		}
		return
	}

	cur := b.head
	count := 1
	for cur.next != nil && count < keepBlocks {
		cur = cur.next
		cur.count = 0
		count++
	}
	cur.next = nil
}
