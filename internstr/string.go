// Package internstr implements an immutable, content-hashed string value
// type and a pool that deduplicates equivalent values via weak references
// ([github.com/jhtoolkit/corekit/pool]).
//
// Go strings and byte slices always carry an explicit length, unlike C's
// null-terminated strings; there is accordingly no "construct from a
// null-terminated pointer" mode here; every construction path is the
// explicit-length path, and an embedded NUL is always rejected.
package internstr

import (
	"bytes"
	"errors"
	"sync"

	"github.com/spaolacci/murmur3"
)

// autoTrim controls whether leading/trailing ASCII whitespace is stripped at
// construction. It is a compile-time constant, not a runtime option,
// matching the single process-wide trim policy this type is specified to
// have; there is no supported way to toggle it per call.
const autoTrim = true

// ErrEmbeddedNUL is returned when the input to New or NewLocked contains a
// NUL byte.
var ErrEmbeddedNUL = errors.New(`internstr: embedded NUL in input`)

type hashCache struct {
	once sync.Once
	val  uint64
}

// String is an immutable, content-hashed byte sequence. Values are shared
// through handles (*String); there is no exported way to copy or mutate one
// in place.
type String struct {
	data  []byte
	cache *hashCache
}

// New constructs a String from data, copying it so the returned value is
// independent of the caller's slice. If autoTrim is enabled, ASCII
// whitespace is stripped from both ends before the embedded-NUL check and
// the copy. Returns ErrEmbeddedNUL if the (possibly trimmed) content
// contains a NUL byte.
func New(data []byte) (*String, error) {
	return newString(data)
}

// NewLocked behaves like New, but holds mu for the duration of the copy, to
// protect against concurrent mutation of data by another goroutine - the Go
// equivalent of the "external lock guarding the source buffer" constructor
// mode.
func NewLocked(data []byte, mu sync.Locker) (*String, error) {
	mu.Lock()
	defer mu.Unlock()
	return newString(data)
}

// NewFromString is a convenience wrapper over New for a Go string input.
func NewFromString(s string) (*String, error) {
	return newString([]byte(s))
}

func newString(data []byte) (*String, error) {
	if autoTrim {
		data = trimASCIISpace(data)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return &String{data: owned, cache: &hashCache{}}, nil
}

func trimASCIISpace(data []byte) []byte {
	start := 0
	for start < len(data) && isASCIISpace(data[start]) {
		start++
	}
	end := len(data)
	for end > start && isASCIISpace(data[end-1]) {
		end--
	}
	return data[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Len returns the length of the final, trimmed, NUL-free content in bytes.
func (s String) Len() int { return len(s.data) }

// Bytes returns an owning copy of the content. Mutating the result has no
// effect on the String.
func (s String) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// View returns a non-owning view of the content. The caller must not mutate
// the returned slice; doing so would violate every handle's immutability
// contract, since all handles to an equivalent String share one backing
// array.
func (s String) View() []byte { return s.data }

// String returns an owning copy of the content as a Go string.
func (s String) String() string { return string(s.data) }

// Hash returns the content hash, computed lazily on first call and cached
// under a one-time barrier; subsequent calls, on any handle to the same
// backing content, return the cached value without recomputing it.
func (s String) Hash() uint64 {
	s.cache.once.Do(func() {
		s.cache.val = murmur3.Sum64(s.data)
	})
	return s.cache.val
}

// Equal reports content equality: byte equality of the final, trimmed
// content. It satisfies pool.Keyed[String].
func (s String) Equal(other String) bool {
	return bytes.Equal(s.data, other.data)
}
