package internstr

import "github.com/jhtoolkit/corekit/pool"

// InternPool deduplicates String values by content, handing out the same
// handle for every equal-content acquisition until all strong references to
// it are dropped.
type InternPool struct {
	inner *pool.Pool[String]
}

// NewInternPool constructs an empty InternPool.
func NewInternPool() *InternPool {
	return &InternPool{inner: pool.New[String]()}
}

// Intern constructs a String from data and returns the pool's canonical
// handle for its (trimmed) content: either the freshly constructed value, or
// an existing equivalent one, in which case the fresh value is discarded.
func (p *InternPool) Intern(data []byte) (*String, error) {
	s, err := New(data)
	if err != nil {
		return nil, err
	}
	return p.inner.Acquire(s), nil
}

// InternString is a convenience wrapper over Intern for a Go string input.
func (p *InternPool) InternString(s string) (*String, error) {
	return p.Intern([]byte(s))
}

// Cleanup removes expired slots.
func (p *InternPool) Cleanup() { p.inner.Cleanup() }

// CleanupShrink removes expired slots and shrinks reserved size if warranted.
func (p *InternPool) CleanupShrink() { p.inner.CleanupShrink() }

// Size returns the number of slots, including expired ones.
func (p *InternPool) Size() int { return p.inner.Size() }

// ReservedSize returns the pool's current capacity hint.
func (p *InternPool) ReservedSize() int64 { return p.inner.ReservedSize() }

// Clear drops every interned handle and resets reserved size.
func (p *InternPool) Clear() { p.inner.Clear() }
