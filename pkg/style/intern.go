package style

import "sync"

// Pool interns ComputedStyle instances so that elements with structurally
// identical computed styles share one instance. The original Python engine
// keyed a WeakValueDictionary on the style's hash and let the GC reclaim
// entries once nothing held a strong reference to the value anymore; Go has
// no equivalent of a weak-valued map, so Pool instead keeps ordinary strong
// references behind a refcount that callers drive explicitly with Release,
// collapsing to the same "evicted when no element references them"
// behavior without relying on finalizers.
type Pool struct {
	mu      sync.Mutex
	entries map[string]*poolEntry
}

type poolEntry struct {
	style    *ComputedStyle
	refCount int
}

// NewPool constructs an empty intern pool.
func NewPool() *Pool {
	return &Pool{entries: make(map[string]*poolEntry)}
}

// Intern returns the pool's canonical instance for a structurally equal
// style, incrementing its reference count, and stores cs itself as that
// canonical instance the first time its structural key is seen. Callers
// must pair every Intern with an eventual Release of the returned pointer.
func (p *Pool) Intern(cs *ComputedStyle) *ComputedStyle {
	key := cs.structuralKey()

	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.entries[key]; ok {
		e.refCount++
		return e.style
	}
	p.entries[key] = &poolEntry{style: cs, refCount: 1}
	return cs
}

// Release drops one reference to a previously interned style, evicting it
// from the pool once nothing references it.
func (p *Pool) Release(cs *ComputedStyle) {
	if cs == nil {
		return
	}
	key := cs.structuralKey()

	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[key]
	if !ok {
		return
	}
	e.refCount--
	if e.refCount <= 0 {
		delete(p.entries, key)
	}
}

// Len reports how many distinct computed styles are currently interned,
// used by tests and diagnostics to confirm sharing is actually happening.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
