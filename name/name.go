// Package name implements the canonicalising identifier interner (C1).
//
// Byte-identical identifiers always resolve to the same Name, and Names
// compare equal by identity rather than by content. The table owns a
// single append-only byte arena; lookups on a candidate slice never
// allocate unless the candidate is new.
package name

import (
	"sync"
)

// Name is an opaque, interned identifier handle. Two Names compare equal
// iff they were interned from byte-identical content in the same Table.
type Name struct {
	table *Table
	index int32
}

// IsZero reports whether n is the zero Name (no table attached).
func (n Name) IsZero() bool { return n.table == nil }

// Len returns the number of bytes in n's canonical spelling.
func (n Name) Len() int {
	if n.table == nil {
		return 0
	}
	e := n.table.entries[n.index]
	return int(e.length)
}

// Bytes returns the raw canonical bytes backing n. The returned slice
// aliases the table's arena and must not be mutated.
func (n Name) Bytes() []byte {
	if n.table == nil {
		return nil
	}
	e := n.table.entries[n.index]
	return n.table.arena[e.offset : e.offset+e.length]
}

// String returns n's canonical spelling.
func (n Name) String() string {
	return string(n.Bytes())
}

// Index returns n's dense index within its table, suitable for use as an
// array key (e.g. the keyword-lookup table in package token).
func (n Name) Index() int32 { return n.index }

type entry struct {
	offset int32
	length int32
}

// Table is a process-partitionable name-interning table: a single
// growable byte arena plus a closed-addressed hash index over it.
//
// A Table is safe for concurrent use only when constructed with
// NewSharedTable; a plain Table returned by New is intended for
// single-threaded use by one Services (see package services) and
// performs no locking.
type Table struct {
	mu      *sync.Mutex // nil unless shared
	arena   []byte
	entries []entry
	buckets []int32 // bucket head -> dense index, -1 empty
	nexts   []int32 // collision chain per dense index, -1 end
}

const initialBuckets = 64

// New returns an empty, unshared Table.
func New() *Table {
	return &Table{
		arena:   make([]byte, 0, 4096),
		buckets: newBuckets(initialBuckets),
	}
}

// NewSharedTable returns an empty Table guarded by an intrinsic mutex,
// for use across multiple concurrent Services (see spec §5).
func NewSharedTable() *Table {
	t := New()
	t.mu = &sync.Mutex{}
	return t
}

func newBuckets(n int) []int32 {
	b := make([]int32, n)
	for i := range b {
		b[i] = -1
	}
	return b
}

// Intern canonicalises the byte window chars[offset:offset+length] into a
// Name. Repeated calls with equal content return a Name that compares
// equal by identity.
func (t *Table) Intern(chars []byte, offset, length int) Name {
	if t.mu != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	window := chars[offset : offset+length]
	h := fnv1a(window)
	bucket := int(h) & (len(t.buckets) - 1)

	for idx := t.buckets[bucket]; idx != -1; idx = t.nexts[idx] {
		e := t.entries[idx]
		if int(e.length) == length && bytesEqual(t.arena[e.offset:e.offset+e.length], window) {
			return Name{table: t, index: idx}
		}
	}

	return t.insert(bucket, window)
}

// InternString is a convenience wrapper around Intern for Go strings.
func (t *Table) InternString(s string) Name {
	return t.Intern([]byte(s), 0, len(s))
}

func (t *Table) insert(bucket int, window []byte) Name {
	offset := int32(len(t.arena))
	t.arena = append(t.arena, window...)
	idx := int32(len(t.entries))
	t.entries = append(t.entries, entry{offset: offset, length: int32(len(window))})
	t.nexts = append(t.nexts, t.buckets[bucket])
	t.buckets[bucket] = idx

	if len(t.entries) > len(t.buckets) {
		t.grow()
	}
	return Name{table: t, index: idx}
}

// grow doubles the bucket array and rehashes every entry's chain.
// The arena itself never shrinks and entries keep their dense index, so
// outstanding Name values remain valid.
func (t *Table) grow() {
	newBuckets := newBuckets(len(t.buckets) * 2)
	newNexts := make([]int32, len(t.nexts), cap(t.nexts))
	for idx, e := range t.entries {
		h := fnv1a(t.arena[e.offset : e.offset+e.length])
		bucket := int(h) & (len(newBuckets) - 1)
		newNexts[idx] = newBuckets[bucket]
		newBuckets[bucket] = int32(idx)
	}
	t.buckets = newBuckets
	t.nexts = newNexts
}

// FromName returns raw access to n's backing bytes, dense index, and
// length, for format-sensitive consumers (e.g. the keyword table).
func FromName(n Name) (bytes []byte, index int, length int) {
	return n.Bytes(), int(n.index), n.Len()
}

func fnv1a(b []byte) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, c := range b {
		h ^= uint32(c)
		h *= prime32
	}
	return h
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pool retires Tables for reuse, matching spec §4.1's "retired tables may
// be pooled" guidance. Pooled tables are reset to empty before reuse;
// any Name derived from a table's prior life must not outlive Release.
var pool = sync.Pool{New: func() any { return New() }}

// Acquire returns a Table from the pool, or a fresh one if the pool is
// empty.
func Acquire() *Table {
	return pool.Get().(*Table)
}

// Release resets t and returns it to the pool. Callers must not retain
// or dereference any Name derived from t after calling Release.
func Release(t *Table) {
	t.arena = t.arena[:0]
	t.entries = t.entries[:0]
	t.nexts = t.nexts[:0]
	t.buckets = newBuckets(initialBuckets)
	pool.Put(t)
}
