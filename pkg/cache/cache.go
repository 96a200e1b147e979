// Package cache provides an explicit, caller-owned interning table. Entries
// are held weakly, so an interned value lives exactly as long as something
// outside the table references it.
package cache

import (
	"runtime"
	"sync"
	"weak"

	log "github.com/sirupsen/logrus"
)

// Interner shares one instance of V per key while that instance is
// referenced. It is safe for concurrent use.
type Interner[K comparable, V any] struct {
	sync.Mutex
	entries map[K]weak.Pointer[V]
}

func NewInterner[K comparable, V any]() *Interner[K, V] {
	return &Interner[K, V]{
		entries: make(map[K]weak.Pointer[V]),
	}
}

// Get returns the live instance for key, calling build when there is none.
// build runs with the table locked and must not call back into it.
func (in *Interner[K, V]) Get(key K, build func() *V) *V {
	in.Lock()
	defer in.Unlock()

	if wp, ok := in.entries[key]; ok {
		if v := wp.Value(); v != nil {
			return v
		}
	}

	log.Debugf("interner: building %v", key)

	v := build()
	if v == nil {
		return nil
	}

	wp := weak.Make(v)
	in.entries[key] = wp
	runtime.AddCleanup(v, in.remove, entryKey[K, V]{key: key, wp: wp})
	return v
}

type entryKey[K comparable, V any] struct {
	key K
	wp  weak.Pointer[V]
}

// remove drops a collected entry unless the key was re-interned since.
func (in *Interner[K, V]) remove(e entryKey[K, V]) {
	in.Lock()
	defer in.Unlock()

	if in.entries[e.key] == e.wp {
		delete(in.entries, e.key)
	}
}

// Len returns the number of entries, including ones whose value was
// collected but not cleaned up yet.
func (in *Interner[K, V]) Len() int {
	in.Lock()
	defer in.Unlock()
	return len(in.entries)
}

// Purge forgets every entry. Values already handed out stay valid.
func (in *Interner[K, V]) Purge() {
	in.Lock()
	defer in.Unlock()
	clear(in.entries)
}
