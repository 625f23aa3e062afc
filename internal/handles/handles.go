// Package handles provides a process-wide table mapping word-sized
// integer handles to Go values.
//
// The display-driver protocol stores per-driver state and user callback
// objects in untyped pointer-sized slots that the renderer hands back
// verbatim on later calls. Placing a real pointer in such a slot is the
// classic fat-pointer-through-void* hazard; an integer key into a table
// carries no validity or free obligations, so a peer that caches, copies
// or even "frees" its copy of the slot cannot corrupt anything.
//
// The design follows runtime/cgo.Handle (atomic counter plus concurrent
// map); it is reimplemented here so the pure-Go core and its tests do
// not require cgo.
package handles

import (
	"sync"
	"sync/atomic"
)

// Handle is a word-sized key standing in for a stored value. The zero
// Handle is never issued and never resolves.
type Handle uintptr

var (
	next  atomic.Uintptr // last issued key; 0 reserved as invalid
	table sync.Map       // Handle -> any
)

// New stores v and returns a fresh handle for it. Every call issues a
// distinct handle, even for identical values.
func New(v any) Handle {
	h := Handle(next.Add(1))
	table.Store(h, v)
	return h
}

// Get returns the value a handle stands for. The second result is false
// if the handle was never issued or has been deleted.
//
// Get is a borrow: the value stays in the table.
func Get(h Handle) (any, bool) {
	return table.Load(h)
}

// Delete consumes a handle: the value is removed from the table and the
// handle stops resolving. Reports whether the handle was still live, so
// callers can verify exactly-once consumption.
func Delete(h Handle) bool {
	_, ok := table.LoadAndDelete(h)
	return ok
}

// Take consumes a handle and returns the value it stood for. The second
// result is false if the handle was not live; at most one caller can
// ever observe true for a given handle.
func Take(h Handle) (any, bool) {
	return table.LoadAndDelete(h)
}
