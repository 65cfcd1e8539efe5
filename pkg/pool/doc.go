// Package pool implements a keyed object-reuse registry. It amortizes
// allocation cost for frequently created and destroyed objects (slices,
// maps, tree nodes, UI widgets) by recycling instances through per-pool
// free-lists instead of reallocating them.
//
// # Architecture
//
// A Registry maps logical pool keys to typed pools. Each Pool[T] carries
// the policy for one kind of object (a required create callback plus
// optional get/put hooks) and is bound at creation time to a storage slot
// inside the registry, so two pools never share a free-list even when
// their element types match. Pools and their free-lists are created
// lazily on first use and live for the lifetime of the registry.
//
// Core types:
//
//   - Registry: owns the key->pool map and the storage arena
//   - Pool[T]: per-key policy with Get/Put/Len/Warm/Stats
//   - Convenience constructors: Slices, Maps, Nodes, Widgets
//
// # Usage
//
//	reg := pool.NewRegistry()
//
//	ints, err := pool.Slices[int](reg, "ints")
//	if err != nil {
//		return err
//	}
//
//	s := ints.Get()
//	*s = append(*s, 1, 2, 3)
//	ints.Put(s) // truncated and cleared before it is stored
//
// Custom pools take a factory and optional hooks:
//
//	bufs, err := pool.New(reg, "buffers",
//		func() *bytes.Buffer { return &bytes.Buffer{} },
//		pool.WithOnPut(func(b *bytes.Buffer) { b.Reset() }),
//	)
//
// # Ownership and concurrency
//
// A popped instance is exclusively the caller's until it is put back;
// while resident in a free-list it is exclusively the pool's. The
// registry never tracks which state an instance is in: putting the same
// instance twice, or putting an instance that was never popped from the
// pool, corrupts that contract and is the caller's bug.
//
// The registry has no internal locking. It is meant to be owned by one
// logical thread of control (a frame or update loop); use one registry
// per goroutine, or synchronize externally. Free-lists grow monotonically
// and are never drained or bounded.
package pool
