// Package reuse provides a keyed object-reuse registry that amortizes
// allocation and reclamation cost for frequently created and destroyed
// objects by recycling instances instead of reallocating them.
//
// The registry maps logical pool keys to typed pools; each pool pairs a
// creation/reset policy with a per-pool free-list. Pools and free-lists
// are created lazily on first use and cached for the life of the
// registry, so every caller asking for the same key shares one pool.
//
// # Packages
//
//   - pkg/pool: the registry, typed pools, and the slice/map/node/widget
//     convenience constructors
//   - pkg/errors: structured errors with the pool failure taxonomy
//   - pkg/logger: zap-based structured logging
//   - pkg/config: declarative pool configuration (YAML)
//   - pkg/metrics: prometheus collector for pool traffic
//   - pkg/json: pooled JSON serialization helpers
//
// # Quick start
//
//	import "github.com/poolforge/reuse/pkg/pool"
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
//	ints.Put(s) // cleared before it re-enters the free-list
//
// The reuse binary (cmd/reuse) exercises configured pools and reports
// per-pool statistics and prometheus metrics.
package reuse
