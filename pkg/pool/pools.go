package pool

// Convenience constructors for common pool shapes. All of them are
// idempotent per key: the first call registers the pool, later calls
// return the cached one.

// Slices returns the slice pool registered under key. Created slices
// start empty with zero capacity; the put hook clears the elements and
// truncates to length zero, so a recycled slice keeps its capacity but
// none of its contents. Slices are pooled through pointers so the reset
// survives the round trip.
func Slices[T any](r *Registry, key Key) (*Pool[*[]T], error) {
	return New(r, key,
		func() *[]T {
			return new([]T)
		},
		WithOnPut(func(s *[]T) {
			clear(*s)
			*s = (*s)[:0]
		}),
	)
}

// Maps returns the map pool registered under key, one per key/value
// type pair. The put hook clears the map in place, preserving identity
// and capacity.
func Maps[K comparable, V any](r *Registry, key Key) (*Pool[map[K]V], error) {
	return New(r, key,
		func() map[K]V {
			return make(map[K]V)
		},
		WithOnPut(func(m map[K]V) {
			clear(m)
		}),
	)
}

// Node is a generic tree node, the fixed element shape served by Nodes
// pools. Recycled nodes are handed out as-is: the node pool carries no
// reset hook, so clearing links before Put is the caller's job.
type Node struct {
	// Label names the node within its tree
	Label string `json:"label,omitempty"`
	// Value is the node payload
	Value interface{} `json:"value,omitempty"`
	// Parent links to the owning node, nil at the root
	Parent *Node `json:"-"`
	// Children holds the ordered child nodes
	Children []*Node `json:"children,omitempty"`
}

// Nodes returns the tree-node pool registered under key.
func Nodes(r *Registry, key Key) (*Pool[*Node], error) {
	return New(r, key, func() *Node {
		return &Node{}
	})
}
