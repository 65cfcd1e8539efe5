package pool

import (
	"sort"

	"go.uber.org/zap"

	"github.com/poolforge/reuse/pkg/errors"
)

// Key is the logical identity of a pool within a registry. Applications
// define their keys as compile-time constants; two requests for the same
// key always resolve to the same pool for the life of the registry.
type Key string

// pooled is the type-erased view of a *Pool[T] held by the registry.
type pooled interface {
	freeLen() int
	statsSnapshot() Stats
}

// Stats is a snapshot of one pool's counters.
type Stats struct {
	// Key is the logical pool key
	Key string `json:"key"`
	// Created counts instances produced by the create callback
	Created int64 `json:"created"`
	// Reused counts instances served from the free-list
	Reused int64 `json:"reused"`
	// Gets counts all Get calls
	Gets int64 `json:"gets"`
	// Puts counts all Put calls
	Puts int64 `json:"puts"`
	// Free is the current free-list length
	Free int `json:"free"`
	// Outstanding is the number of instances currently with callers
	Outstanding int64 `json:"outstanding"`
}

// Observer receives pool lifecycle and traffic events. The metrics
// package provides a prometheus-backed implementation.
type Observer interface {
	PoolRegistered(key string)
	ObserveGet(key string, reused bool)
	ObservePut(key string)
}

// Registry owns the key->pool mapping and the storage arena behind all
// pools. Both are populated lazily and never shrink. Construct one with
// NewRegistry and pass it to whatever needs pooling; isolated registries
// keep tests independent.
//
// The registry has no internal locking; see the package documentation
// for the single-owner contract.
type Registry struct {
	pools    map[Key]pooled
	storages []interface{}
	logger   *zap.Logger
	observer Observer
}

// RegistryOption configures a registry at construction time.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithObserver attaches an observer for pool traffic.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) {
		r.observer = o
	}
}

// NewRegistry creates an empty pool registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		pools: make(map[Key]pooled),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// New returns the pool registered under key, creating it on first call.
// Repeated calls with the same key return the same pool; later options
// are ignored in favor of the cached policy.
//
// A nil create callback is a configuration error and fails immediately,
// before any registration. Requesting a key that is already bound to a
// different element type is a type-mismatch error; the registry never
// mixes element types within one storage.
func New[T any](r *Registry, key Key, create func() T, opts ...Option[T]) (*Pool[T], error) {
	if create == nil {
		return nil, errors.Newf(errors.ErrorTypeConfig, "pool %q has no create callback", key)
	}

	if existing, ok := r.pools[key]; ok {
		p, ok := existing.(*Pool[T])
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeMismatch,
				"pool %q is registered with a different element type", key)
		}
		return p, nil
	}

	p := &Pool[T]{
		reg:    r,
		key:    key,
		handle: len(r.storages),
		create: create,
	}
	for _, opt := range opts {
		opt(p)
	}

	// Reserve the storage slot; the free-list itself is created on first
	// Get/Put so an unused pool costs one nil slot.
	r.storages = append(r.storages, nil)
	r.pools[key] = p

	r.logger.Debug("pool registered",
		zap.String("pool_key", string(key)),
		zap.Int("handle", p.handle))
	if r.observer != nil {
		r.observer.PoolRegistered(string(key))
	}
	return p, nil
}

// Lookup returns the pool registered under key without creating one.
// It distinguishes an absent key (not-found error) from a key bound to a
// different element type (type-mismatch error).
func Lookup[T any](r *Registry, key Key) (*Pool[T], error) {
	existing, ok := r.pools[key]
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "no pool registered under key %q", key)
	}
	p, ok := existing.(*Pool[T])
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeMismatch,
			"pool %q is registered with a different element type", key)
	}
	return p, nil
}

// Has reports whether a pool is registered under key.
func (r *Registry) Has(key Key) bool {
	_, ok := r.pools[key]
	return ok
}

// Len reports the number of registered pools.
func (r *Registry) Len() int {
	return len(r.pools)
}

// Keys returns the registered pool keys in sorted order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.pools))
	for key := range r.pools {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Stats returns counter snapshots for every registered pool, sorted by
// key for stable output.
func (r *Registry) Stats() []Stats {
	stats := make([]Stats, 0, len(r.pools))
	for _, key := range r.Keys() {
		stats = append(stats, r.pools[key].statsSnapshot())
	}
	return stats
}

func (r *Registry) observeGet(key Key, reused bool) {
	if r.observer != nil {
		r.observer.ObserveGet(string(key), reused)
	}
}

func (r *Registry) observePut(key Key) {
	if r.observer != nil {
		r.observer.ObservePut(string(key))
	}
}
