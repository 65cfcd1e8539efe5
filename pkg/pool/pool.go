package pool

// Pool describes how one kind of object is created, recycled, and reset.
// It holds no instances itself; those live in the registry storage slot
// the pool was bound to when it was created. Obtain pools through New or
// the convenience constructors, never by constructing the struct.
//
// Pools are immutable after construction apart from their counters.
type Pool[T any] struct {
	reg    *Registry
	key    Key
	handle int

	create func() T
	onGet  func(T)
	onPut  func(T)

	stats struct {
		created int64
		reused  int64
		gets    int64
		puts    int64
	}
}

// Option configures a pool at construction time.
type Option[T any] func(*Pool[T])

// WithOnGet sets a hook that runs on every successful Get, whether the
// instance came from the free-list or from the create callback. It runs
// after the instance is obtained and before Get returns.
func WithOnGet[T any](fn func(T)) Option[T] {
	return func(p *Pool[T]) {
		p.onGet = fn
	}
}

// WithOnPut sets a hook that runs exactly once per Put, before the
// instance enters the free-list. It must leave the instance in a state
// indistinguishable from a freshly created one for the next consumer,
// e.g. by clearing a collection while keeping its identity.
func WithOnPut[T any](fn func(T)) Option[T] {
	return func(p *Pool[T]) {
		p.onPut = fn
	}
}

// Key returns the logical key the pool was registered under.
func (p *Pool[T]) Key() Key {
	return p.key
}

// Get returns a recycled instance if the free-list is non-empty, and a
// freshly created one otherwise. The first Get on a new pool always
// creates. The caller owns the instance until it calls Put.
func (p *Pool[T]) Get() T {
	s := p.storage()

	var obj T
	reused := s.len() > 0
	if reused {
		var err error
		obj, err = s.pop()
		if err != nil {
			// Unreachable: guarded by the length check above.
			panic(err)
		}
		p.stats.reused++
	} else {
		obj = p.create()
		p.stats.created++
	}
	p.stats.gets++

	if p.onGet != nil {
		p.onGet(obj)
	}
	p.reg.observeGet(p.key, reused)
	return obj
}

// Put resets obj through the put hook and places it in the free-list.
// The pool does not check provenance: putting an instance twice, or one
// that was never popped from this pool, is the caller's bug.
func (p *Pool[T]) Put(obj T) {
	if p.onPut != nil {
		p.onPut(obj)
	}
	p.storage().push(obj)
	p.stats.puts++
	p.reg.observePut(p.key)
}

// Len reports the number of instances currently resident in the
// free-list. It does not count instances outstanding with callers.
func (p *Pool[T]) Len() int {
	return p.freeLen()
}

// Warm pre-fills the free-list with n freshly created instances, each
// run through the put hook so it is handed out later as-is. Warming is
/// provisioning, not traffic: it counts toward Created and Free but not
// toward Puts or Outstanding, and the observer is not notified.
func (p *Pool[T]) Warm(n int) {
	for i := 0; i < n; i++ {
		obj := p.create()
		p.stats.created++
		if p.onPut != nil {
			p.onPut(obj)
		}
		p.storage().push(obj)
	}
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return p.statsSnapshot()
}

// storage returns the free-list bound to this pool, creating it on
// first use. The slot was reserved when the pool was registered, so the
// type assertion cannot fail.
func (p *Pool[T]) storage() *storage[T] {
	slot := p.reg.storages[p.handle]
	if slot == nil {
		s := &storage[T]{}
		p.reg.storages[p.handle] = s
		return s
	}
	return slot.(*storage[T])
}

// freeLen implements the pooled interface without forcing storage
// creation on read-only access.
func (p *Pool[T]) freeLen() int {
	slot := p.reg.storages[p.handle]
	if slot == nil {
		return 0
	}
	return slot.(*storage[T]).len()
}

func (p *Pool[T]) statsSnapshot() Stats {
	return Stats{
		Key:         string(p.key),
		Created:     p.stats.created,
		Reused:      p.stats.reused,
		Gets:        p.stats.gets,
		Puts:        p.stats.puts,
		Free:        p.freeLen(),
		Outstanding: p.stats.gets - p.stats.puts,
	}
}
