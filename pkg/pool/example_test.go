// Package pool provides example usage of the object-reuse registry.
package pool_test

import (
	"fmt"

	"github.com/poolforge/reuse/pkg/pool"
)

// Example demonstrates the basic get/put cycle against a slice pool.
func Example() {
	reg := pool.NewRegistry()

	ints, err := pool.Slices[int](reg, "ints")
	if err != nil {
		panic(err)
	}

	s := ints.Get()
	*s = append(*s, 1, 2, 3)
	fmt.Println("in use:", len(*s))

	// Put clears the slice before it enters the free-list.
	ints.Put(s)
	fmt.Println("free:", ints.Len())

	recycled := ints.Get()
	fmt.Println("recycled length:", len(*recycled))

	// Output:
	// in use: 3
	// free: 1
	// recycled length: 0
}

// ExampleNew shows a custom pool with create and reset callbacks.
func ExampleNew() {
	reg := pool.NewRegistry()

	type buffer struct{ data []byte }

	buffers, err := pool.New(reg, "buffers",
		func() *buffer { return &buffer{data: make([]byte, 0, 1024)} },
		pool.WithOnPut(func(b *buffer) { b.data = b.data[:0] }),
	)
	if err != nil {
		panic(err)
	}

	b := buffers.Get()
	b.data = append(b.data, "payload"...)
	buffers.Put(b)

	fmt.Println("free:", buffers.Len())

	// Output:
	// free: 1
}

// ExampleLookup shows the pure query path: it never creates a pool.
func ExampleLookup() {
	reg := pool.NewRegistry()

	if _, err := pool.Lookup[int](reg, "missing"); err != nil {
		fmt.Println("lookup failed")
	}
	fmt.Println("registered pools:", reg.Len())

	// Output:
	// lookup failed
	// registered pools: 0
}
