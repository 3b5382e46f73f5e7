package main

import (
	"fmt"
	"sync"

	"github.com/ENikS/HAMTrie/hamt"
)

func main() {
	tr := hamt.New[string, int](hamt.WithHasher(hamt.StringHasher))

	tr.Store("c", 1)
	tr.Store("a1", 3)
	tr.Store("a2", 4)
	tr.Store("a3", 5)
	tr.Store("a22", 6)
	tr.Store("bb", 7)

	for _, key := range []string{"a1", "a22", "zz"} {
		val, ok := tr.Lookup(key)
		fmt.Printf("Lookup(%s) -> %v %v\n", key, val, ok)
	}

	// a shared counter bumped from many goroutines
	var (
		hits = tr.GetOrInsertKey("hits")
		wg   sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 1000; j++ {
				hits.Update(func(old int) int { return old + 1 })
			}
		}()
	}

	wg.Wait()

	fmt.Printf("hits    -> %d\n", hits.Load())
	fmt.Printf("stats   -> %+v\n", tr.Stats())

	println("------")

	fmt.Print(tr.String())
}
