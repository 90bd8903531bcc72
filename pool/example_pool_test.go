package pool_test

import (
	"fmt"

	"github.com/plus3/danmaku/pool"
)

// ExamplePool demonstrates leasing and returning slots.
// Returned slots are reused in the order they were returned, and the pool
// grows instead of failing when every slot is in use.
func ExamplePool() {
	p := pool.New[Dummy]("shots", 1, pool.WithLogger(quietLogger()))

	first, shot := p.Get()
	shot.Label = "first"

	second, _ := p.Get() // grows past the preallocated slot

	_ = p.Put(first)
	_ = p.Put(second)

	stats := p.Stats()
	fmt.Printf("capacity=%d in_use=%d exhaustions=%d high_water=%d\n",
		stats.Capacity, stats.InUse, stats.Exhaustions, stats.HighWater)

	// Output:
	// capacity=2 in_use=0 exhaustions=1 high_water=2
}
