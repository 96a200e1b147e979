package indicatorv2

import (
	"fmt"

	"github.com/c9s/indicators/pkg/indicator"
)

// Previous yields the value n indices back. It reads history at random, so
// the upstream indicator gets its memo table enabled.
func Previous[T any](upstream indicator.Interface[T], n int) *indicator.Indicator[T] {
	if n <= 0 {
		panic(fmt.Errorf("previous: n must be greater than zero, %d given", n))
	}

	upstream.EnableCaching()
	return indicator.New(upstream.Source(), indicator.StableIndex(n, upstream), func(index int64) T {
		return upstream.Value(max(0, index-int64(n)))
	}, indicator.Cacheless(), indicator.WithName("previous"))
}
