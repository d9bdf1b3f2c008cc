package metrics

// Pre-defined metrics for the hash-to-G2 mapper. All metrics live in
// DefaultRegistry so they are globally accessible without passing a registry
// around. Per-family cofactor counters are created on demand under
// "h2c.cofactor.<family>".

var (
	// MapCalls counts calls to the hash-to-curve map.
	MapCalls = DefaultRegistry.Counter("h2c.map.calls")
	// MapFailures counts map calls that returned an error.
	MapFailures = DefaultRegistry.Counter("h2c.map.failures")
	// MapTime records map latency in microseconds.
	MapTime = DefaultRegistry.Histogram("h2c.map.us")
	// SearchIterations records the number of candidate x values tried per
	// successful map.
	SearchIterations = DefaultRegistry.Histogram("h2c.search.iterations")
)

// CofactorCounter returns the counter of cofactor clearings performed with
// the given family's strategy.
func CofactorCounter(family string) *Counter {
	return DefaultRegistry.Counter("h2c.cofactor." + family)
}
