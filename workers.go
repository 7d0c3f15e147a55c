package readmedocs

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one document is processed at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent retrievals to stay polite with the API.
	MaxWorkers = 8
)

// ResolveWorkers determines how many documents to process concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
