package engine

// Edge reflection constants
const (
	// edgeFactor is the number of reflected samples added at each end of the
	// signal per unit of filter order. The orchestrator requires more input
	// samples than edgeFactor*order.
	edgeFactor = 3
)

// Coefficient normalization constants
const (
	// unityLeadingCoefficient is the value a[0] takes after normalization.
	unityLeadingCoefficient = 1.0
)
