package builder

// Constructor names, used to prefix errors.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
	MethodConnected    = "Connected"
	MethodRandomArray  = "RandomArray"
)

// MinCycleNodes is the smallest cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinCompleteNodes is the smallest complete graph (K_1, a single vertex).
const MinCompleteNodes = 1

// MinRandomNodes is the smallest vertex count accepted by the random constructors.
const MinRandomNodes = 1

// DefaultEdgeWeight is the weight of every edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// MinProbability and MaxProbability bound the edge probability, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Array defaults: values are drawn from 1..DefaultArrayMax and arrays hold
// DefaultArraySize values unless asked otherwise.
const (
	DefaultArraySize       = 20
	DefaultArrayMax  int64 = 100
)
