package verify

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/discrepancy"
	"github.com/opencircuit/lvscheck/isomorphism"
	"github.com/opencircuit/lvscheck/reduce"
)

// Result is the verification return value of spec §6: "(is_equivalent,
// discrepant_layout_node_ids, elapsed_seconds)".
type Result struct {
	Equivalent              bool
	DiscrepantLayoutNodeIDs []int
	ElapsedSeconds          float64
}

// SubcircuitResult is the subcircuit-search return value of spec §6:
// "(list of node-id sets in the layout, elapsed_seconds)".
type SubcircuitResult struct {
	Instances      [][]int
	ElapsedSeconds float64
}

type options struct {
	log logr.Logger
}

// Option configures Verify/FindSubcircuits.
type Option func(*options)

// WithLogger attaches a structured logger; every log line of one call
// carries a shared correlation id so overlapping callers' logs can be
// told apart.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	cfg := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Verify reduces both graphs (spec §4.6) and tests layout for subgraph
// isomorphism against schematic (spec §4.7). On failure it reruns the
// discrepancy locator (spec §4.8) against the unreduced graphs, since
// reduction can relabel or merge exactly the nodes the locator is meant
// to name.
func Verify(layout, schematic *circuitgraph.Graph, opts ...Option) Result {
	cfg := newOptions(opts)
	runID := uuid.NewString()
	log := cfg.log.WithValues("run_id", runID, "op", "verify")
	start := time.Now()

	reducedLayout := reduce.Reduce(layout)
	reducedSchematic := reduce.Reduce(schematic)

	ok, _ := isomorphism.SubgraphIsomorphic(reducedLayout, reducedSchematic)
	if ok {
		log.V(1).Info("equivalent")

		return Result{Equivalent: true, ElapsedSeconds: time.Since(start).Seconds()}
	}

	discrepant := discrepancy.Locate(layout, schematic)
	log.Info("discrepancy located", "node_count", len(discrepant))

	return Result{
		Equivalent:              false,
		DiscrepantLayoutNodeIDs: discrepant,
		ElapsedSeconds:          time.Since(start).Seconds(),
	}
}

// FindSubcircuits repeatedly locates pattern within layout (spec §4.7
// "repeated-pattern search"), returning every edge-disjoint match's
// node-id set in discovery order. Matches may share nodes.
func FindSubcircuits(pattern, layout *circuitgraph.Graph, opts ...Option) SubcircuitResult {
	cfg := newOptions(opts)
	runID := uuid.NewString()
	log := cfg.log.WithValues("run_id", runID, "op", "find_subcircuits")
	start := time.Now()

	instances := isomorphism.FindRepeatedPatterns(pattern, layout)
	log.V(1).Info("subcircuit search complete", "instance_count", len(instances))

	return SubcircuitResult{Instances: instances, ElapsedSeconds: time.Since(start).Seconds()}
}
