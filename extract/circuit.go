package extract

import (
	"github.com/go-logr/logr"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/layer"
)

// Circuit owns every geometry, device, contact, and net artifact produced
// while extracting one layout (spec §5 "each Circuit owns all its ...
// data for its full lifetime"). It is not safe for concurrent mutation;
// concurrent read of the final graph is.
type Circuit struct {
	Store *layer.Store

	Transistors []*device.Transistor
	Contacts    []*device.Contact
	Nets        []*device.Net

	ids    device.IDAllocator
	log    logr.Logger
	config options
}

type options struct {
	log       logr.Logger
	families  []device.ContactFamily
}

// Option configures a Circuit before extraction.
type Option func(*options)

// WithLogger attaches a structured logger; extraction's drop-and-continue
// error policy (spec §7) reports through it. Default is logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithContactFamilies overrides the six contact families of spec §4.3.2.
// Default is DefaultContactFamilies().
func WithContactFamilies(families []device.ContactFamily) Option {
	return func(o *options) { o.families = families }
}

// NewCircuit returns a Circuit over store, ready for Extract.
func NewCircuit(store *layer.Store, opts ...Option) *Circuit {
	cfg := options{log: logr.Discard(), families: DefaultContactFamilies()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Circuit{Store: store, log: cfg.log, config: cfg}
}

// netByID finds a net by id; nil if absent (including nets removed by
// gate-net unification or same-layer merging). Nets absorbed by the §4.4
// rules are still returned, with Visible false. Contacts and
// transistors never exceed a few hundred per Circuit in practice, so a
// linear scan here is simpler than a parallel id-indexed map and doesn't
// show up in profiles next to the O(n^2) geometry scans.
func (c *Circuit) netByID(id device.ID) *device.Net {
	for _, n := range c.Nets {
		if n.ID == id {
			return n
		}
	}

	return nil
}

func (c *Circuit) transistorByID(id device.ID) *device.Transistor {
	for _, t := range c.Transistors {
		if t.ID == id {
			return t
		}
	}

	return nil
}

func (c *Circuit) contactByID(id device.ID) *device.Contact {
	for _, cc := range c.Contacts {
		if cc.ID == id {
			return cc
		}
	}

	return nil
}

// Extract runs all nine layout-extraction passes (spec §4.3) followed by
// the three net-merger absorption rules (spec §4.4), then returns the
// final labeled circuitgraph.Graph (spec §4.4 "Final graph").
func (c *Circuit) Extract() *circuitgraph.Graph {
	c.Store.Dedup()

	c.discoverTransistors()
	c.discoverContacts()
	c.discoverNets()
	c.unifyGateNets()
	c.mergeSameLayerNets()
	c.wireContactsToNets()
	c.wireTransistorsToContacts()
	c.synthesizeTransistorAdjacency()
	c.wireGateEdges()

	c.absorbContacts()
	c.absorbM2()
	c.absorbSI()

	return c.buildGraph()
}
