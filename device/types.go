package device

import (
	"sync/atomic"

	"github.com/opencircuit/lvscheck/geom"
)

// Kind is a transistor's channel type.
type Kind string

const (
	// KindN is an n-channel transistor (gate material layer SN).
	KindN Kind = "N"
	// KindP is a p-channel transistor (gate material layer SP).
	KindP Kind = "P"
)

// ID identifies a Transistor, Contact, or Net within one Circuit. IDs are
// allocated from a single per-Circuit counter (spec §9: "the original has
// a module-level id counter on each circuit object; specify it as a
// per-Circuit field"), so a Transistor, Contact, and Net can never
// collide even though they live in separate slices.
type ID int

// IDAllocator is a per-Circuit monotonic id counter. Zero value is ready
// to use, starting at 0.
type IDAllocator struct {
	next int64
}

// Next returns the next unused ID.
func (a *IDAllocator) Next() ID {
	return ID(atomic.AddInt64(&a.next, 1) - 1)
}

// Transistor is an extracted or schematic device. Exactly one gate and
// two non-gate terminals; drain and source are interchangeable, so the
// device graph treats them identically (spec §3).
type Transistor struct {
	ID   ID
	Kind Kind

	// Geometric regions, set only for extracted (layout) transistors.
	Gate, Drain, Source geom.Polygon

	// Schematic net names, set only for schematic transistors.
	GateName, DrainName, SourceName string

	// TerminalNets is the drain+source side edge-set (net ids it is wired
	// to via a terminal). Must have exactly 2 entries once wiring
	// completes (spec §8 invariant 1).
	TerminalNets map[ID]struct{}

	// GateNets is the gate-side edge-set; at least 1 entry once wiring
	// completes.
	GateNets map[ID]struct{}
}

// NewTransistor returns a Transistor with initialized edge-sets.
func NewTransistor(id ID, kind Kind) *Transistor {
	return &Transistor{
		ID:           id,
		Kind:         kind,
		TerminalNets: make(map[ID]struct{}),
		GateNets:     make(map[ID]struct{}),
	}
}

// AddTerminalNet records net as a drain/source-side neighbor.
func (t *Transistor) AddTerminalNet(net ID) { t.TerminalNets[net] = struct{}{} }

// AddGateNet records net as a gate-side neighbor.
func (t *Transistor) AddGateNet(net ID) { t.GateNets[net] = struct{}{} }

// ContactFamily names one of the six recognized contact families (spec
// §4.3.2).
type ContactFamily struct {
	Name           string // kind tag, e.g. "CN", "CNE", "CM", "CSI"
	ContactLayer   string // e.g. "CNA"
	EnclosingLayer string // e.g. "NA"
	UpperLayer     string // e.g. "M1"
	// Equipotential requires Intersects(upper, enclosing) rather than the
	// strict identity rule used by ohmic-tap/inter-metal families (spec
	// §4.3.2).
	Equipotential bool
}

// Contact is a stacked-via object joining two named layers (spec §3). It
// is intermediate: extract's contact-absorption pass turns it into a
// clique over its adjacent nets/transistors and it never becomes a graph
// node itself.
type Contact struct {
	ID       ID
	Family   string // ContactFamily.Name this contact instance belongs to
	Lower    string // ContactFamily.EnclosingLayer
	Upper    string // ContactFamily.UpperLayer
	Polygon  geom.Polygon
	Enclosed geom.Polygon // the enclosing polygon on Lower found for this contact

	// Adjacent is the set of net/transistor ids this contact connects;
	// populated by extract's wiring passes (spec §4.3.6, §4.3.7).
	Adjacent map[ID]struct{}
}

// NewContact returns a Contact with an initialized adjacency set.
func NewContact(id ID, family, lower, upper string, poly, enclosed geom.Polygon) *Contact {
	return &Contact{
		ID:       id,
		Family:   family,
		Lower:    lower,
		Upper:    upper,
		Polygon:  poly,
		Enclosed: enclosed,
		Adjacent: make(map[ID]struct{}),
	}
}

// AddAdjacent records id as adjacent to this contact.
func (c *Contact) AddAdjacent(id ID) { c.Adjacent[id] = struct{}{} }

// Net is an equipotential conductor (spec §3): a routing-layer name, a set
// of (possibly multiple, same-layer, touching) polygons, and two
// edge-sets -- Connections and GraphConnections (neighbor nets after
// merging). Visible is false once the net has been absorbed into another;
// that is terminal.
type Net struct {
	ID       ID
	Layer    string
	Name     string // schematic net name, or a synthesized name for layout nets
	Polygons []geom.Polygon

	// Connections is a set of transistor/contact ids filled only through
	// AddConnection. The extract passes never call it, so the set stays
	// empty for extracted nets; transistor-to-net incidence is recorded on
	// Transistor.TerminalNets and Transistor.GateNets instead.
	Connections map[ID]struct{}

	// GraphConnections holds neighbor net ids after contact absorption
	// (spec §4.4 rule 1) -- populated during net merging, consumed when
	// building the final circuitgraph.
	GraphConnections map[ID]struct{}

	Visible bool
}

// NewNet returns a visible Net with initialized edge-sets.
func NewNet(id ID, layerName, name string, polys ...geom.Polygon) *Net {
	return &Net{
		ID:               id,
		Layer:            layerName,
		Name:             name,
		Polygons:         append([]geom.Polygon(nil), polys...),
		Connections:      make(map[ID]struct{}),
		GraphConnections: make(map[ID]struct{}),
		Visible:          true,
	}
}

// AddConnection records a transistor or contact id as incident to n.
func (n *Net) AddConnection(id ID) { n.Connections[id] = struct{}{} }

// AddGraphConnection records a neighbor net id after absorption.
func (n *Net) AddGraphConnection(id ID) { n.GraphConnections[id] = struct{}{} }
