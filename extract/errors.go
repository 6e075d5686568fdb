// errors.go -- sentinel errors for the extract package.
//
// Error policy follows spec §7: no exception escapes the extractor's
// boundary. InconsistentLayers is not returned as an error at all -- the
// offending record is dropped and logged, and extraction continues
// (partial results remain available, per §7's final sentence).
// DegenerateSplit likewise causes the candidate transistor to be
// skipped, not a hard failure. These sentinels exist so callers and
// tests can assert on logged error *kinds* via errors.Is, even though no
// caller-visible error value is ever returned for them from Extract.
//
// Malformed-geometry drops (spec §7's other classification) never
// originate inside this package: polygons reaching a Circuit have
// already passed through cif.Parse (which classifies and logs its own
// drops) or through geom's own ops (geom.ErrDegenerate). Extract has no
// call site of its own that would need a parallel sentinel.
package extract

import "errors"

var (
	// ErrInconsistentLayers classifies a contact record naming a layer
	// absent from the store (spec §7).
	ErrInconsistentLayers = errors.New("extract: layer referenced by contact not present")

	// ErrDegenerateSplit classifies a gate/active-area subtraction that
	// failed to produce exactly two pieces (spec §7).
	ErrDegenerateSplit = errors.New("extract: split did not produce exactly two pieces")
)
