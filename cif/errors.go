package cif

import "errors"

// ErrMalformedGeometry classifies a polygon record Parse dropped: fewer
// than 3 vertices, or an odd coordinate count (spec §7 MalformedGeometry
// -- the offending record is dropped and logged, parsing continues).
var ErrMalformedGeometry = errors.New("cif: malformed geometry")
