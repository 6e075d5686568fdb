package geom

import (
	"encoding/binary"

	highway "github.com/ajroetker/go-highway"
)

// hashKey is a fixed HighwayHash key. It only needs to be stable within one
// process lifetime (it never leaves the process), so a compile-time
// constant is sufficient -- we are not defending against adversarial input,
// only deduplicating polygons.
var hashKey = [4]uint64{
	0x706f6c79676f6e31, // "polygon1"
	0x6c76736368656b00, // "lvschek\x00"
	0x6c617965722e6861, // "layer.ha"
	0x7368000000000000, // "sh"
}

// canonicalize returns p's vertex sequence rotated so that the
// lexicographically smallest point comes first, and direction-normalized
// (reversed if that makes the second vertex smaller), so that cyclic
// rotations and winding-direction flips of the same polygon hash and
// compare equal.
func canonicalize(p Polygon) []Point {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}

	start := 0
	for i := 1; i < n; i++ {
		if lexLess(p.Vertices[i], p.Vertices[start]) {
			start = i
		}
	}

	fwd := make([]Point, n)
	for i := 0; i < n; i++ {
		fwd[i] = p.Vertices[(start+i)%n]
	}

	rev := make([]Point, n)
	rev[0] = fwd[0]
	for i := 1; i < n; i++ {
		rev[i] = fwd[n-i]
	}

	if n > 1 && lexLess(rev[1], fwd[1]) {
		return rev
	}

	return fwd
}

// canonicalHash returns a HighwayHash digest of p's canonicalized vertex
// sequence. Two polygons that are Equal always hash equal; the converse
// holds with overwhelming probability and is only ever used as a fast
// pre-filter ahead of Equal, never as Equal's sole implementation.
func canonicalHash(p Polygon) uint64 {
	c := canonicalize(p)
	buf := make([]byte, 0, len(c)*16)
	for _, pt := range c {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(pt.X)))
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(pt.Y)))
		buf = append(buf, tmp[:]...)
	}

	return highway.Hash64(hashKey, buf)
}

// Hash returns a fast, stable dedup key for p: two Equal polygons always
// share a Hash, but a shared Hash does not itself prove equality (see
// Equal for the authoritative comparison). Intended for use as a map/sort
// key ahead of the more expensive Equal check, e.g. in layer.Store.Dedup.
func Hash(p Polygon) uint64 {
	return canonicalHash(p)
}

// Equal reports whether p and q have equal vertex sequences when compared
// as unordered cyclic sets (spec §3): rotations and winding-order
// reversals of the same ring are equal.
func (p Polygon) Equal(q Polygon) bool {
	if len(p.Vertices) != len(q.Vertices) {
		return false
	}
	if canonicalHash(p) != canonicalHash(q) {
		return false
	}
	cp, cq := canonicalize(p), canonicalize(q)
	for i := range cp {
		if cp[i] != cq[i] {
			return false
		}
	}

	return true
}
