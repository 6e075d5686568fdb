package cif

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/opencircuit/lvscheck/geom"
	"github.com/opencircuit/lvscheck/layer"
)

var intPattern = regexp.MustCompile(`-?\d+`)

// options configures Parse. Mirrors extract.WithLogger's functional-
// option idiom.
type options struct {
	log logr.Logger
}

// Option configures Parse.
type Option func(*options)

// WithLogger attaches a structured logger; dropped malformed-geometry
// records (spec §7) report through it. Default is logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// Parse reads a CIF-like layout stream into a layer.Store.
//
// Grounded on original_source TopologicalCircuit.__init__'s line scan,
// extended to accumulate a "P" record across multiple lines until its
// terminating ';' (spec §6 "line continuation is permitted until the
// terminating ';'", a requirement the original's single-line scan does
// not implement). Degenerate polygons -- fewer than 3 vertices, or an odd
// coordinate count -- are dropped and logged (spec §7 MalformedGeometry),
// then parsing continues.
func Parse(r io.Reader, opts ...Option) (*layer.Store, error) {
	cfg := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := layer.NewStore()
	scanner := bufio.NewScanner(r)

	var currentLayer string
	var pending strings.Builder
	inRecord := false

	flush := func() {
		if !inRecord {
			return
		}
		addPolygon(store, cfg.log, currentLayer, pending.String())
		pending.Reset()
		inRecord = false
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !inRecord {
			switch {
			case strings.HasPrefix(line, "L "):
				currentLayer = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(line, "L ")), ";")

				continue
			case strings.HasPrefix(line, "P "):
				inRecord = true
				pending.WriteString(strings.TrimPrefix(line, "P "))
			default:
				continue
			}
		} else {
			pending.WriteString(" ")
			pending.WriteString(line)
		}

		if strings.Contains(line, ";") {
			flush()
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return store, nil
}

func addPolygon(store *layer.Store, log logr.Logger, layerName, body string) {
	if layerName == "" {
		return
	}

	matches := intPattern.FindAllString(body, -1)
	coords := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		coords = append(coords, v)
	}

	if len(coords) < 6 || len(coords)%2 != 0 {
		err := fmt.Errorf("%w: %d coordinate value(s)", ErrMalformedGeometry, len(coords))
		log.V(1).Info("dropping polygon record", "layer", layerName, "err", err)

		return
	}

	pts := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, geom.Point{X: coords[i], Y: coords[i+1]})
	}

	p, err := geom.NewPolygon(pts)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
		log.V(1).Info("dropping polygon record", "layer", layerName, "err", err)

		return
	}

	store.Add(layerName, p)
}
