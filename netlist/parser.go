package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/schematic"
)

// ErrMalformedRecord indicates a netlist line did not have exactly five
// whitespace-separated tokens, or its kind token was not "N" or "P".
var ErrMalformedRecord = errors.New("netlist: malformed record")

// Parse reads netlist records (spec §6: "<instance_id> <kind> <gate>
// <drain> <source>", one per line) from r. Blank lines are skipped. The
// first malformed line aborts parsing and returns ErrMalformedRecord
// wrapped with the line number; this is an input-format error, not one of
// the core's drop-and-continue geometry error kinds (spec §7), so it is
// returned rather than logged.
func Parse(r io.Reader) ([]schematic.Record, error) {
	var records []schematic.Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("netlist: line %d: %w: want 5 fields, got %d", lineNo, ErrMalformedRecord, len(fields))
		}

		kind := device.Kind(fields[1])
		if kind != device.KindN && kind != device.KindP {
			return nil, fmt.Errorf("netlist: line %d: %w: kind %q is not N or P", lineNo, ErrMalformedRecord, fields[1])
		}

		records = append(records, schematic.Record{
			InstanceID: fields[0],
			Kind:       kind,
			Gate:       fields[2],
			Drain:      fields[3],
			Source:     fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}

	return records, nil
}
