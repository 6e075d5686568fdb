// Package cif parses the CIF-like layout text format consumed by extract
// (spec §6): "L <name>;" switches the current layer, "P <x1> <y1> ...;"
// adds a polygon to it. A polygon record may continue across lines until
// its terminating ';'.
package cif
