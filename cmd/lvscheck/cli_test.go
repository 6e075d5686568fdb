package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleTransistorCIF = `
L NA;
P 0 0 100 0 100 40 0 40;
L SN;
P 40 -10 60 -10 60 50 40 50;
L SI;
P 40 -20 60 -20 60 60 40 60;
L CNA;
P 5 5 15 5 15 15 5 15;
L M1;
P 0 0 40 0 40 40 0 40;
L CNA;
P 65 5 75 5 75 15 65 15;
L M1;
P 60 0 100 0 100 40 60 40;
`

const singleTransistorNetlist = "T1 N g d s\n"

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestVerifyCommandReportsEquivalence(t *testing.T) {
	dir := t.TempDir()
	layoutPath := writeTestFile(t, dir, "layout.cif", singleTransistorCIF)
	netPath := writeTestFile(t, dir, "schematic.net", singleTransistorNetlist)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"verify", "--layout", layoutPath, "--netlist", netPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "equivalent")
}

func TestSubcircuitsCommandFindsSingleMatch(t *testing.T) {
	dir := t.TempDir()
	layoutPath := writeTestFile(t, dir, "layout.cif", singleTransistorCIF)
	netPath := writeTestFile(t, dir, "pattern.net", singleTransistorNetlist)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"subcircuits", "--layout", layoutPath, "--pattern", netPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1 instance(s) found")
}
