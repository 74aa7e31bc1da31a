package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/gonaz/internal/fault"
	"github.com/jcorbin/gonaz/internal/number"
)

func readSnapshot(t *testing.T, path string) (snap snapshot) {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	switch filepath.Ext(path) {
	case ".cbor":
		require.NoError(t, cbor.Unmarshal(data, &snap))
	default:
		require.NoError(t, yaml.Unmarshal(data, &snap))
	}
	return snap
}

func TestSnapshot(t *testing.T) {
	prog, err := normalizeSource("test", []byte("1x2f0h0x 5a2x1v 1r 2f\n"), nil)
	require.NoError(t, err)

	vm := New(
		WithDomain(number.UnboundedDomain),
		WithProgram(prog),
		WithInput(strings.NewReader("ab")),
	)
	err = vm.Run(context.Background())
	require.ErrorIs(t, err, errHalt)

	want := snapshot{
		Error:       "halt for debugging",
		Domain:      "unbounded",
		Functions:   make([]string, numFunctions),
		Variables:   make([]string, numVariables),
		Accumulator: "97",
		Current:     "2:0",
		Callstack:   []string{"Toplevel:21"},
	}
	for i := range want.Functions {
		want.Functions[i] = undefinedFunction
	}
	want.Functions[2] = "0h"
	for i := range want.Variables {
		want.Variables[i] = uninitialized
	}
	want.Variables[1] = "5"

	snap := vm.snapshot(err)
	assert.Equal(t, want, snap)

	for _, name := range []string{"crash.cbor", "crash.yaml", "crash.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, snap.writeFile(path))
			assert.Equal(t, want, readSnapshot(t, path))
		})
	}

	err = snap.writeFile(filepath.Join(t.TempDir(), "crash.json"))
	assert.Error(t, err, "expected unsupported format error")
}

func TestSnapshot_canonicalCBOR(t *testing.T) {
	snap := snapshot{
		Domain:      "bounded",
		Functions:   []string{"1a1o"},
		Variables:   []string{"3"},
		Accumulator: "4",
		Current:     "Toplevel:8",
		Callstack:   []string{"Toplevel:2"},
	}
	first, err := snap.marshal(".cbor")
	require.NoError(t, err)
	second, err := snap.marshal(".CBOR")
	require.NoError(t, err)
	assert.Equal(t, first, second, "expected repeated encodings to match")

	want, err := snapshotEncMode.Marshal(snap)
	require.NoError(t, err)
	assert.Equal(t, want, first)

	var back snapshot
	require.NoError(t, cbor.Unmarshal(first, &back))
	assert.Equal(t, snap, back)
}

func TestSnapshot_buffered(t *testing.T) {
	vm := New(WithInput(strings.NewReader("xyz")))
	vm.init()
	_, err := vm.in.ReadNth(3)
	require.NoError(t, err)
	assert.Equal(t, "x y", vm.snapshot(nil).Buffered)

	var out strings.Builder
	vmDumper{vm: vm, out: &out}.dump()
	assert.True(t, strings.HasSuffix(out.String(), "Callstack:\nBuffered input: x y\n"),
		"expected dump to end with buffered input, got:\n%v", out.String())
}

func TestSnapshot_faultKind(t *testing.T) {
	prog, err := normalizeSource("test", []byte("9a9a9a9a9a9a9a9a9a9a9a9a9a9a9a"), nil)
	require.NoError(t, err)
	vm := New(WithProgram(prog))
	err = vm.Run(context.Background())
	require.Equal(t, fault.Range, fault.KindOf(err))
	snap := vm.snapshot(err)
	assert.Equal(t, "bounded", snap.Domain)
	assert.Equal(t, "126", snap.Accumulator)
	assert.Equal(t, "Toplevel:28", snap.Current)
	assert.True(t, strings.HasPrefix(snap.Error, "range error: "), "expected a range error, got %q", snap.Error)
}
