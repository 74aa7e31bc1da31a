package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/gonaz/internal/number"
	"github.com/jcorbin/gonaz/internal/runeio"
)

// snapshot captures interpreter state for diagnostics after a fatal error.
type snapshot struct {
	Error       string   `cbor:"error,omitempty" yaml:"error,omitempty"`
	Domain      string   `cbor:"domain" yaml:"domain"`
	Functions   []string `cbor:"functions" yaml:"functions"`
	Variables   []string `cbor:"variables" yaml:"variables"`
	Accumulator string   `cbor:"accumulator" yaml:"accumulator"`
	Current     string   `cbor:"current" yaml:"current"`
	Callstack   []string `cbor:"callstack" yaml:"callstack"`
	Buffered    string   `cbor:"buffered,omitempty" yaml:"buffered,omitempty"`
}

// snapshotEncMode encodes CBOR snapshots deterministically, so equal states
// produce equal files.
var snapshotEncMode cbor.EncMode

func init() {
	var err error
	snapshotEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: cbor enc mode: %v", err))
	}
}

const (
	undefinedFunction = "<undefined>"
	uninitialized     = "<uninitialized>"
)

func (vm *VM) snapshot(err error) (snap snapshot) {
	if err != nil {
		snap.Error = err.Error()
	}
	snap.Domain = vm.domain.String()
	snap.Functions = make([]string, numFunctions)
	for i := range snap.Functions {
		if vm.functions.defined(i) {
			snap.Functions[i] = vm.functions.source(i)
		} else {
			snap.Functions[i] = undefinedFunction
		}
	}
	snap.Variables = make([]string, numVariables)
	for i, v := range vm.vars {
		snap.Variables[i] = numberString(v)
	}
	snap.Accumulator = numberString(vm.acc)
	snap.Current = vm.cur.String()
	snap.Callstack = vm.stack.strings()
	if vm.in != nil {
		snap.Buffered = runeio.Mnemonics(vm.in.Buffered())
	}
	return snap
}

func numberString(n number.Number) string {
	if n == nil || !n.Valid() {
		return uninitialized
	}
	return n.String()
}

// writeFile writes the snapshot to path, encoded as CBOR or YAML according
// to its extension.
func (snap snapshot) writeFile(path string) error {
	data, err := snap.marshal(filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (snap snapshot) marshal(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".cbor":
		return snapshotEncMode.Marshal(snap)
	case ".yaml", ".yml":
		return yaml.Marshal(snap)
	}
	return nil, fmt.Errorf("unsupported snapshot format %q, expected .cbor, .yaml, or .yml", ext)
}
