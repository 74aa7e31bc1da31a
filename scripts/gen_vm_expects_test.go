package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestGenerate(t *testing.T) {
	src := strings.Join([]string{
		"package main",
		"",
		"func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {",
		"\treturn vmt",
		"}",
		"",
		"func (vmt vmTestCase) expectVariable(i int, value string) vmTestCase {",
		"\treturn vmt",
		"}",
		"",
		"func (vmt vmTestCase) withTestOutput() vmTestCase {",
		"\treturn vmt",
		"}",
		"",
		"func (other otherCase) expectAcc(value string) otherCase {",
		"\treturn other",
		"}",
	}, "\n")

	g := newGenerator("vmTestCase", "VM", "vm_test.go", []string{"vm_test.go", "vm_expects_test.go"})
	var out strings.Builder
	require.NoError(t, g.generate(context.Background(), strings.NewReader(src), &out))

	assert.Equal(t, strings.Join([]string{
		"package main",
		"",
		"// @generated from vm_test.go",
		"",
		"//go:generate go run scripts/gen_vm_expects.go -type vmTestCase -infix VM -- vm_test.go vm_expects_test.go",
		"",
		"func withVMOptions(opts ...VMOption) func(vmTestCase) vmTestCase {",
		"\treturn func(vmt vmTestCase) vmTestCase {",
		"\t\treturn vmt.withOptions(opts...)",
		"\t}",
		"}",
		"",
		"func expectVMVariable(i int, value string) func(vmTestCase) vmTestCase {",
		"\treturn func(vmt vmTestCase) vmTestCase {",
		"\t\treturn vmt.expectVariable(i, value)",
		"\t}",
		"}",
		"",
	}, "\n")+"\n", out.String())
}

func TestGenerate_customFlags(t *testing.T) {
	src := "func (c otherCase) expectAcc(value string) otherCase {\n"

	g := newGenerator("otherCase", "Other", "other_test.go", []string{"other_test.go", "other_expects_test.go"})
	var out strings.Builder
	require.NoError(t, g.generate(context.Background(), strings.NewReader(src), &out))
	assert.Contains(t, out.String(),
		"//go:generate go run scripts/gen_vm_expects.go -type otherCase -infix Other -- other_test.go other_expects_test.go\n")
	assert.Contains(t, out.String(), "func expectOtherAcc(value string) func(otherCase) otherCase {\n")

	g = newGenerator("vmTestCase", "VM", "<stdin>", nil)
	out.Reset()
	require.NoError(t, g.generate(context.Background(), strings.NewReader(src), &out))
	assert.Equal(t, "package main\n\n// @generated from <stdin>\n\n", out.String())
}
