package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gonaz/internal/fault"
)

func TestFunctionTable(t *testing.T) {
	var ft functionTable

	for _, tc := range []struct {
		fn   int
		text string
		body string
	}{
		{0, "3a0x0f2a1o", "3a"},
		{1, "1o2o\n3o", "1o2o"},
		{2, "1a#comment", "1a"},
		{3, "0x", ""},
		{4, "9a9a", "9a9a"},
	} {
		text := []byte(tc.text)
		require.NoError(t, ft.define(tc.fn, text), "define %v", tc.fn)
		text[0] = '!'
		code, err := ft.lookup(tc.fn)
		require.NoError(t, err)
		assert.Equal(t, tc.body, string(code), "expected function %v body, unaffected by later changes to its source", tc.fn)
	}

	err := ft.define(0, []byte("1a"))
	assert.True(t, fault.KindOf(err) == fault.Redefinition, "expected redefinition error, got %v", err)
	code, _ := ft.lookup(0)
	assert.Equal(t, "3a", string(code), "expected first definition to stay")

	_, err = ft.lookup(9)
	assert.ErrorIs(t, err, fault.UndefinedReference)
	assert.False(t, ft.defined(9))
}
