package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gonaz/internal/fault"
)

func TestNormalizeSource(t *testing.T) {
	for _, tc := range []struct {
		name  string
		src   string
		out   string
		err   string
		warns []string
	}{
		{
			name: "plain",
			src:  "5a1o",
			out:  "5a1o",
		},
		{
			name: "comments blanked",
			src:  "5a # five\n1o#\n",
			out:  "5a       \n1o \n",
		},
		{
			name: "comment hides tuples",
			src:  "#9x\n",
			out:  "   \n",
		},
		{
			name: "extended letters",
			src:  "3x0v1l3x0v1e3x0v1g",
			out:  "3x0v1l3x0v1e3x0v1g",
		},
		{
			name:  "stray bytes",
			src:   "5a\t!1o",
			out:   "5a\t!1o",
			warns: []string{"test:1:3: unexpected byte <HT>", "test:1:4: unexpected byte !"},
		},
		{
			name: "bad tuple",
			src:  "5a\n 1q",
			err:  "syntax error: test:2:2: unexpected tuple \"1q\"",
		},
		{
			name: "truncated tuple",
			src:  "5a1",
			err:  "syntax error: test:1:3: unexpected tuple \"1\"",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var warns []string
			out, err := normalizeSource("test", []byte(tc.src), func(mess string, args ...interface{}) {
				warns = append(warns, fmt.Sprintf(mess, args...))
			})
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				assert.Equal(t, fault.Syntax, fault.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.out, string(out))
			assert.Equal(t, len(tc.src), len(out), "expected offsets to be preserved")
			assert.Equal(t, tc.warns, warns)
		})
	}
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.naz")
	require.NoError(t, os.WriteFile(path, []byte("9a # nine\n"), 0o644))

	prog, err := loadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "9a       \n", string(prog))

	_, err = loadSource(filepath.Join(dir, "nope.naz"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
