package main

import (
	"fmt"
	"os"

	"github.com/jcorbin/gonaz/internal/fault"
	"github.com/jcorbin/gonaz/internal/fileinput"
	"github.com/jcorbin/gonaz/internal/runeio"
)

// tupleLetters are the bytes that may follow a digit in program source.
var tupleLetters = [256]bool{
	'a': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true,
	'l': true, 'm': true, 'n': true, 'o': true, 'p': true, 'r': true,
	's': true, 'v': true, 'x': true,
}

// normalizeSource prepares program source for execution in place: comments
// are blanked out to spaces, so that offsets stay the same, and every tuple
// is checked to end with a known letter. Any other stray byte is reported to
// warnf and left in place.
func normalizeSource(name string, src []byte, warnf func(mess string, args ...interface{})) ([]byte, error) {
	loc := fileinput.Location{Name: name, Line: 1, Column: 1}
	advance := func(n int) {
		loc.Column += n
	}
	comment := false
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			comment = false
			loc.Line++
			loc.Column = 1
			i++
		case comment || c == '#':
			comment = true
			src[i] = ' '
			advance(1)
			i++
		case c >= '0' && c <= '9':
			if letter := byteAt(src, i+1); !tupleLetters[letter] {
				return nil, fault.Errorf(fault.Syntax, "%v: unexpected tuple %q", loc, src[i:min(i+2, len(src))])
			}
			advance(2)
			i += 2
		case c == ' ':
			advance(1)
			i++
		default:
			if warnf != nil {
				warnf("%v: unexpected byte %v", loc, runeio.Mnemonic(c))
			}
			advance(1)
			i++
		}
	}
	return src, nil
}

// loadSource reads and normalizes the named program file.
func loadSource(name string, warnf func(mess string, args ...interface{})) ([]byte, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}
	return normalizeSource(name, src, warnf)
}
