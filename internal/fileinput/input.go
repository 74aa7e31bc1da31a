package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a position within an Input stream.
type Location struct {
	Name   string
	Line   int
	Column int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return "<no input>"
	}
	return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Column)
}

// Input implements sequential byte reading through a Queue of one or more
// input streams, moving on to the next stream at the end of each. The
// location of the next byte is tracked to facilitate user feedback.
type Input struct {
	br    io.ByteReader
	cl    io.Closer
	Queue []io.Reader
	Loc   Location
}

// ReadByte reads one byte from the current input stream, returning io.EOF
// only after the last queued stream has been exhausted.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return 0, io.EOF
		}
		c, err := in.br.ReadByte()
		if err == nil {
			if c == '\n' {
				in.Loc.Line++
				in.Loc.Column = 1
			} else {
				in.Loc.Column++
			}
			return c, nil
		}
		if err != io.EOF {
			return 0, err
		}
		in.closeIn()
	}
}

// Close closes the current stream, if it can be, and drops any queued ones.
func (in *Input) Close() error {
	err := in.closeIn()
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if in.cl != nil {
		err = in.cl.Close()
	}
	in.br, in.cl = nil, nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	if br, ok := r.(io.ByteReader); ok {
		in.br = br
	} else {
		in.br = bufio.NewReader(r)
	}
	in.cl, _ = r.(io.Closer)
	in.Loc = Location{Name: nameOf(r), Line: 1, Column: 1}
	return true
}

// NamedReader attaches a name to a reader for location reporting.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
