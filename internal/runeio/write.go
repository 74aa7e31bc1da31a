package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteRune writes a rune to the given writer: runes below 0x80 are written
// as a single byte, all others in their utf8 form. Invalid runes, like
// unpaired surrogates, are written as utf8.RuneError.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if 0 <= r && r < utf8.RuneSelf {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	var buf [utf8.UTFMax]byte
	return w.Write(buf[:utf8.EncodeRune(buf[:], r)])
}

// RepeatRune writes r count times, stopping at the first error.
func RepeatRune(w io.Writer, r rune, count int) (n int, err error) {
	for i := 0; i < count; i++ {
		m, err := WriteRune(w, r)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
