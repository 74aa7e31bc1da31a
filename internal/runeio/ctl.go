package runeio

import (
	"strconv"
	"strings"
)

// C0Ctls names the classic ASCII control characters.
var C0Ctls = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<NL>", "<VT>", "<NP>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// Mnemonic returns a printable name for a raw input byte: its mnemonic for
// control characters and space, the character itself when printable ASCII,
// and a hex escape otherwise.
func Mnemonic(c byte) string {
	switch {
	case c < 0x20:
		return C0Ctls[c]
	case c == 0x20:
		return "<SP>"
	case c == 0x7f:
		return "<DEL>"
	case c < 0x7f:
		return string(rune(c))
	}
	return `\x` + strconv.FormatUint(uint64(c), 16)
}

// Mnemonics joins the Mnemonic of each byte with spaces.
func Mnemonics(p []byte) string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Mnemonic(c))
	}
	return sb.String()
}
