/* Command naz interprets programs written in naz, a tiny accumulator language.

A naz program is a flat sequence of two byte tuples: a decimal digit followed
by a letter naming the instruction. Spaces and line breaks may appear between
tuples, and "#" starts a comment running to the end of the line.

All arithmetic acts on a single accumulator, which starts at 0, using the
tuple's digit as the other operand:

	Na  add N
	Ns  subtract N
	Nm  multiply by N
	Nd  divide by N, rounding towards negative infinity
	Np  remainder after dividing by N
	Nv  load variable N into the accumulator
	Nn  negate variable N
	No  print the accumulator N times
	1r  read one byte of input into the accumulator; -1 at end of input
	Nf  call function N
	Nh  halt with a diagnostic dump

There are ten variables, 0 through 9, all initially undefined; using an
undefined value is an error. Extended instructions start with an "x" tuple:

	0x      no operation; also ends a function definition
	1xNf..  define function N as the code up to the next 0x or line end
	2xNv    store the accumulator into variable N
	3xNvFl  call function F if the accumulator is less than variable N
	3xNvFe  ... equal to variable N
	3xNvFg  ... greater than variable N

Functions have no return instruction: they return by running out of code. A
conditional call made from within a function replaces the rest of that
function, rather than returning to it.

Printing renders 0 through 9 as digits, 10 as a line break, and other values
as the character with that code.

Numbers are bounded to the range [-127, 127] by default, where overflow is an
error. The -u flag switches to unbounded integers instead, which can print any
16-bit code point, but not negative values; surrogate code points, which have
no UTF-8 encoding, print as U+FFFD.

Any error halts the program, printing a dump of all functions, variables, the
accumulator, and the call stack to standard error.
*/
package main
