// Package lookahead implements a small queue of input bytes that have been
// read from their source but not yet consumed, from which any position may be
// taken out of order.
package lookahead

import (
	"github.com/jcorbin/gonaz/internal/fault"
)

// Capacity is the number of bytes a Buffer may hold.
const Capacity = 10

// Buffer is a fixed capacity circular byte queue. The zero value is an empty
// buffer ready to use.
type Buffer struct {
	slots [Capacity]byte
	head  int // slot of the oldest byte
	tail  int // slot after the newest byte
	size  int
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return b.size }

func (b *Buffer) slot(pos int) int { return (b.head + pos) % Capacity }

// Push appends c at the tail.
func (b *Buffer) Push(c byte) error {
	if b.size == Capacity {
		return fault.Errorf(fault.Protocol, "lookahead buffer overflow")
	}
	b.slots[b.tail] = c
	b.tail = (b.tail + 1) % Capacity
	b.size++
	return nil
}

// Pop removes and returns the byte at the head.
func (b *Buffer) Pop() (byte, error) {
	if b.size == 0 {
		return 0, fault.Errorf(fault.Protocol, "lookahead buffer underflow")
	}
	c := b.slots[b.head]
	b.head = (b.head + 1) % Capacity
	b.size--
	return c, nil
}

// ExtractAt removes and returns the byte pos places from the head, keeping
// the rest in order. Whichever side of pos holds fewer bytes is shifted over
// the gap.
func (b *Buffer) ExtractAt(pos int) (byte, error) {
	if pos < 0 || pos >= b.size {
		return 0, fault.Errorf(fault.Protocol, "lookahead position %v out of range [0, %v)", pos, b.size)
	}
	c := b.slots[b.slot(pos)]
	if before, after := pos, b.size-1-pos; before < after {
		for i := pos; i > 0; i-- {
			b.slots[b.slot(i)] = b.slots[b.slot(i-1)]
		}
		b.head = (b.head + 1) % Capacity
	} else {
		for i := pos; i < b.size-1; i++ {
			b.slots[b.slot(i)] = b.slots[b.slot(i+1)]
		}
		b.tail = (b.tail + Capacity - 1) % Capacity
	}
	b.size--
	return c, nil
}

// Bytes returns a copy of the buffered bytes, head first.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.size)
	for i := range out {
		out[i] = b.slots[b.slot(i)]
	}
	return out
}
