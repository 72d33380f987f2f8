package ans

import (
	"github.com/ulikunitz/entropy"
	"github.com/ulikunitz/entropy/model"
)

// Coder is an ANS stack: a single S-bit state plus a W-bit word buffer,
// mutated by Push in encoding order and unwound by Pop in exactly the
// reverse order, ryg_rans-style (see _examples/other_examples for the
// reference this package is grounded on).
//
// The zero value is not usable; create one with NewCoder or
// NewCoderFromBuffer.
type Coder struct {
	state  entropy.State
	buffer []entropy.Word
}

// NewCoder returns a fresh Coder with empty state, ready for Push.
func NewCoder() *Coder {
	return &Coder{}
}

// NewCoderFromBuffer creates a Coder for decoding buf, a buffer produced
// by GetCompressed. It pops words off the top of buf to fill state until
// state reaches the renormalization lower bound 2^W, or until buf is
// exhausted — mirroring, word for word, how GetCompressed appended the
// final state's halves to the stack.
func NewCoderFromBuffer(buf []entropy.Word) *Coder {
	c := &Coder{buffer: append([]entropy.Word(nil), buf...)}
	for c.state < (1<<entropy.WordBits) && len(c.buffer) > 0 {
		w := c.buffer[len(c.buffer)-1]
		c.buffer = c.buffer[:len(c.buffer)-1]
		c.state = c.state<<entropy.WordBits | entropy.State(w)
	}
	return c
}

// Push encodes symbol under model m, pushing it on top of the stack. If
// symbol is outside m's alphabet, Push returns an error and leaves the
// coder's state unchanged.
func (c *Coder) Push(symbol int32, m model.Model) error {
	cLow, p, err := m.LeftCumulativeAndProbability(symbol)
	if err != nil {
		return newError("push: " + err.Error())
	}
	precision := m.Precision()

	// p == 2^P only for a single-symbol alphabet (the entire probability
	// mass); the renormalization threshold p*2^(S-P) would then be
	// exactly 2^S, unrepresentable in an S-bit state, so skip
	// renormalization entirely — consistent with such a symbol encoding
	// zero bits of information.
	full := entropy.State(1) << precision
	pState := entropy.State(p)
	if pState < full {
		threshold := pState << (entropy.StateBits - precision)
		for c.state >= threshold {
			c.buffer = append(c.buffer, entropy.Word(c.state))
			c.state >>= entropy.WordBits
		}
	}

	c.state = ((c.state / pState) << precision) | (entropy.State(cLow) + c.state%pState)
	return nil
}

// Pop decodes and removes the symbol on top of the stack under model m.
func (c *Coder) Pop(m model.Model) (int32, error) {
	precision := m.Precision()
	q := uint32(c.state & (entropy.State(1)<<precision - 1))

	symbol, cLow, p := m.QuantileFunction(q)

	c.state = entropy.State(p)*(c.state>>precision) + entropy.State(q) - entropy.State(cLow)

	for c.state < (1<<entropy.WordBits) && len(c.buffer) > 0 {
		w := c.buffer[len(c.buffer)-1]
		c.buffer = c.buffer[:len(c.buffer)-1]
		c.state = c.state<<entropy.WordBits | entropy.State(w)
	}

	return symbol, nil
}

// GetCompressed seals the coder and returns the compressed buffer: the
// pushed words followed by the final state's low W-bit half and then,
// unless it is zero, its high W-bit half, so that NewCoderFromBuffer's
// pop-from-the-top initialization reconstructs state exactly. (A state
// below 2^W only occurs while no word has been pushed yet, so dropping
// the zero high half never lets the decoder pop into pushed words.) When the coder is empty
// (no symbols ever pushed), the returned buffer is empty.
func (c *Coder) GetCompressed() []entropy.Word {
	if c.state == 0 {
		return append([]entropy.Word(nil), c.buffer...)
	}
	out := append([]entropy.Word(nil), c.buffer...)
	out = append(out, entropy.Word(c.state))
	if hi := entropy.Word(c.state >> entropy.WordBits); hi != 0 {
		out = append(out, hi)
	}
	return out
}
