package rc

import (
	"github.com/ulikunitz/entropy"
	"github.com/ulikunitz/entropy/model"
)

// Decoder implements the Range Coder's decoding half. It consumes the
// compressed buffer in the same order the Encoder emitted it (queue
// discipline), unlike the ans package's single stack-discipline coder.
type Decoder struct {
	low, nrange, point entropy.State

	input []entropy.Word
	pos   int
}

// NewDecoderFromBuffer creates a Decoder reading from buf, a buffer
// produced by Encoder.GetCompressed. A truncated buf is accepted; any
// words past the end of buf that the decoder needs are read as zero,
// per the Range Coder's sealing convention.
func NewDecoderFromBuffer(buf []entropy.Word) *Decoder {
	d := &Decoder{nrange: ^entropy.State(0), input: buf}
	d.point = entropy.State(d.nextWord())<<entropy.WordBits | entropy.State(d.nextWord())
	return d
}

// nextWord returns the next input word, or 0 if the buffer is
// exhausted.
func (d *Decoder) nextWord() entropy.Word {
	if d.pos >= len(d.input) {
		return 0
	}
	w := d.input[d.pos]
	d.pos++
	return w
}

// Decode decodes one symbol under model m.
func (d *Decoder) Decode(m model.Model) (int32, error) {
	rangeUnit := d.nrange >> m.Precision()
	if rangeUnit == 0 {
		panic("rc: range_unit underflowed to zero")
	}

	top := uint32(1)<<m.Precision() - 1
	q := uint32((d.point - d.low) / rangeUnit)
	if q > top {
		q = top
	}

	symbol, c, p := m.QuantileFunction(q)

	d.low += uint64(c) * rangeUnit
	d.nrange = rangeUnit * entropy.State(p)

	for d.nrange < (1 << entropy.WordBits) {
		d.low <<= entropy.WordBits
		d.nrange <<= entropy.WordBits
		d.point = d.point<<entropy.WordBits | entropy.State(d.nextWord())
	}

	return symbol, nil
}
