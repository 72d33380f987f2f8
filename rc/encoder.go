package rc

import (
	"math/bits"

	"github.com/ulikunitz/entropy"
	"github.com/ulikunitz/entropy/model"
)

const wordAllOnes = ^entropy.Word(0) // 2^W - 1

// Encoder implements the Range Coder's encoding half: a shrinking
// interval [low, low+range) over an S-bit state, shifting one W-bit
// word out of low each time range falls below 2^W. The carry
// mechanism (cachedWord/numPendingWords) generalizes the teacher's
// byte-level shiftLow to word granularity and an explicit per-symbol
// probability model instead of an implicit bit probability.
type Encoder struct {
	low, nrange entropy.State

	cachedWord      entropy.Word
	cacheSet        bool
	numPendingWords int64

	out        []entropy.Word
	anyEncoded bool
}

// NewEncoder returns a fresh Encoder with an empty compressed buffer.
func NewEncoder() *Encoder {
	return &Encoder{nrange: ^entropy.State(0)}
}

// Encode encodes symbol under model m. If symbol is outside m's
// alphabet, Encode returns an error and leaves the encoder's state
// unchanged.
func (e *Encoder) Encode(symbol int32, m model.Model) error {
	c, p, err := m.LeftCumulativeAndProbability(symbol)
	if err != nil {
		return newError("encode: " + err.Error())
	}

	rangeUnit := e.nrange >> m.Precision()
	if rangeUnit == 0 {
		panic("rc: range_unit underflowed to zero")
	}

	newLow, carry := bits.Add64(e.low, uint64(c)*rangeUnit, 0)
	e.low = newLow
	if carry != 0 {
		e.propagateCarry()
	}

	e.nrange = rangeUnit * entropy.State(p)
	e.renormalize()
	e.anyEncoded = true
	return nil
}

// propagateCarry resolves an overflow out of the S-bit low value into
// the already-buffered, not yet emitted cached word and pending
// all-ones words: the cached word is incremented (it is always < 2^W-1
// by construction, see shiftOutWord) and every pending word, which by
// construction holds value 2^W-1, becomes 0.
func (e *Encoder) propagateCarry() {
	if !e.cacheSet {
		return
	}
	e.out = append(e.out, e.cachedWord+1)
	for ; e.numPendingWords > 0; e.numPendingWords-- {
		e.out = append(e.out, 0)
	}
	e.cacheSet = false
}

// renormalize shifts words out of low/nrange until nrange is back in
// [2^W, 2^S).
func (e *Encoder) renormalize() {
	for e.nrange < (1 << entropy.WordBits) {
		e.shiftOutWord(entropy.Word(e.low >> entropy.WordBits))
		e.low <<= entropy.WordBits
		e.nrange <<= entropy.WordBits
	}
}

// shiftOutWord buffers a newly renormalized word w, deferring the
// decision of whether it is final: a word equal to 2^W-1 might still
// be turned into 0 by a later carry, so it is only counted, not
// written, until a non-all-ones word (or a carry, handled by
// propagateCarry) resolves the ambiguity.
func (e *Encoder) shiftOutWord(w entropy.Word) {
	if !e.cacheSet {
		e.cachedWord = w
		e.cacheSet = true
		return
	}
	if w == wordAllOnes {
		e.numPendingWords++
		return
	}
	e.out = append(e.out, e.cachedWord)
	for ; e.numPendingWords > 0; e.numPendingWords-- {
		e.out = append(e.out, wordAllOnes)
	}
	e.cachedWord = w
}

// GetCompressed seals the encoder and returns the compressed buffer:
// the emitted words, the deferred cache and pending words, and finally
// the two words of the remaining low value, which together with range
// let a decoder resolve any point inside [low, low+range). An encoder
// that never encoded a symbol seals to an empty buffer.
func (e *Encoder) GetCompressed() []entropy.Word {
	if !e.anyEncoded {
		return nil
	}
	out := append([]entropy.Word(nil), e.out...)
	if e.cacheSet {
		out = append(out, e.cachedWord)
		for i := int64(0); i < e.numPendingWords; i++ {
			out = append(out, wordAllOnes)
		}
	}
	out = append(out, entropy.Word(e.low>>entropy.WordBits), entropy.Word(e.low))
	return out
}
