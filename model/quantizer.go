package model

import "math"

// LeakyQuantizer is a reusable builder that turns continuous cumulative
// distribution functions into QuantizedDistributions sharing the same
// integer alphabet [lower, upper] and fixed-point precision. The same
// quantizer can quantize arbitrarily many CDFs, which is the idiom a
// per-symbol parameterized family (e.g. a Gaussian with a different
// mean/std for every position in a message) relies on to avoid
// reallocating the alphabet bookkeeping for every symbol.
type LeakyQuantizer struct {
	lower, upper int32
	precision    uint
}

// NewLeakyQuantizer constructs a quantizer over the inclusive integer
// range [lower, upper] at the given fixed-point precision. It fails if
// the range is empty, inverted, the precision exceeds the word width,
// or the alphabet is too large to receive at least one unit of
// probability mass per symbol.
func NewLeakyQuantizer(lower, upper int32, precision uint) (*LeakyQuantizer, error) {
	if lower > upper {
		return nil, newError("lower must not exceed upper")
	}
	if precision == 0 || precision > 32 {
		return nil, newError("precision out of range")
	}
	size := uint64(upper) - uint64(lower) + 1
	if size > uint64(1)<<precision {
		return nil, newError("alphabet too large for precision")
	}
	return &LeakyQuantizer{lower: lower, upper: upper, precision: precision}, nil
}

// Quantize builds a QuantizedDistribution that approximates cdf over the
// quantizer's alphabet. approxInverseCDF seeds the quantile search; it
// need not be exact, since QuantileFunction always corrects the
// candidate it returns against the distribution's own cumulative table
// before returning.
func (q *LeakyQuantizer) Quantize(cdf func(x float64) float64, approxInverseCDF func(p float64) float64) (*QuantizedDistribution, error) {
	n := int(q.upper-q.lower) + 1
	total := uint64(1) << q.precision

	cumulative := make([]uint32, n+1)
	cumulative[0] = 0
	cumulative[n] = uint32(total)
	for i := 1; i < n; i++ {
		s := q.lower + int32(i)
		x := cdf(float64(s) - 0.5)
		c := math.Round(x * float64(total))
		if c < 0 {
			c = 0
		} else if c > float64(total) {
			c = float64(total)
		}
		cumulative[i] = uint32(c)
	}

	if err := leakify(cumulative); err != nil {
		return nil, err
	}

	return &QuantizedDistribution{
		lower:            q.lower,
		upper:            q.upper,
		precision:        q.precision,
		cumulative:       cumulative,
		approxInverseCDF: approxInverseCDF,
	}, nil
}

// leakify repairs cumulative in place so that every adjacent pair
// produces a strictly positive probability, while preserving
// cumulative[0] == 0, cumulative[len-1] == total, and monotonicity. It
// implements spec.md 4.1's zero-probability remediation: steal one unit
// of probability from the neighbor with the largest slack (probability
// minus one), breaking ties toward the lowest symbol index.
func leakify(cumulative []uint32) error {
	n := len(cumulative) - 1
	if n <= 0 {
		return newError("empty alphabet")
	}
	for {
		zero := -1
		for i := 0; i < n; i++ {
			if cumulative[i+1] == cumulative[i] {
				zero = i
				break
			}
		}
		if zero < 0 {
			return nil
		}

		bestSlack := int64(-1)
		bestIdx := -1
		for j := 0; j < n; j++ {
			if j == zero {
				continue
			}
			p := int64(cumulative[j+1]) - int64(cumulative[j])
			slack := p - 1
			if slack > bestSlack {
				bestSlack = slack
				bestIdx = j
			}
		}
		if bestIdx < 0 || bestSlack < 1 {
			return newError("unable to assign nonzero probability to every symbol")
		}

		if bestIdx < zero {
			for k := bestIdx + 1; k <= zero; k++ {
				cumulative[k]--
			}
		} else {
			for k := zero + 1; k <= bestIdx; k++ {
				cumulative[k]++
			}
		}
	}
}

// QuantizedDistribution is a fixed-point probability mass function
// produced by LeakyQuantizer.Quantize. It satisfies contracts (C1)-(C3)
// of spec.md 4.1 by construction.
type QuantizedDistribution struct {
	lower, upper     int32
	precision        uint
	cumulative       []uint32 // length upper-lower+2
	approxInverseCDF func(p float64) float64
}

// Precision implements Model.
func (d *QuantizedDistribution) Precision() uint { return d.precision }

// LeftCumulativeAndProbability implements Model in O(1) via direct
// indexing, since the alphabet is contiguous.
func (d *QuantizedDistribution) LeftCumulativeAndProbability(symbol int32) (c, p uint32, err error) {
	if symbol < d.lower || symbol > d.upper {
		return 0, 0, newError("symbol outside model alphabet")
	}
	idx := int(symbol - d.lower)
	return d.cumulative[idx], d.cumulative[idx+1] - d.cumulative[idx], nil
}

// QuantileFunction implements Model. It seeds a candidate symbol from
// approxInverseCDF and then walks the stored cumulative table one step
// at a time until the inclusion test c <= quantile < c+p holds (a poor
// seed only costs more steps),
// per spec.md 4.1's prescribed implementation technique and 9's
// bijection-check requirement for untrusted inverse CDFs.
func (d *QuantizedDistribution) QuantileFunction(quantile uint32) (symbol int32, c, p uint32) {
	total := float64(uint64(1) << d.precision)
	guess := d.approxInverseCDF((float64(quantile) + 0.5) / total)
	s := int32(math.Round(guess))
	if s < d.lower {
		s = d.lower
	} else if s > d.upper {
		s = d.upper
	}
	idx := int(s - d.lower)

	for idx > 0 && d.cumulative[idx] > quantile {
		idx--
	}
	for idx < len(d.cumulative)-2 && d.cumulative[idx+1] <= quantile {
		idx++
	}

	c = d.cumulative[idx]
	p = d.cumulative[idx+1] - c
	return d.lower + int32(idx), c, p
}
