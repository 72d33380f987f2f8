package model

import "sort"

// Categorical is a fixed-point probability mass function over a
// contiguous integer alphabet built directly from an explicit
// (possibly unnormalized) set of probabilities, rather than from a
// continuous CDF.
type Categorical struct {
	minSymbol  int32
	precision  uint
	cumulative []uint32 // length len(probabilities)+1
}

// NewCategorical builds a Categorical distribution over the contiguous
// alphabet [minSymbol, minSymbol+len(probabilities)-1] at the given
// fixed-point precision. probabilities must be nonnegative with at
// least one strictly positive entry; they do not need to sum to one,
// since the result is normalized explicitly.
//
// Each probability is scaled to 1<<precision and floored; the residual
// left over from flooring is distributed one unit at a time to the
// symbols with the largest fractional remainder (ties broken by lower
// index), and any symbol that still has zero probability afterward
// steals one unit from its largest-slack neighbor, exactly as
// QuantizedDistribution does for continuous models.
func NewCategorical(probabilities []float64, minSymbol int32, precision uint) (*Categorical, error) {
	if len(probabilities) == 0 {
		return nil, newError("empty alphabet")
	}
	if precision == 0 || precision > 32 {
		return nil, newError("precision out of range")
	}
	if uint64(len(probabilities)) > uint64(1)<<precision {
		return nil, newError("alphabet too large for precision")
	}

	var sum float64
	for _, p := range probabilities {
		if p < 0 {
			return nil, newError("probabilities must be nonnegative")
		}
		sum += p
	}
	if sum <= 0 {
		return nil, newError("at least one probability must be positive")
	}

	total := uint64(1) << precision
	n := len(probabilities)
	freq := make([]uint32, n)
	frac := make([]float64, n)
	var assigned uint64
	for i, p := range probabilities {
		scaled := p / sum * float64(total)
		f := uint32(scaled)
		freq[i] = f
		frac[i] = scaled - float64(f)
		assigned += uint64(f)
	}

	residual := total - assigned
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return frac[order[a]] > frac[order[b]]
	})
	for i := uint64(0); i < residual; i++ {
		freq[order[i]]++
	}

	cumulative := make([]uint32, n+1)
	for i, f := range freq {
		cumulative[i+1] = cumulative[i] + f
	}

	if err := leakify(cumulative); err != nil {
		return nil, err
	}

	return &Categorical{minSymbol: minSymbol, precision: precision, cumulative: cumulative}, nil
}

// Precision implements Model.
func (d *Categorical) Precision() uint { return d.precision }

// LeftCumulativeAndProbability implements Model in O(1).
func (d *Categorical) LeftCumulativeAndProbability(symbol int32) (c, p uint32, err error) {
	n := len(d.cumulative) - 1
	idx := int(symbol - d.minSymbol)
	if idx < 0 || idx >= n {
		return 0, 0, newError("symbol outside model alphabet")
	}
	return d.cumulative[idx], d.cumulative[idx+1] - d.cumulative[idx], nil
}

// QuantileFunction implements Model via binary search over the stored
// cumulative table.
func (d *Categorical) QuantileFunction(quantile uint32) (symbol int32, c, p uint32) {
	// find largest idx such that cumulative[idx] <= quantile
	idx := sort.Search(len(d.cumulative), func(i int) bool {
		return d.cumulative[i] > quantile
	}) - 1
	if idx < 0 {
		idx = 0
	}
	c = d.cumulative[idx]
	p = d.cumulative[idx+1] - c
	return d.minSymbol + int32(idx), c, p
}
