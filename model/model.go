package model

// Model is the capability both coder packages depend on: an exactly
// invertible, fixed-point probability mass function over a bounded
// integer alphabet.
//
// Implementations must guarantee, for every symbol s in the declared
// alphabet:
//
//	probability(s) >= 1
//	sum of probability(s) over the whole alphabet == 1<<Precision()
//
// and, for every q in [0, 1<<Precision()):
//
//	QuantileFunction(q) = (s, c, p)  =>  c <= q < c+p
//	LeftCumulativeAndProbability(s) == (c, p)
type Model interface {
	// LeftCumulativeAndProbability returns the left-sided cumulative
	// and probability of symbol. It returns an error if symbol is
	// outside the model's alphabet.
	LeftCumulativeAndProbability(symbol int32) (c, p uint32, err error)

	// QuantileFunction returns the unique (symbol, c, p) such that
	// c <= quantile < c+p. quantile must be in [0, 1<<Precision()).
	QuantileFunction(quantile uint32) (symbol int32, c, p uint32)

	// Precision returns P, the number of bits of the fixed-point
	// probability representation used by this model.
	Precision() uint
}
