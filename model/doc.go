// Package model implements the quantized, fixed-point entropy models
// shared by the rc and ans coder packages.
//
// A Model turns a bounded integer alphabet into an exactly invertible
// fixed-point probability mass function: every symbol's probability is a
// strictly positive integer with denominator 2^Precision, and the
// probabilities of the whole alphabet sum to exactly 2^Precision. Models
// are immutable once constructed and may be shared, read-only, across
// any number of coders and goroutines.
//
// Usage:
//
//	m, err := model.NewQuantizedGaussian(2.5, 4.1, -100, 100, 24)
//	c, p, err := m.LeftCumulativeAndProbability(6)
//	symbol, c, p := m.QuantileFunction(q)
package model
