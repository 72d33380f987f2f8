// Package ans implements an Asymmetric Numeral Systems entropy coder: a
// stack-discipline (LIFO) coder where a single Coder value serves both
// directions — encoding pushes symbols onto the state/buffer stack,
// decoding pops them back off in reverse. This is the opposite
// discipline from the rc package's Range Coder, whose Encoder and
// Decoder are necessarily distinct types.
//
// Usage:
//
//	c := ans.NewCoder()
//	c.Push(symbol, model)
//	buf := c.GetCompressed()
//
//	d := ans.NewCoderFromBuffer(buf)
//	symbol, err := d.Pop(model)
package ans
