// Package rc implements the Range Coder: a queue-discipline (FIFO)
// entropy coder represented as a shrinking interval [low, low+range).
// An Encoder and a Decoder are distinct types, since the first word
// emitted by the Encoder is the first word consumed by the Decoder —
// unlike the ans package's single coder object.
//
// Usage:
//
//	enc := rc.NewEncoder()
//	enc.Encode(symbol, model)
//	buf := enc.GetCompressed()
//
//	dec := rc.NewDecoderFromBuffer(buf)
//	symbol, err := dec.Decode(model)
package rc
