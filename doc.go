// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entropy collects the word-level helpers shared by the coder
// packages below it.
//
// The coders themselves live in the model, rc and ans packages:
//
//	model  quantized, fixed-point probability models
//	rc     range coder (queue discipline, encoder and decoder)
//	ans    ANS coder (stack discipline, single coder object)
//
// A typical Range Coder round trip:
//
//	m, err := model.NewQuantizedGaussian(2.5, 4.1, -100, 100, 24)
//	enc := rc.NewEncoder()
//	enc.Encode(6, m)
//	buf := enc.GetCompressed()
//
//	dec := rc.NewDecoderFromBuffer(buf)
//	symbol, err := dec.Decode(m)
package entropy
