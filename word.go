// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entropy

// Word is the unit of the compressed buffer that both coder packages
// operate on. State is twice its width and holds a coder's working
// state between renormalizations.
type (
	Word  = uint32
	State = uint64
)

// WordBits and StateBits are the bit widths of Word and State.
const (
	WordBits  = 32
	StateBits = 64
)

// PutWordLE writes w into dst using little-endian byte order. dst must
// have length at least 4.
func PutWordLE(dst []byte, w Word) {
	_ = dst[3]
	dst[0] = byte(w)
	dst[1] = byte(w >> 8)
	dst[2] = byte(w >> 16)
	dst[3] = byte(w >> 24)
}

// WordLE reads a Word from src using little-endian byte order. src must
// have length at least 4.
func WordLE(src []byte) Word {
	_ = src[3]
	return Word(src[0]) | Word(src[1])<<8 | Word(src[2])<<16 | Word(src[3])<<24
}

// PutWordsLE encodes buf into dst using little-endian byte order,
// returning the number of bytes written. dst must have length at least
// 4*len(buf).
func PutWordsLE(dst []byte, buf []Word) int {
	for i, w := range buf {
		PutWordLE(dst[4*i:], w)
	}
	return 4 * len(buf)
}

// WordsLE decodes src, a little-endian byte sequence whose length is a
// multiple of 4, into a Word slice.
func WordsLE(src []byte) []Word {
	buf := make([]Word, len(src)/4)
	for i := range buf {
		buf[i] = WordLE(src[4*i:])
	}
	return buf
}
