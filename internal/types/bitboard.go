/*
 * corvidchess - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 corvidchess contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit value, one bit per square, indexed by the engine's
// rank-8-first square numbering (bit 0 = a8, bit 63 = h1).
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// sqBb is a pre-computed square -> single-bit-bitboard lookup.
var sqBb [SqLength]Bitboard

// FileBb / RankBb are pre-computed file/rank masks.
var FileBb [FileLength]Bitboard
var RankBb [RankLength]Bitboard

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for f := File(0); f < FileLength; f++ {
		var b Bitboard
		for r := Rank(0); r < RankLength; r++ {
			b |= SquareOf(f, r).Bb()
		}
		FileBb[f] = b
	}
	for r := Rank(0); r < RankLength; r++ {
		var b Bitboard
		for f := File(0); f < FileLength; f++ {
			b |= SquareOf(f, r).Bb()
		}
		RankBb[r] = b
	}
}

// Bb returns the file mask bitboard.
func (f File) Bb() Bitboard {
	return FileBb[f]
}

// Bb returns the rank mask bitboard.
func (r Rank) Bb() Bitboard {
	return RankBb[r]
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Has reports whether square sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Set returns b with sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sqBb[sq]
}

// Clear returns b with sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if b
// is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square together with b with
// that bit cleared. Typical use: for bb != 0 { sq, bb = bb.PopLsb() ... }.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// PBE (parallel bit extract) compacts the bits of b at the set positions
// of mask into a contiguous low-order word. Equivalent to enumerating
// mask's set bits from low to high and reading those bits of b.
func PBE(b, mask Bitboard) uint {
	var result uint
	var i uint
	for m := mask; m != 0; {
		sq, rest := m.PopLsb()
		if b.Has(sq) {
			result |= 1 << i
		}
		i++
		m = rest
	}
	return result
}

// NextSubset advances to the next subset of mask using the carry-rippler
// trick. Starting from BbZero and repeatedly calling NextSubset enumerates
// every subset of mask exactly once before returning to BbZero.
func (subset Bitboard) NextSubset(mask Bitboard) Bitboard {
	return (subset - mask) & mask
}

// StringBoard renders the bitboard as an 8x8 grid (rank 8 at the top) for
// debugging.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		for f := File(0); f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
