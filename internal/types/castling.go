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

// CastlingRights is a 4-bit mask of remaining castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone = CastlingRights(0)
	CastlingAll  = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	// CastlingLength is the number of distinct castling-rights values (the
	// 4-bit mask ranges over 0..15), used to size the Zobrist key table.
	CastlingLength = 16
)

// Has reports whether the given right is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r != 0
}

// castlingRightsMask, indexed by square, clears the bits that are lost
// when a piece moves from or to that square: the king's home squares
// clear both of that color's rights, the rook corners clear the one
// right tied to that corner. Applied to both the move's source and
// target square so that a rook moving away from, or being captured on,
// its home square both invalidate the right.
var castlingRightsMask [SqLength]CastlingRights

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		castlingRightsMask[sq] = CastlingAll
	}
	castlingRightsMask[SqE1] &^= WhiteKingside | WhiteQueenside
	castlingRightsMask[SqH1] &^= WhiteKingside
	castlingRightsMask[SqA1] &^= WhiteQueenside
	castlingRightsMask[SqE8] &^= BlackKingside | BlackQueenside
	castlingRightsMask[SqH8] &^= BlackKingside
	castlingRightsMask[SqA8] &^= BlackQueenside
}

// UpdateCastlingRights returns c with rights invalidated by a move
// between from and to (either endpoint may touch a king/rook home
// square - the target matters for rook captures on the home square).
func (c CastlingRights) UpdateCastlingRights(from, to Square) CastlingRights {
	return c & castlingRightsMask[from] & castlingRightsMask[to]
}

func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
