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

// MoveType distinguishes the four move encodings.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a 16-bit encoded chess move:
//
//	bits  0-5  source square
//	bits  6-11 target square
//	bits 12-13 move type flag
//	bits 14-15 promotion piece type (N=0,B=1,R=2,Q=3), meaningful only
//	           when the move type flag is Promotion
type Move uint16

// MoveNone is the sentinel "no move" value returned when there is none
// (e.g. search_root on a mated/stalemated position).
const MoveNone Move = 0

const (
	moveFromShift = 0
	moveToShift   = 6
	moveTypeShift = 12
	movePromShift = 14

	moveFromMask = 0x3F
	moveToMask   = 0x3F
	moveTypeMask = 0x3
	movePromMask = 0x3
)

// promoPieceTypes maps the 2-bit promotion encoding to a PieceType.
var promoPieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// promoCode maps a promotable PieceType back to its 2-bit encoding.
func promoCode(pt PieceType) uint16 {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default: // Knight and anything else
		return 0
	}
}

// NewMove encodes a normal (non-promotion, non-castling, non-en-passant)
// move from source to target.
func NewMove(from, to Square) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift | uint16(Normal)<<moveTypeShift)
}

// NewPromotionMove encodes a promotion move to the given piece type.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift |
		uint16(Promotion)<<moveTypeShift | promoCode(promo)<<movePromShift)
}

// NewEnPassantMove encodes an en-passant capture.
func NewEnPassantMove(from, to Square) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift | uint16(EnPassant)<<moveTypeShift)
}

// NewCastlingMove encodes a castling move (from/to are the king's squares).
func NewCastlingMove(from, to Square) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift | uint16(Castling)<<moveTypeShift)
}

// From returns the source square.
func (m Move) From() Square {
	return Square((uint16(m) >> moveFromShift) & moveFromMask)
}

// To returns the target square.
func (m Move) To() Square {
	return Square((uint16(m) >> moveToShift) & moveToMask)
}

// Type returns the move's type flag.
func (m Move) Type() MoveType {
	return MoveType((uint16(m) >> moveTypeShift) & moveTypeMask)
}

// PromotionType returns the promotion piece type. Only meaningful when
// Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return promoPieceTypes[(uint16(m)>>movePromShift)&movePromMask]
}

// IsValid reports whether m is anything other than the MoveNone sentinel.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// String renders the move in long algebraic notation (e.g. "e2e4",
// "e7e8q"). This is not SAN - it is the minimal UCI-style notation a
// caller needs to echo a move; SAN/PGN parsing is out of this core's
// scope.
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += m.PromotionType().String()
	}
	return s
}
