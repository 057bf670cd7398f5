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

// PieceType is a piece kind without color (Pawn, Knight, ...).
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece is one of the 12 colored piece kinds, indexed white-then-black in
// the order P,N,B,R,Q,K,p,n,b,r,q,k, matching the spec's piece bitboard
// order. PieceNone marks an empty mailbox entry.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone Piece = -1
	PieceLength      = 12
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return PieceNone
	}
	return Piece(int(c)*6 + int(pt))
}

// TypeOf returns the piece type (Pawn...King) regardless of color.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int(p) % 6)
}

// ColorOf returns the owning color of p.
func (p Piece) ColorOf() Color {
	if p == PieceNone {
		return ColorNone
	}
	return Color(int(p) / 6)
}

// IsValid reports whether p is one of the 12 real pieces.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p <= BlackKing
}

var pieceChars = [PieceLength]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceChars[p])
}

// PieceFromChar returns the Piece matching a FEN placement character, or
// PieceNone if ch is not a recognized piece letter.
func PieceFromChar(ch byte) Piece {
	for i, c := range pieceChars {
		if c == ch {
			return Piece(i)
		}
	}
	return PieceNone
}
