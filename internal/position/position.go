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

// Package position implements the engine's board representation: the
// Position struct, FEN parsing, Zobrist hashing and move make/unmake.
// See spec.md §3 "Position" and §4.2-§4.4.
package position

import (
	"strings"

	"github.com/corvidchess/core/internal/attacks"
	myLogging "github.com/corvidchess/core/internal/logging"
	. "github.com/corvidchess/core/internal/types"
)

var log = myLogging.GetLog("position")

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoInfo captures everything make/unmake needs to restore a position to
// the state it had before a move was played, beyond what can be derived
// from the move itself (spec.md §4.4 step list).
type undoInfo struct {
	move            Move
	captured        Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	key             Key
}

// Position is the engine's board representation: bitboards for fast move
// generation, a mailbox for O(1) piece-at-square lookups, and the
// incidental state (side to move, castling rights, en passant target,
// clocks) needed to make this a complete, reversible game state.
type Position struct {
	piecesBb   [PieceLength]Bitboard
	occupiedBb [OccupancyKinds]Bitboard
	board      [SqLength]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	key Key

	kingSquare [ColorLength]Square

	history []undoInfo
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		// The start FEN is a compile-time constant; a parse failure here
		// means the constant itself is broken.
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

func newEmpty() *Position {
	initZobrist()
	attacks.Init()
	p := &Position{}
	for sq := Square(0); sq < SqLength; sq++ {
		p.board[sq] = PieceNone
	}
	p.enPassantSquare = SqNone
	p.kingSquare[White] = SqNone
	p.kingSquare[Black] = SqNone
	p.history = make([]undoInfo, 0, MaxPly)
	return p
}

// Clone returns a deep copy of p, independent of future make/unmake calls
// on either copy.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = make([]undoInfo, len(p.history), MaxPly)
	copy(cp.history, p.history)
	return &cp
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	p.piecesBb[pc] = p.piecesBb[pc].Set(sq)
	c := pc.ColorOf()
	p.occupiedBb[c] = p.occupiedBb[c].Set(sq)
	p.occupiedBb[Both] = p.occupiedBb[Both].Set(sq)
	if pc.TypeOf() == King {
		p.kingSquare[c] = sq
	}
	p.key ^= zPieceSquare[pc][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc == PieceNone {
		return PieceNone
	}
	p.board[sq] = PieceNone
	p.piecesBb[pc] = p.piecesBb[pc].Clear(sq)
	c := pc.ColorOf()
	p.occupiedBb[c] = p.occupiedBb[c].Clear(sq)
	p.occupiedBb[Both] = p.occupiedBb[Both].Clear(sq)
	p.key ^= zPieceSquare[pc][sq]
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// PieceAt returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of all pieces pc currently on the board.
func (p *Position) PiecesBb(pc Piece) Bitboard {
	return p.piecesBb[pc]
}

// PieceTypeBb returns the combined bitboard of pieces of type pt and
// color c.
func (p *Position) PieceTypeBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[MakePiece(c, pt)]
}

// OccupiedBb returns the occupancy bitboard for White, Black or Both.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en passant target square, or
// SqNone if none is available.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move (for the fifty-move rule).
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current fullmove counter.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Key returns the position's incrementally maintained Zobrist hash key.
func (p *Position) Key() Key {
	return p.key
}

// VerifyKey reports whether the incrementally maintained key matches a
// from-scratch recomputation (spec.md §8 "hash_key equals
// generate_hash_key(position)").
func (p *Position) VerifyKey() bool {
	recomputed := computeKey(p)
	if p.key != recomputed {
		log.Debugf("key mismatch: incremental=%x recomputed=%x fen=%s", p.key, recomputed, p.ToFEN())
		return false
	}
	return true
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by, under the current board occupancy.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.occupiedBb[Both]

	if attacks.PawnAttacks(by.Flip(), sq)&p.PieceTypeBb(by, Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.PieceTypeBb(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.PieceTypeBb(by, King) != 0 {
		return true
	}
	bishopsQueens := p.PieceTypeBb(by, Bishop) | p.PieceTypeBb(by, Queen)
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.PieceTypeBb(by, Rook) | p.PieceTypeBb(by, Queen)
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare[c], c.Flip())
}

// String renders the position as an 8x8 ASCII board plus a status line,
// primarily for debugging and test failure messages.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		sb.WriteString(Rank(r).String())
		sb.WriteString(" ")
		for f := File(0); f < FileLength; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	if p.enPassantSquare == SqNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.enPassantSquare.String())
	}
	return sb.String()
}
