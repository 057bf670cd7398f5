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

package position

import (
	"github.com/corvidchess/core/internal/assert"
	. "github.com/corvidchess/core/internal/types"
)

// rookCastleSquares maps a king's castling target square to the rook's
// (from, to) squares for that side, keyed by the king's destination.
var rookCastleSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// MakeMove applies move to the position in place. The move is assumed to
// be at least pseudo-legal (produced by the move generator); MakeMove does
// not itself verify legality - callers check InCheck after the fact, or
// rely on the generator's own king-safety filtering (spec.md §4.4).
func (p *Position) MakeMove(move Move) {
	if assert.DEBUG {
		assert.Assert(len(p.history) < MaxPly, "position: undo history exceeded MaxPly (%d)", MaxPly)
	}
	undo := undoInfo{
		move:            move,
		captured:        PieceNone,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfmoveClock:   p.halfmoveClock,
		key:             p.key,
	}

	from, to := move.From(), move.To()
	moving := p.board[from]

	prevEp := p.enPassantSquare
	p.key ^= enPassantKey(prevEp)
	p.enPassantSquare = SqNone

	switch move.Type() {
	case EnPassant:
		capturedSq := to
		if p.sideToMove == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		undo.captured = p.removePiece(capturedSq)
		p.movePiece(from, to)

	case Castling:
		rookSquares := rookCastleSquares[to]
		p.movePiece(from, to)
		p.movePiece(rookSquares[0], rookSquares[1])

	case Promotion:
		if p.board[to] != PieceNone {
			undo.captured = p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(p.sideToMove, move.PromotionType()), to)

	default: // Normal
		if p.board[to] != PieceNone {
			undo.captured = p.removePiece(to)
		}
		p.movePiece(from, to)
	}

	if moving.TypeOf() == Pawn && SquareDistance(from, to) == 2 {
		// A double push always lands two ranks from its origin, so the
		// skipped square is exactly the midpoint.
		var skipped Square
		if p.sideToMove == White {
			skipped = from.To(North)
		} else {
			skipped = from.To(South)
		}
		p.enPassantSquare = skipped
	}
	p.key ^= enPassantKey(p.enPassantSquare)

	p.key ^= zCastling[p.castlingRights]
	p.castlingRights = p.castlingRights.UpdateCastlingRights(from, to)
	p.key ^= zCastling[p.castlingRights]

	if moving.TypeOf() == Pawn || undo.captured != PieceNone {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zSideToMove

	p.history = append(p.history, undo)
}

// UnmakeMove reverts the most recent MakeMove call. Panics if there is no
// move to unmake - a programming error, not a runtime condition.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("position: UnmakeMove called with an empty history")
	}
	undo := p.history[n-1]
	p.history = p.history[:n-1]

	move := undo.move
	from, to := move.From(), move.To()

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}

	switch move.Type() {
	case EnPassant:
		p.movePiece(to, from)
		capturedSq := to
		if p.sideToMove == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		p.putPiece(undo.captured, capturedSq)

	case Castling:
		rookSquares := rookCastleSquares[to]
		p.movePiece(to, from)
		p.movePiece(rookSquares[1], rookSquares[0])

	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(p.sideToMove, Pawn), from)
		if undo.captured != PieceNone {
			p.putPiece(undo.captured, to)
		}

	default: // Normal
		p.movePiece(to, from)
		if undo.captured != PieceNone {
			p.putPiece(undo.captured, to)
		}
	}

	p.castlingRights = undo.castlingRights
	p.enPassantSquare = undo.enPassantSquare
	p.halfmoveClock = undo.halfmoveClock
	p.key = undo.key
}

// MakeNullMove flips the side to move without changing the board, used by
// search variants that probe a static threat without playing a real move.
// Not used by the core negamax search itself (spec.md §4.6 has no
// null-move pruning) but kept available for callers building on this
// package, e.g. king-safety analysis.
func (p *Position) MakeNullMove() (prevEp Square) {
	prevEp = p.enPassantSquare
	p.key ^= enPassantKey(prevEp)
	p.enPassantSquare = SqNone
	p.key ^= enPassantKey(SqNone)
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zSideToMove
	return prevEp
}

// UnmakeNullMove reverts MakeNullMove given the en passant square it
// returned.
func (p *Position) UnmakeNullMove(prevEp Square) {
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zSideToMove
	p.key ^= enPassantKey(p.enPassantSquare)
	p.enPassantSquare = prevEp
	p.key ^= enPassantKey(prevEp)
}
