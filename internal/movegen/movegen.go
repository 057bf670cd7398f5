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

// Package movegen generates pseudo-legal and legal moves for a position,
// and provides Perft for move-generator validation (spec.md §4.3, §4.7).
package movegen

import (
	"github.com/corvidchess/core/internal/attacks"
	"github.com/corvidchess/core/internal/movelist"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

// promotionRank is the rank a pawn of color c lands on when it promotes.
func promotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// startRank is the rank a pawn of color c starts the game on, used to
// allow the two-square initial push.
func startRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func pawnPushDir(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move in p to ml: moves that obey normal piece movement rules but may
// leave the mover's own king in check.
func GeneratePseudoLegal(p *position.Position, ml *movelist.MoveList) {
	us := p.SideToMove()
	generatePawnMoves(p, us, ml)
	generateKnightMoves(p, us, ml)
	generateSliderMoves(p, us, Bishop, ml)
	generateSliderMoves(p, us, Rook, ml)
	generateSliderMoves(p, us, Queen, ml)
	generateKingMoves(p, us, ml)
	generateCastlingMoves(p, us, ml)
}

// GenerateLegal appends every legal move for the side to move in p to ml:
// every pseudo-legal move that does not leave the mover's own king in
// check after being played.
func GenerateLegal(p *position.Position, ml *movelist.MoveList) {
	pseudo := movelist.New()
	GeneratePseudoLegal(p, pseudo)
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.MakeMove(m)
		if !p.IsSquareAttacked(p.KingSquare(us), us.Flip()) {
			ml.PushBack(m)
		}
		p.UnmakeMove()
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full move list (used for fast
// checkmate/stalemate detection).
func HasLegalMove(p *position.Position) bool {
	pseudo := movelist.New()
	GeneratePseudoLegal(p, pseudo)
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.MakeMove(m)
		attacked := p.IsSquareAttacked(p.KingSquare(us), us.Flip())
		p.UnmakeMove()
		if !attacked {
			return true
		}
	}
	return false
}

func generatePawnMoves(p *position.Position, us Color, ml *movelist.MoveList) {
	them := us.Flip()
	push := pawnPushDir(us)
	promoRank := promotionRank(us)
	startR := startRank(us)
	pawns := p.PieceTypeBb(us, Pawn)
	occAll := p.OccupiedBb(Both)
	theirs := p.OccupiedBb(them)

	for bb := pawns; bb != 0; {
		from, rest := bb.PopLsb()
		bb = rest

		one := from.To(push)
		if one.IsValid() && !occAll.Has(one) {
			addPawnMove(ml, from, one, promoRank)
			if from.RankOf() == startR {
				two := one.To(push)
				if two.IsValid() && !occAll.Has(two) {
					ml.PushBack(NewMove(from, two))
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			to := from.To(capDir)
			if !to.IsValid() {
				continue
			}
			if theirs.Has(to) {
				addPawnMove(ml, from, to, promoRank)
			} else if to == p.EnPassantSquare() {
				ml.PushBack(NewEnPassantMove(from, to))
			}
		}
	}
}

func pawnCaptureDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func addPawnMove(ml *movelist.MoveList, from, to Square, promoRank Rank) {
	if to.RankOf() == promoRank {
		ml.PushBack(NewPromotionMove(from, to, Queen))
		ml.PushBack(NewPromotionMove(from, to, Rook))
		ml.PushBack(NewPromotionMove(from, to, Bishop))
		ml.PushBack(NewPromotionMove(from, to, Knight))
		return
	}
	ml.PushBack(NewMove(from, to))
}

func generateKnightMoves(p *position.Position, us Color, ml *movelist.MoveList) {
	own := p.OccupiedBb(us)
	for bb := p.PieceTypeBb(us, Knight); bb != 0; {
		from, rest := bb.PopLsb()
		bb = rest
		targets := attacks.KnightAttacks(from) &^ own
		for t := targets; t != 0; {
			to, r := t.PopLsb()
			t = r
			ml.PushBack(NewMove(from, to))
		}
	}
}

func generateSliderMoves(p *position.Position, us Color, pt PieceType, ml *movelist.MoveList) {
	own := p.OccupiedBb(us)
	occ := p.OccupiedBb(Both)
	for bb := p.PieceTypeBb(us, pt); bb != 0; {
		from, rest := bb.PopLsb()
		bb = rest
		targets := attacks.Attacks(pt, from, occ) &^ own
		for t := targets; t != 0; {
			to, r := t.PopLsb()
			t = r
			ml.PushBack(NewMove(from, to))
		}
	}
}

func generateKingMoves(p *position.Position, us Color, ml *movelist.MoveList) {
	own := p.OccupiedBb(us)
	from := p.KingSquare(us)
	targets := attacks.KingAttacks(from) &^ own
	for t := targets; t != 0; {
		to, r := t.PopLsb()
		t = r
		ml.PushBack(NewMove(from, to))
	}
}

// generateCastlingMoves appends pseudo-legal castling moves. Legality
// (king not currently in check, and not passing through or landing on an
// attacked square) is checked here rather than deferred to the generic
// post-move king-safety filter, since the rule also covers the squares
// the king passes through, not only its destination (spec.md §3
// "Castling legality").
func generateCastlingMoves(p *position.Position, us Color, ml *movelist.MoveList) {
	them := us.Flip()
	rights := p.CastlingRights()
	occ := p.OccupiedBb(Both)

	var kingside, queenside CastlingRights
	var kingFrom, kingsideTo, queensideTo Square
	var kingsidePath, queensidePath Bitboard
	var kingsideCheckSquares, queensideCheckSquares [3]Square

	if us == White {
		kingside, queenside = WhiteKingside, WhiteQueenside
		kingFrom = SqE1
		kingsideTo, queensideTo = SqG1, SqC1
		kingsidePath = SqF1.Bb() | SqG1.Bb()
		queensidePath = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
		kingsideCheckSquares = [3]Square{SqE1, SqF1, SqG1}
		queensideCheckSquares = [3]Square{SqE1, SqD1, SqC1}
	} else {
		kingside, queenside = BlackKingside, BlackQueenside
		kingFrom = SqE8
		kingsideTo, queensideTo = SqG8, SqC8
		kingsidePath = SqF8.Bb() | SqG8.Bb()
		queensidePath = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
		kingsideCheckSquares = [3]Square{SqE8, SqF8, SqG8}
		queensideCheckSquares = [3]Square{SqE8, SqD8, SqC8}
	}

	if rights.Has(kingside) && occ&kingsidePath == 0 && noneAttacked(p, kingsideCheckSquares, them) {
		ml.PushBack(NewCastlingMove(kingFrom, kingsideTo))
	}
	if rights.Has(queenside) && occ&queensidePath == 0 && noneAttacked(p, queensideCheckSquares, them) {
		ml.PushBack(NewCastlingMove(kingFrom, queensideTo))
	}
}

func noneAttacked(p *position.Position, squares [3]Square, by Color) bool {
	for _, sq := range squares {
		if p.IsSquareAttacked(sq, by) {
			return false
		}
	}
	return true
}
