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

package evaluator

import (
	"github.com/corvidchess/core/internal/attacks"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

// threatsScore covers pawn attacks on minors/majors, minor-on-major
// attacks, rook-on-queen attacks, and hanging (undefended, attacked)
// non-pawn pieces (spec.md §4.5 "Threats").
func threatsScore(p *position.Position) Score {
	var s Score
	s.Add(sideThreats(p, White))
	s.Sub(sideThreats(p, Black))
	return s
}

func sideThreats(p *position.Position, us Color) Score {
	them := us.Flip()
	var s Score

	ourPawnAttacks := attackedSquares(p, us, Pawn)
	minors := p.PieceTypeBb(them, Knight) | p.PieceTypeBb(them, Bishop)
	majors := p.PieceTypeBb(them, Rook) | p.PieceTypeBb(them, Queen)

	if hit := ourPawnAttacks & minors; hit != 0 {
		s.Add(scaled(pawnAttacksMinorBonus, hit.PopCount()))
	}
	if hit := ourPawnAttacks & majors; hit != 0 {
		s.Add(scaled(pawnAttacksMajorBonus, hit.PopCount()))
	}

	ourMinorAttacks := attackedSquares(p, us, Knight) | attackedSquares(p, us, Bishop)
	if hit := ourMinorAttacks & majors; hit != 0 {
		s.Add(scaled(minorAttacksMajor, hit.PopCount()))
	}

	ourRookAttacks := attackedSquares(p, us, Rook)
	if hit := ourRookAttacks & p.PieceTypeBb(them, Queen); hit != 0 {
		s.Add(scaled(rookAttacksQueen, hit.PopCount()))
	}

	ourAllAttacks := ourPawnAttacks | ourMinorAttacks | ourRookAttacks | attackedSquares(p, us, Queen) | attackedSquares(p, us, King)
	theirDefended := attackedSquares(p, them, Pawn) | attackedSquares(p, them, Knight) | attackedSquares(p, them, Bishop) |
		attackedSquares(p, them, Rook) | attackedSquares(p, them, Queen) | attackedSquares(p, them, King)
	theirNonPawns := p.OccupiedBb(them) &^ p.PieceTypeBb(them, Pawn) &^ p.PieceTypeBb(them, King)
	hanging := theirNonPawns & ourAllAttacks &^ theirDefended
	if hanging != 0 {
		s.Sub(scaled(hangingPieceMalus, hanging.PopCount()))
	}

	return s
}

func attackedSquares(p *position.Position, us Color, pt PieceType) Bitboard {
	occ := p.OccupiedBb(Both)
	var result Bitboard
	for bb := p.PieceTypeBb(us, pt); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		if pt == Pawn {
			result |= attacks.PawnAttacks(us, sq)
		} else {
			result |= attacks.Attacks(pt, sq, occ)
		}
	}
	return result
}

func scaled(base Score, count int) Score {
	return MakeScore(int(base.Mid)*count, int(base.End)*count)
}
