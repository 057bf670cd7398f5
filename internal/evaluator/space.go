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

// centerFiles is the c-through-f file band used by the space term.
var centerFiles = FileC.Bb() | FileD.Bb() | FileE.Bb() | FileF.Bb()

// spaceRectangle returns the rank band of the center-file rectangle for
// color c: ranks 5-8 for White, ranks 1-4 for Black (spec.md §4.5
// "Space").
func spaceRectangle(c Color) Bitboard {
	var ranks Bitboard
	if c == White {
		ranks = RankBb[Rank5] | RankBb[Rank6] | RankBb[Rank7] | RankBb[Rank8]
	} else {
		ranks = RankBb[Rank1] | RankBb[Rank2] | RankBb[Rank3] | RankBb[Rank4]
	}
	return ranks & centerFiles
}

// spaceActive reports whether the space term applies: both sides still
// have their queen home and their d-pawn home (spec.md §4.5 "Space").
func spaceActive(p *position.Position) bool {
	return p.PieceAt(SqD2) == WhitePawn && p.PieceAt(SqD7) == BlackPawn &&
		p.PieceTypeBb(White, Queen)&SqD1.Bb() != 0 && p.PieceTypeBb(Black, Queen)&SqD8.Bb() != 0
}

func spaceScore(p *position.Position) Score {
	if !spaceActive(p) {
		return Score{}
	}
	var s Score
	s.Add(sideSpace(p, White))
	s.Sub(sideSpace(p, Black))
	return s
}

func sideSpace(p *position.Position, us Color) Score {
	them := us.Flip()
	occ := p.OccupiedBb(Both)
	rectangle := spaceRectangle(us)

	var enemyPawnAttacks Bitboard
	for bb := p.PieceTypeBb(them, Pawn); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		enemyPawnAttacks |= attacks.PawnAttacks(them, sq)
	}

	count := 0
	for _, pt := range []PieceType{Knight, Bishop, Rook} {
		for bb := p.PieceTypeBb(us, pt); bb != 0; {
			sq, rest := bb.PopLsb()
			bb = rest
			attacked := attacks.Attacks(pt, sq, occ) & rectangle &^ enemyPawnAttacks
			count += attacked.PopCount()
		}
	}
	return MakeScore(int(spaceBonus.Mid)*count, int(spaceBonus.End)*count)
}
