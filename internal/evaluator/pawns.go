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
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

// pawnStructureScore sums doubled and isolated pawn penalties for both
// sides (spec.md §4.5 "Pawn structure").
func pawnStructureScore(p *position.Position) Score {
	var s Score
	s.Add(sidePawnStructure(p, White))
	s.Sub(sidePawnStructure(p, Black))
	return s
}

func sidePawnStructure(p *position.Position, us Color) Score {
	var s Score
	pawns := p.PieceTypeBb(us, Pawn)

	for f := File(0); f < FileLength; f++ {
		onFile := (pawns & f.Bb()).PopCount()
		if onFile > 1 {
			extra := onFile - 1
			s.Add(MakeScore(int(doubledPawnPenalty.Mid)*extra, int(doubledPawnPenalty.End)*extra))
		}
		if onFile == 0 {
			continue
		}
		hasNeighbor := false
		if f > FileA && (pawns&(f-1).Bb()) != 0 {
			hasNeighbor = true
		}
		if f < FileH && (pawns&(f+1).Bb()) != 0 {
			hasNeighbor = true
		}
		if !hasNeighbor {
			s.Add(MakeScore(int(isolatedPawnPenalty.Mid)*onFile, int(isolatedPawnPenalty.End)*onFile))
		}
	}
	return s
}

// pawnAdvanceFromOwnStart returns how many ranks a pawn of color us on sq
// has advanced from its own starting rank (0 = still on the start rank).
func pawnAdvanceFromOwnStart(us Color, sq Square) int {
	if us == White {
		return int(Rank2) - int(sq.RankOf())
	}
	return int(sq.RankOf()) - int(Rank7)
}

// isPassedPawn reports whether the pawn of color us on sq has no enemy
// pawn on its own file or either adjacent file on a rank ahead of it
// (spec.md §4.5 "Passed pawns").
func isPassedPawn(p *position.Position, us Color, sq Square) bool {
	them := us.Flip()
	enemyPawns := p.PieceTypeBb(them, Pawn)
	f := sq.FileOf()

	var fileMask Bitboard
	for _, cf := range []File{f - 1, f, f + 1} {
		if cf > FileH {
			continue // covers both "f+1 overflow" and the f==0, cf=f-1 underflow wrap
		}
		fileMask |= cf.Bb()
	}

	var aheadMask Bitboard
	if us == White {
		for r := Rank(0); r < sq.RankOf(); r++ {
			aheadMask |= RankBb[r]
		}
	} else {
		for r := sq.RankOf() + 1; r < RankLength; r++ {
			aheadMask |= RankBb[r]
		}
	}

	return enemyPawns&fileMask&aheadMask == 0
}

// passedPawnsScore implements the full passed-pawn term: base bonus
// scaled by king distance to the promotion square, amplified by a
// friendly rook on the file, halved by an enemy rook on the file's rear
// span (spec.md §4.5 "Passed pawns").
func passedPawnsScore(p *position.Position) Score {
	var s Score
	s.Add(sidePassedPawns(p, White))
	s.Sub(sidePassedPawns(p, Black))
	return s
}

func sidePassedPawns(p *position.Position, us Color) Score {
	them := us.Flip()
	var s Score
	for bb := p.PieceTypeBb(us, Pawn); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		if !isPassedPawn(p, us, sq) {
			continue
		}

		advance := pawnAdvanceFromOwnStart(us, sq)
		if advance < 0 {
			advance = 0
		}
		if advance > 7 {
			advance = 7
		}
		bonus := passedPawnBonus[advance]

		promoSq := promotionSquare(us, sq.FileOf())
		kingDist := SquareDistance(p.KingSquare(them), promoSq)
		scale := float64(10+kingDist) / 10.0
		bonus = MakeScore(int(float64(bonus.Mid)*scale), int(float64(bonus.End)*scale))

		f := sq.FileOf()
		if p.PieceTypeBb(us, Rook)&f.Bb() != 0 {
			bonus = MakeScore(int(bonus.Mid)*3/2, int(bonus.End)*3/2)
		}
		if enemyRookOnRearSpan(p, us, sq) {
			bonus = MakeScore(int(bonus.Mid)/2, int(bonus.End)/2)
		}

		s.Add(bonus)
	}
	return s
}

func promotionSquare(us Color, f File) Square {
	if us == White {
		return SquareOf(f, Rank8)
	}
	return SquareOf(f, Rank1)
}

// enemyRookOnRearSpan reports whether an enemy rook sits behind the pawn
// on its file, i.e. on the part of the file the pawn has already passed.
func enemyRookOnRearSpan(p *position.Position, us Color, sq Square) bool {
	them := us.Flip()
	f := sq.FileOf()
	enemyRooks := p.PieceTypeBb(them, Rook)
	if enemyRooks&f.Bb() == 0 {
		return false
	}
	var rearMask Bitboard
	if us == White {
		for r := sq.RankOf() + 1; r < RankLength; r++ {
			rearMask |= RankBb[r]
		}
	} else {
		for r := Rank(0); r < sq.RankOf(); r++ {
			rearMask |= RankBb[r]
		}
	}
	return enemyRooks&f.Bb()&rearMask != 0
}
