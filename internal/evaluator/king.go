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

// kingSafetyScore implements the two-part king safety term: a pawn
// shield score for the king's file and its two neighbors, and a clamped
// attacker-weight penalty for enemy pieces bearing on the king's
// adjacent squares (spec.md §4.5 "King safety").
func kingSafetyScore(p *position.Position) Score {
	var s Score
	s.Add(sideKingSafety(p, White))
	s.Sub(sideKingSafety(p, Black))
	return s
}

func sideKingSafety(p *position.Position, us Color) Score {
	them := us.Flip()
	kingSq := p.KingSquare(us)
	kingFile := kingSq.FileOf()
	ownPawns := p.PieceTypeBb(us, Pawn)

	var shield Score
	for _, f := range []File{kingFile - 1, kingFile, kingFile + 1} {
		if f > FileH {
			continue
		}
		rank := nearestPawnRankDistance(ownPawns&f.Bb(), us)
		shield.Add(pawnShieldBonus[rank])
	}

	ringSquares := attacks.KingAttacks(kingSq)
	danger := 0
	for pt, weight := range attackerWeight {
		occ := p.OccupiedBb(Both)
		for bb := p.PieceTypeBb(them, pt); bb != 0; {
			sq, rest := bb.PopLsb()
			bb = rest
			if attacks.Attacks(pt, sq, occ)&ringSquares != 0 {
				danger += weight
			}
		}
	}
	if danger > 99 {
		danger = 99
	}

	var s Score
	s.Add(shield)
	s.Sub(kingSafetyCurve[danger])
	return s
}

// nearestPawnRankDistance returns the rank distance from us's back rank
// to the nearest pawn in fileOwnPawns, or 0 if the file has no pawn
// (spec.md §4.5 "per file find the rank of the nearest friendly pawn").
func nearestPawnRankDistance(fileOwnPawns Bitboard, us Color) int {
	if fileOwnPawns == 0 {
		return 0
	}
	if us == White {
		// The most-advanced-toward-White's-back-rank pawn is the one
		// with the highest internal rank index (closest to Rank1).
		sq := Square(0)
		best := -1
		for bb := fileOwnPawns; bb != 0; {
			s, rest := bb.PopLsb()
			bb = rest
			if int(s.RankOf()) > best {
				best = int(s.RankOf())
				sq = s
			}
		}
		return int(Rank1) - int(sq.RankOf())
	}
	sq := Square(0)
	best := RankLength
	for bb := fileOwnPawns; bb != 0; {
		s, rest := bb.PopLsb()
		bb = rest
		if int(s.RankOf()) < best {
			best = int(s.RankOf())
			sq = s
		}
	}
	return int(sq.RankOf()) - int(Rank8)
}
