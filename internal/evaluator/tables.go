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
	. "github.com/corvidchess/core/internal/types"
)

// materialValue holds the (opening, endgame) value of one piece type in
// centipawns (spec.md §4.5 "Material").
var materialValue = [PtLength]Score{
	Pawn:   MakeScore(128, 213),
	Knight: MakeScore(781, 854),
	Bishop: MakeScore(825, 915),
	Rook:   MakeScore(1276, 1380),
	Queen:  MakeScore(2538, 2682),
	King:   MakeScore(0, 0),
}

// psqt holds, per piece type, a 64-entry (opening, endgame) table indexed
// by square with White's orientation (a8=0 ... h1=63, this engine's
// native square order). Black pieces mirror the square with
// Square.MirrorVertical before indexing, then the term is subtracted
// (spec.md §4.5 "PSQT"). Values follow the well-known "PeSTO" piece-square
// tables, whose material values are exactly the ones transcribed above.
var psqt = [PtLength][SqLength]Score{
	Pawn: {
		MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0),
		MakeScore(98, 178), MakeScore(134, 173), MakeScore(61, 158), MakeScore(95, 134), MakeScore(68, 147), MakeScore(126, 132), MakeScore(34, 165), MakeScore(-11, 187),
		MakeScore(-6, 94), MakeScore(7, 100), MakeScore(26, 85), MakeScore(31, 67), MakeScore(65, 56), MakeScore(56, 53), MakeScore(25, 82), MakeScore(-20, 84),
		MakeScore(-14, 32), MakeScore(13, 24), MakeScore(6, 13), MakeScore(21, 5), MakeScore(23, -2), MakeScore(12, 4), MakeScore(17, 17), MakeScore(-23, 17),
		MakeScore(-27, 13), MakeScore(-2, 9), MakeScore(-5, -3), MakeScore(12, -7), MakeScore(17, -7), MakeScore(6, -8), MakeScore(10, 3), MakeScore(-25, -1),
		MakeScore(-26, 4), MakeScore(-4, 7), MakeScore(-4, -6), MakeScore(-10, 1), MakeScore(3, 0), MakeScore(3, -5), MakeScore(33, -1), MakeScore(-12, -8),
		MakeScore(-35, 13), MakeScore(-1, 8), MakeScore(-20, 8), MakeScore(-23, 10), MakeScore(-15, 13), MakeScore(24, 0), MakeScore(38, 2), MakeScore(-22, -7),
		MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0), MakeScore(0, 0),
	},
	Knight: {
		MakeScore(-167, -58), MakeScore(-89, -38), MakeScore(-34, -13), MakeScore(-49, -28), MakeScore(61, -31), MakeScore(-97, -27), MakeScore(-15, -63), MakeScore(-107, -99),
		MakeScore(-73, -25), MakeScore(-41, -8), MakeScore(72, -25), MakeScore(36, -2), MakeScore(23, -9), MakeScore(62, -25), MakeScore(7, -24), MakeScore(-17, -52),
		MakeScore(-47, -24), MakeScore(60, -20), MakeScore(37, 10), MakeScore(65, 9), MakeScore(84, -1), MakeScore(129, -9), MakeScore(73, -19), MakeScore(44, -41),
		MakeScore(-9, -17), MakeScore(17, 3), MakeScore(19, 22), MakeScore(53, 22), MakeScore(37, 22), MakeScore(69, 11), MakeScore(18, 8), MakeScore(22, -18),
		MakeScore(-13, -18), MakeScore(4, -6), MakeScore(16, 16), MakeScore(13, 25), MakeScore(28, 16), MakeScore(19, 17), MakeScore(21, 4), MakeScore(-8, -18),
		MakeScore(-23, -23), MakeScore(-9, -3), MakeScore(12, -1), MakeScore(10, 15), MakeScore(19, 10), MakeScore(17, -3), MakeScore(25, -20), MakeScore(-16, -22),
		MakeScore(-29, -42), MakeScore(-53, -20), MakeScore(-12, -10), MakeScore(-3, -5), MakeScore(-1, -2), MakeScore(18, -20), MakeScore(-14, -23), MakeScore(-19, -44),
		MakeScore(-105, -29), MakeScore(-21, -51), MakeScore(-58, -23), MakeScore(-33, -15), MakeScore(-17, -22), MakeScore(-28, -18), MakeScore(-19, -50), MakeScore(-23, -64),
	},
	Bishop: {
		MakeScore(-29, -14), MakeScore(4, -21), MakeScore(-82, -11), MakeScore(-37, -8), MakeScore(-25, -7), MakeScore(-42, -9), MakeScore(7, -17), MakeScore(-8, -24),
		MakeScore(-26, -8), MakeScore(16, -4), MakeScore(-18, 7), MakeScore(-13, -12), MakeScore(30, -3), MakeScore(59, -13), MakeScore(18, -4), MakeScore(-47, -14),
		MakeScore(-16, 2), MakeScore(37, -8), MakeScore(43, 0), MakeScore(40, -1), MakeScore(35, -2), MakeScore(50, 6), MakeScore(37, 0), MakeScore(-2, 4),
		MakeScore(-4, -3), MakeScore(5, 9), MakeScore(19, 12), MakeScore(50, 9), MakeScore(37, 14), MakeScore(37, 10), MakeScore(7, 3), MakeScore(-2, 2),
		MakeScore(-6, -6), MakeScore(13, 3), MakeScore(13, 13), MakeScore(26, 19), MakeScore(34, 7), MakeScore(12, 10), MakeScore(10, -3), MakeScore(4, -9),
		MakeScore(0, -12), MakeScore(15, -3), MakeScore(15, 8), MakeScore(15, 10), MakeScore(14, 13), MakeScore(27, 3), MakeScore(18, -7), MakeScore(10, -15),
		MakeScore(4, -14), MakeScore(15, -18), MakeScore(16, -7), MakeScore(0, -1), MakeScore(7, 4), MakeScore(21, -9), MakeScore(33, -15), MakeScore(1, -27),
		MakeScore(-33, -23), MakeScore(-3, -9), MakeScore(-14, -23), MakeScore(-21, -5), MakeScore(-13, -9), MakeScore(-12, -16), MakeScore(-39, -5), MakeScore(-21, -17),
	},
	Rook: {
		MakeScore(32, 13), MakeScore(42, 10), MakeScore(32, 18), MakeScore(51, 15), MakeScore(63, 12), MakeScore(9, 12), MakeScore(31, 8), MakeScore(43, 5),
		MakeScore(27, 11), MakeScore(32, 13), MakeScore(58, 13), MakeScore(62, 11), MakeScore(80, -3), MakeScore(67, 3), MakeScore(26, 8), MakeScore(44, 3),
		MakeScore(-5, 7), MakeScore(19, 7), MakeScore(26, 7), MakeScore(36, 5), MakeScore(17, 4), MakeScore(45, -3), MakeScore(61, -5), MakeScore(16, -3),
		MakeScore(-24, 4), MakeScore(-11, 3), MakeScore(7, 13), MakeScore(26, 1), MakeScore(24, 2), MakeScore(35, 1), MakeScore(-8, -1), MakeScore(-20, 2),
		MakeScore(-36, 3), MakeScore(-26, 5), MakeScore(-12, 8), MakeScore(-1, 4), MakeScore(9, -5), MakeScore(-7, -6), MakeScore(6, -8), MakeScore(-23, -11),
		MakeScore(-45, -4), MakeScore(-25, 0), MakeScore(-16, -5), MakeScore(-17, -1), MakeScore(3, -7), MakeScore(0, -12), MakeScore(-5, -8), MakeScore(-33, -16),
		MakeScore(-44, -6), MakeScore(-16, -6), MakeScore(-20, 0), MakeScore(-9, 2), MakeScore(-1, -9), MakeScore(11, -9), MakeScore(-6, -11), MakeScore(-71, -3),
		MakeScore(-19, -9), MakeScore(-13, 2), MakeScore(1, 3), MakeScore(17, -1), MakeScore(16, -5), MakeScore(7, -13), MakeScore(-37, 4), MakeScore(-26, -20),
	},
	Queen: {
		MakeScore(-28, -9), MakeScore(0, 22), MakeScore(29, 22), MakeScore(12, 27), MakeScore(59, 27), MakeScore(44, 19), MakeScore(43, 10), MakeScore(45, 20),
		MakeScore(-24, -17), MakeScore(-39, 20), MakeScore(-5, 32), MakeScore(1, 41), MakeScore(-16, 58), MakeScore(57, 25), MakeScore(28, 30), MakeScore(54, 0),
		MakeScore(-13, -20), MakeScore(-17, 6), MakeScore(7, 9), MakeScore(8, 49), MakeScore(29, 47), MakeScore(56, 35), MakeScore(47, 19), MakeScore(57, 9),
		MakeScore(-27, 3), MakeScore(-27, 22), MakeScore(-16, 24), MakeScore(-16, 45), MakeScore(-1, 57), MakeScore(17, 40), MakeScore(-2, 57), MakeScore(1, 36),
		MakeScore(-9, -18), MakeScore(-26, 28), MakeScore(-9, 19), MakeScore(-10, 47), MakeScore(-2, 31), MakeScore(-4, 34), MakeScore(3, 39), MakeScore(-3, 23),
		MakeScore(-14, -16), MakeScore(2, -27), MakeScore(-11, 15), MakeScore(-2, 6), MakeScore(-5, 9), MakeScore(2, 17), MakeScore(14, 10), MakeScore(5, 5),
		MakeScore(-35, -22), MakeScore(-8, -23), MakeScore(11, -30), MakeScore(2, -16), MakeScore(8, -16), MakeScore(15, -23), MakeScore(-3, -36), MakeScore(1, -32),
		MakeScore(-1, -33), MakeScore(-18, -28), MakeScore(-9, -22), MakeScore(10, -43), MakeScore(-15, -5), MakeScore(-25, -32), MakeScore(-31, -20), MakeScore(-50, -41),
	},
	King: {
		MakeScore(-65, -74), MakeScore(23, -35), MakeScore(16, -18), MakeScore(-15, -18), MakeScore(-56, -11), MakeScore(-34, 15), MakeScore(2, 4), MakeScore(13, -17),
		MakeScore(29, -12), MakeScore(-1, 17), MakeScore(-20, 14), MakeScore(-7, 17), MakeScore(-8, 17), MakeScore(-4, 38), MakeScore(-38, 23), MakeScore(-29, 11),
		MakeScore(-9, 10), MakeScore(24, 17), MakeScore(2, 23), MakeScore(-16, 15), MakeScore(-20, 20), MakeScore(6, 45), MakeScore(22, 44), MakeScore(-22, 13),
		MakeScore(-17, -8), MakeScore(-20, 22), MakeScore(-12, 24), MakeScore(-27, 27), MakeScore(-30, 26), MakeScore(-25, 33), MakeScore(-14, 26), MakeScore(-36, 3),
		MakeScore(-49, -18), MakeScore(-1, -4), MakeScore(-27, 21), MakeScore(-39, 24), MakeScore(-46, 27), MakeScore(-44, 23), MakeScore(-33, 9), MakeScore(-51, -11),
		MakeScore(-14, -19), MakeScore(-14, -3), MakeScore(-22, 11), MakeScore(-46, 21), MakeScore(-44, 23), MakeScore(-30, 16), MakeScore(-15, 7), MakeScore(-27, -9),
		MakeScore(1, -27), MakeScore(7, -11), MakeScore(-8, 4), MakeScore(-64, 13), MakeScore(-43, 14), MakeScore(-16, 4), MakeScore(9, -5), MakeScore(8, -17),
		MakeScore(-15, -53), MakeScore(36, -34), MakeScore(12, -21), MakeScore(-54, -11), MakeScore(8, -28), MakeScore(-28, -14), MakeScore(24, -24), MakeScore(14, -43),
	},
}

// Pawn structure terms (spec.md §4.5 "Pawn structure").
var (
	doubledPawnPenalty  = MakeScore(-12, -29)
	isolatedPawnPenalty = MakeScore(-11, -15)
)

// passedPawnBonus is indexed by the pawn's distance (in ranks) travelled
// from its own starting rank (index 0 = still on the starting rank).
var passedPawnBonus = [8]Score{
	MakeScore(0, 0), MakeScore(5, 15), MakeScore(7, 22), MakeScore(13, 36),
	MakeScore(21, 62), MakeScore(34, 119), MakeScore(51, 198), MakeScore(0, 0),
}

// Imbalance terms (spec.md §4.5 "Imbalance").
var bishopPairBonus = MakeScore(47, 64)

// pieceImbalance returns the (opening, endgame) increment for one ordered
// pair of piece types P..Q, given White's count of pt1 and Black's count
// of pt2; imbalanceScore sums it over all 5x5 pairs. The spec leaves the
// exact magnitude of each cell unspecified beyond "a 5x5 pair-interaction
// table"; this engine uses a modest, internally consistent rule (recorded
// as an Open Question decision in DESIGN.md): same-type pairs contribute
// nothing (already captured by material), and a cross-type pair
// contributes the count difference (White minus Black) times the sum of
// the two types' pieceImbalanceStep weights, halved for the opening and
// divided by three for the endgame.
var pieceImbalanceStep = [PtLength]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0}

func pieceImbalance(whiteCount, blackCount int, pt1, pt2 PieceType) Score {
	if pt1 == pt2 {
		return MakeScore(0, 0)
	}
	weight := (pieceImbalanceStep[pt1] + pieceImbalanceStep[pt2])
	diff := whiteCount - blackCount
	return MakeScore(diff*weight/2, diff*weight/3)
}

// Piece-specific terms (spec.md §4.5 "Piece-specific").
var (
	knightSupportedBonus  = MakeScore(11, 13)
	bishopObstructedMalus = MakeScore(-11, -11)
	rookOpenFileBonus     = MakeScore(48, 20)
	rookSemiOpenFileBonus = MakeScore(20, 10)
	rookTrappedMalus      = MakeScore(-44, -13)
)

// mobilityBonus holds one (opening, endgame) entry per legal destination
// count, indexed by piece type then by the (clamped) mobility count.
var mobilityBonus = map[PieceType][]Score{
	Knight: makeMobilityCurve(9, 4, 4),
	Bishop: makeMobilityCurve(14, 3, 3),
	Rook:   makeMobilityCurve(15, 2, 4),
	Queen:  makeMobilityCurve(28, 1, 2),
}

// makeMobilityCurve builds a monotonically increasing, concave mobility
// bonus curve of n slots (0..n-1 moves available): the spec specifies
// only the slot count per piece, not the exact values, so this engine
// uses a smooth per-move increment that tapers off (diminishing returns
// for extra mobility), an Open Question decision recorded in DESIGN.md.
func makeMobilityCurve(n, mgStep, egStep int) []Score {
	curve := make([]Score, n)
	for i := 0; i < n; i++ {
		taper := i
		if taper > 6 {
			taper = 6 + (taper-6)/2
		}
		curve[i] = MakeScore(taper*mgStep, taper*egStep)
	}
	return curve
}

func mobilityScore(pt PieceType, count int) Score {
	curve := mobilityBonus[pt]
	if count >= len(curve) {
		count = len(curve) - 1
	}
	return curve[count]
}

// Threat terms (spec.md §4.5 "Threats").
var (
	pawnAttacksMinorBonus = MakeScore(55, 33)
	pawnAttacksMajorBonus = MakeScore(68, 48)
	minorAttacksMajor     = MakeScore(33, 20)
	rookAttacksQueen      = MakeScore(42, 28)
	hangingPieceMalus     = MakeScore(-14, -20)
)

// Space term (spec.md §4.5 "Space").
var spaceBonus = MakeScore(7, 0)

// King safety terms (spec.md §4.5 "King safety").
// pawnShieldBonus is indexed by the rank distance (0..7) of the nearest
// friendly pawn on a king-adjacent file, 0 meaning no pawn on that file.
var pawnShieldBonus = [8]Score{
	MakeScore(-22, 0), MakeScore(18, 0), MakeScore(30, 0), MakeScore(14, 0),
	MakeScore(2, 0), MakeScore(-8, 0), MakeScore(-14, 0), MakeScore(-20, 0),
}

// attackerWeight gives the per-piece-type weight added to a king's danger
// index for each enemy piece attacking its ring (spec.md's exact values).
var attackerWeight = map[PieceType]int{
	Knight: 31,
	Bishop: 33,
	Rook:   53,
	Queen:  93,
}

// kingSafetyCurve maps a clamped [0,99] danger index to an (opening,
// endgame) penalty. The spec specifies the clamp but not the curve shape;
// this engine uses a quadratic ramp (danger grows worse than linearly, as
// is standard in king-safety heuristics), an Open Question decision
// recorded in DESIGN.md.
var kingSafetyCurve [100]Score

func init() {
	for i := 0; i < 100; i++ {
		mg := -(i * i) / 26
		kingSafetyCurve[i] = MakeScore(mg, mg/3)
	}
}
