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

// pieceSpecificScore covers the per-piece bonuses that are not captured
// by material/PSQT: knight support, bishop obstruction, rook file status
// and trapped-rook detection (spec.md §4.5 "Piece-specific").
func pieceSpecificScore(p *position.Position) Score {
	var s Score
	s.Add(sidePieceSpecific(p, White))
	s.Sub(sidePieceSpecific(p, Black))
	return s
}

func sidePieceSpecific(p *position.Position, us Color) Score {
	var s Score
	them := us.Flip()
	ownPawns := p.PieceTypeBb(us, Pawn)

	backDir := South
	if us == Black {
		backDir = North
	}

	for bb := p.PieceTypeBb(us, Knight); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		behind := sq.To(backDir)
		var supporters Bitboard
		if behind.IsValid() {
			if e := behind.To(East); e.IsValid() {
				supporters = supporters.Set(e)
			}
			if w := behind.To(West); w.IsValid() {
				supporters = supporters.Set(w)
			}
		}
		if supporters&ownPawns != 0 {
			s.Add(knightSupportedBonus)
		}
	}

	for bb := p.PieceTypeBb(us, Bishop); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		sameColorPawns := (ownPawns & squareColorBb(sq)).PopCount()
		if sameColorPawns > 0 {
			penalty := MakeScore(int(bishopObstructedMalus.Mid)*sameColorPawns, int(bishopObstructedMalus.End)*sameColorPawns)
			s.Add(penalty)
		}
	}

	for bb := p.PieceTypeBb(us, Rook); bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		f := sq.FileOf()
		if p.PieceTypeBb(us, Pawn)&f.Bb() == 0 {
			if p.PieceTypeBb(them, Pawn)&f.Bb() == 0 {
				s.Add(rookOpenFileBonus)
			} else {
				s.Add(rookSemiOpenFileBonus)
			}
		}
		if isTrappedRook(p, us, sq) {
			s.Add(rookTrappedMalus)
		}
	}

	return s
}

// squareColorBb returns a mask of every square sharing sq's board color
// (light or dark), computed once per call - cheap enough given how
// rarely bishops move compared to how often positions are evaluated.
func squareColorBb(sq Square) Bitboard {
	var mask Bitboard
	light := (int(sq.FileOf())+int(sq.RankOf()))%2 == 0
	for s := Square(0); s < SqLength; s++ {
		if ((int(s.FileOf())+int(s.RankOf()))%2 == 0) == light {
			mask = mask.Set(s)
		}
	}
	return mask
}

// isTrappedRook reports whether us's king has castled to one side and a
// rook of us still sits in that side's corner, unable to develop
// (spec.md §4.5 "Trapped rook").
func isTrappedRook(p *position.Position, us Color, rookSq Square) bool {
	king := p.KingSquare(us)
	kingsideCorner, queensideCorner := SqH1, SqA1
	kingsideKing, queensideKing := SqG1, SqC1
	if us == Black {
		kingsideCorner, queensideCorner = SqH8, SqA8
		kingsideKing, queensideKing = SqG8, SqC8
	}
	if king == kingsideKing && rookSq == kingsideCorner {
		return true
	}
	if king == queensideKing && rookSq == queensideCorner {
		return true
	}
	return false
}

// mobilityTotalScore counts, for each minor/major piece, the destination
// squares that are neither occupied by a friendly piece, an enemy pawn,
// nor attacked by an enemy pawn, and looks up the bonus for that count
// (spec.md §4.5 "Mobility").
func mobilityTotalScore(p *position.Position) Score {
	var s Score
	s.Add(sideMobility(p, White))
	s.Sub(sideMobility(p, Black))
	return s
}

func sideMobility(p *position.Position, us Color) Score {
	them := us.Flip()
	own := p.OccupiedBb(us)
	occ := p.OccupiedBb(Both)
	enemyPawns := p.PieceTypeBb(them, Pawn)

	var enemyPawnAttacks Bitboard
	for bb := enemyPawns; bb != 0; {
		sq, rest := bb.PopLsb()
		bb = rest
		enemyPawnAttacks |= attacks.PawnAttacks(them, sq)
	}

	excluded := own | enemyPawns | enemyPawnAttacks

	var s Score
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		for bb := p.PieceTypeBb(us, pt); bb != 0; {
			sq, rest := bb.PopLsb()
			bb = rest
			targets := attacks.Attacks(pt, sq, occ) &^ excluded
			s.Add(mobilityScore(pt, targets.PopCount()))
		}
	}
	return s
}
