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

// imbalanceScore sums the bishop-pair bonus and the 5x5 piece-pair
// interaction table (spec.md §4.5 "Imbalance").
func imbalanceScore(p *position.Position) Score {
	var s Score

	whiteBishops := p.PieceTypeBb(White, Bishop).PopCount()
	blackBishops := p.PieceTypeBb(Black, Bishop).PopCount()
	if whiteBishops >= 2 {
		s.Add(bishopPairBonus)
	}
	if blackBishops >= 2 {
		s.Sub(bishopPairBonus)
	}

	for pt1 := Pawn; pt1 <= Queen; pt1++ {
		for pt2 := Pawn; pt2 <= Queen; pt2++ {
			wCount := p.PieceTypeBb(White, pt1).PopCount()
			bCount := p.PieceTypeBb(Black, pt2).PopCount()
			s.Add(pieceImbalance(wCount, bCount, pt1, pt2))
		}
	}

	return s
}
