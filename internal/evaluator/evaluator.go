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

// Package evaluator computes a tapered centipawn score for a position:
// material, piece-square tables, pawn structure, imbalance, piece-specific
// terms, mobility, threats, passed pawns, space and king safety, all
// summed as (opening, endgame) pairs and interpolated by game phase
// (spec.md §4.5). Evaluate is a pure function of the position: no
// internal state is carried between calls.
package evaluator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/core/internal/config"
	myLogging "github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

var log = myLogging.GetLog("evaluator")
var out = message.NewPrinter(language.German)

// GamePhase sums {N,B: 1, R: 2, Q: 4} over every minor/major piece still
// on the board, clamped to GamePhaseMax (spec.md §4.5 "phase weight").
func GamePhase(p *position.Position) int {
	phase := 0
	for _, c := range [2]Color{White, Black} {
		phase += p.PieceTypeBb(c, Knight).PopCount() * 1
		phase += p.PieceTypeBb(c, Bishop).PopCount() * 1
		phase += p.PieceTypeBb(c, Rook).PopCount() * 2
		phase += p.PieceTypeBb(c, Queen).PopCount() * 4
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// Evaluate returns the position's value in centipawns from the
// perspective of the side to move (spec.md §4.5).
func Evaluate(p *position.Position) Value {
	var score Score

	if config.Settings.Eval.UseMaterial {
		score.Add(materialScore(p))
	}
	if config.Settings.Eval.UsePSQT {
		score.Add(psqtScore(p))
	}
	if config.Settings.Eval.UsePawnStructure {
		score.Add(pawnStructureScore(p))
	}
	if config.Settings.Eval.UseImbalance {
		score.Add(imbalanceScore(p))
	}
	if config.Settings.Eval.UsePieceSpecific {
		score.Add(pieceSpecificScore(p))
	}
	if config.Settings.Eval.UseMobility {
		score.Add(mobilityTotalScore(p))
	}
	if config.Settings.Eval.UseThreats {
		score.Add(threatsScore(p))
	}
	if config.Settings.Eval.UsePassedPawns {
		score.Add(passedPawnsScore(p))
	}
	if config.Settings.Eval.UseSpace {
		score.Add(spaceScore(p))
	}
	if config.Settings.Eval.UseKingSafety {
		score.Add(kingSafetyScore(p))
	}

	phase := GamePhase(p)
	value := score.Taper(phase)

	if p.SideToMove() == Black {
		value = -value
	}

	// Tempo is a side-to-move bonus, applied after the color negation. With
	// the default Tempo of 0, Evaluate(pos) == -Evaluate(mirror(pos)) holds
	// exactly (spec.md §8 "Evaluator symmetry"); a nonzero Tempo adds to
	// both evaluations and breaks that identity by 2*Tempo.
	value += Value(config.Settings.Eval.Tempo)

	return value
}

func materialScore(p *position.Position) Score {
	var s Score
	for pt := Pawn; pt < PtLength; pt++ {
		diff := p.PieceTypeBb(White, pt).PopCount() - p.PieceTypeBb(Black, pt).PopCount()
		term := materialValue[pt]
		s.Add(MakeScore(int(term.Mid)*diff, int(term.End)*diff))
	}
	return s
}

func psqtScore(p *position.Position) Score {
	var s Score
	for pt := Pawn; pt < PtLength; pt++ {
		for bb := p.PieceTypeBb(White, pt); bb != 0; {
			sq, rest := bb.PopLsb()
			bb = rest
			s.Add(psqt[pt][sq])
		}
		for bb := p.PieceTypeBb(Black, pt); bb != 0; {
			sq, rest := bb.PopLsb()
			bb = rest
			s.Sub(psqt[pt][sq.MirrorVertical()])
		}
	}
	return s
}

// Report renders a breakdown of the position's evaluation, one term per
// line, for debugging.
func Report(p *position.Position) string {
	value := Evaluate(p)
	phase := GamePhase(p)
	log.Debugf("evaluated %s: value=%d phase=%d", p.ToFEN(), value, phase)
	return out.Sprintf("Eval(%s) = %d (phase=%d)\n", p.ToFEN(), value, phase)
}
