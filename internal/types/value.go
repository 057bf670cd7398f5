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

package types

import "fmt"

// Value is a centipawn evaluation score.
type Value int32

const (
	ValueZero    Value = 0
	ValueDraw    Value = 0
	ValueInf     Value = 32000
	ValueMate    Value = 31000
	ValueMaxPly        = 128
	ValueNone    Value = 32001
)

// IsMateScore reports whether v represents a forced mate (in either
// direction) rather than a material/positional evaluation.
func (v Value) IsMateScore() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= ValueMate-ValueMaxPly
}

// Score is a (mid-game, end-game) value pair used by the tapered
// evaluator. Terms are accumulated into a Score and collapsed to a
// single Value once the game phase is known.
type Score struct {
	Mid Value
	End Value
}

// Add accumulates another score's mid/end components into s.
func (s *Score) Add(o Score) {
	s.Mid += o.Mid
	s.End += o.End
}

// Sub subtracts another score's mid/end components from s.
func (s *Score) Sub(o Score) {
	s.Mid -= o.Mid
	s.End -= o.End
}

// Taper interpolates between the mid-game and end-game values by phase,
// where phase is in [0, GamePhaseMax] and GamePhaseMax means "full
// opening material still on the board".
func (s Score) Taper(phase int) Value {
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	if phase < 0 {
		phase = 0
	}
	return Value((int(s.Mid)*phase + int(s.End)*(GamePhaseMax-phase)) / GamePhaseMax)
}

func (s Score) String() string {
	return fmt.Sprintf("{mid:%d end:%d}", s.Mid, s.End)
}

// MakeScore is a small convenience constructor mirroring the (opening,
// endgame) pairs used throughout the evaluator tables.
func MakeScore(mid, end int) Score {
	return Score{Mid: Value(mid), End: Value(end)}
}
