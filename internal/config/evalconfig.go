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

package config

// evalConfiguration gates each evaluator term on or off, mirroring the
// teacher's evalConfiguration pattern of per-term switches. The bulk
// tables each term consults (material, PSQT, mobility curves, ...) are
// Go constants in the evaluator package itself - too large to usefully
// round-trip through TOML - these switches just let a caller (or a test)
// isolate one term at a time, exactly as the teacher's evaluator does for
// its own terms.
type evalConfiguration struct {
	Tempo int

	UseMaterial     bool
	UsePSQT         bool
	UsePawnStructure bool
	UseImbalance    bool
	UsePieceSpecific bool
	UseMobility     bool
	UseThreats      bool
	UsePassedPawns  bool
	UseSpace        bool
	UseKingSafety   bool
}

func init() {
	Settings.Eval.Tempo = 0

	Settings.Eval.UseMaterial = true
	Settings.Eval.UsePSQT = true
	Settings.Eval.UsePawnStructure = true
	Settings.Eval.UseImbalance = true
	Settings.Eval.UsePieceSpecific = true
	Settings.Eval.UseMobility = true
	Settings.Eval.UseThreats = true
	Settings.Eval.UsePassedPawns = true
	Settings.Eval.UseSpace = true
	Settings.Eval.UseKingSafety = true
}
