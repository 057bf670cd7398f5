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

// Shared constants used across the engine's core packages.
const (
	// MaxMoves bounds the length of any single pseudo-legal move list.
	// The generator producing more is a design-invariant violation (spec
	// ERROR HANDLING DESIGN): valid chess never reaches it.
	MaxMoves = 256

	// MaxPly bounds the make/unmake undo stack, i.e. the deepest a single
	// search line can go.
	MaxPly = 256

	// GamePhaseMax is the maximum tapered-eval phase weight, reached when
	// both sides still have their full complement of minor/major pieces.
	GamePhaseMax = 24

	// MaxHalfmoveClock and MaxFullmoveNumber bound the two FEN move
	// counters; values parsed above these are clamped rather than rejected.
	MaxHalfmoveClock  = 200
	MaxFullmoveNumber = 2000

	KB uint64 = 1024
	MB uint64 = KB * 1024
)
