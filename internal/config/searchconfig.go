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

// searchConfiguration holds the [Search] settings loaded from the
// configuration file. Neither the search package nor the CLI reads them:
// the search always uses its transposition table and hash-move ordering,
// and the CLI takes depth and table size from its -depth and -ttsize
// flags. Trimmed, relative to the teacher's
// full UCI-engine configuration, to exactly what spec.md's search
// pseudocode (§4.6) uses: a TT of a given size, on or off, and hash-move
// ordering on or off. Quiescence/null-move/LMR/PVS knobs the teacher
// carries do not apply - this core's search does not implement those
// extensions (see DESIGN.md).
type searchConfiguration struct {
	UseTT      bool
	TTSizeMB   int
	UseTTMove  bool
	MaxDepth   int
}

func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseTTMove = true
	Settings.Search.MaxDepth = 64
}
