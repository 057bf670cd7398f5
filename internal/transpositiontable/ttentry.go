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

// Package transpositiontable implements the search's transposition
// table: a fixed-size, power-of-two-addressed cache from Zobrist key to
// the best move and bound found for that position (spec.md §4.6). Not
// safe for concurrent use without external synchronization.
package transpositiontable

import (
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

// Bound classifies what kind of score an entry holds, matching the
// alpha-beta pseudocode's entry.flag (spec.md §4.6).
type Bound uint8

const (
	BoundNone Bound = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is one transposition table slot.
type Entry struct {
	Key   position.Key
	Depth int
	Score Value
	Bound Bound
	Move  Move
}

// EntrySize is the number of bytes budgeted per Entry when sizing the
// table from a megabyte budget; it is larger than the struct's in-memory
// size (24 bytes on 64-bit platforms).
const EntrySize = 32
