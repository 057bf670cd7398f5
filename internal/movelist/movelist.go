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

// Package movelist provides a small fixed-capacity helper type for slices
// of Move, used by the move generator and the search as a scratch buffer
// (spec.md §3: "at most 256 moves" per position).
package movelist

import (
	"fmt"
	"strings"

	"github.com/corvidchess/core/internal/assert"
	. "github.com/corvidchess/core/internal/types"
)

// MoveList is a slice of Move with a few convenience operations layered
// on top. The zero value is not usable; construct with New.
type MoveList []Move

// New returns an empty MoveList sized for the spec's per-position bound.
func New() *MoveList {
	moves := make([]Move, 0, MaxMoves)
	return (*MoveList)(&moves)
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return len(*ml)
}

// PushBack appends a move.
func (ml *MoveList) PushBack(m Move) {
	if assert.DEBUG {
		assert.Assert(len(*ml) < MaxMoves, "movelist: exceeded MaxMoves (%d)", MaxMoves)
	}
	*ml = append(*ml, m)
}

// At returns the move at index i. Panics if i is out of bounds.
func (ml *MoveList) At(i int) Move {
	if i < 0 || i >= len(*ml) {
		panic("movelist: index out of bounds")
	}
	return (*ml)[i]
}

// Set overwrites the move at index i. Panics if i is out of bounds.
func (ml *MoveList) Set(i int, m Move) {
	if i < 0 || i >= len(*ml) {
		panic("movelist: index out of bounds")
	}
	(*ml)[i] = m
}

// Swap exchanges the moves at indices i and j, used by the search to move
// a chosen candidate (e.g. the transposition table's best move) to the
// front without reallocating.
func (ml *MoveList) Swap(i, j int) {
	(*ml)[i], (*ml)[j] = (*ml)[j], (*ml)[i]
}

// Clear empties the list while retaining its backing array.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Contains reports whether m appears anywhere in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range *ml {
		if x == m {
			return true
		}
	}
	return false
}

// MoveToFront moves the first occurrence of m to index 0, shifting the
// rest down by one. Used to place a hash move first for move ordering
// (spec.md §4.6 "search hash moves first"). A no-op if m is not found.
func (ml *MoveList) MoveToFront(m Move) {
	s := *ml
	for i, x := range s {
		if x == m {
			copy(s[1:i+1], s[:i])
			s[0] = m
			return
		}
	}
}

// Clone returns an independent copy of ml.
func (ml *MoveList) Clone() *MoveList {
	dest := make([]Move, len(*ml))
	copy(dest, *ml)
	return (*MoveList)(&dest)
}

func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList[%d]{ ", ml.Len()))
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
