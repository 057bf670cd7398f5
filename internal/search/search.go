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

// Package search implements negamax alpha-beta search with a
// transposition table and hash-move-first ordering (spec.md §4.6). The
// root driver supports iterative deepening under an external time or
// depth budget.
package search

import (
	"context"
	"time"

	myLogging "github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/movegen"
	"github.com/corvidchess/core/internal/movelist"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/transpositiontable"
	. "github.com/corvidchess/core/internal/types"
)

var log = myLogging.GetLog("search")

// Result is the outcome of a completed (or interrupted) search_root call.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	Nodes    uint64
	Time     time.Duration
}

// Search bundles a transposition table with the mutable counters
// accumulated during a single search_root call. The zero value is not
// usable; construct with New.
type Search struct {
	tt    *transpositiontable.Table
	nodes uint64
}

// New returns a Search backed by a transposition table sized ttSizeMB
// megabytes.
func New(ttSizeMB int) *Search {
	return &Search{tt: transpositiontable.New(ttSizeMB)}
}

// ClearHash empties the transposition table, e.g. between unrelated games.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// SearchRoot iterates over legal root moves, recurses with the full
// (-inf,+inf) window, and returns the highest-scoring legal move (spec.md
// §4.6 "Root driver"). Returns MoveNone if pos has no legal moves.
func (s *Search) SearchRoot(ctx context.Context, pos *position.Position, depth int) Result {
	start := time.Now()
	s.nodes = 0

	roots := movelist.New()
	movegen.GenerateLegal(pos, roots)
	if roots.Len() == 0 {
		return Result{BestMove: MoveNone, Score: mateOrStalemateScore(pos, 0), Depth: depth}
	}

	if hashMove := s.hashMoveAt(pos); hashMove != MoveNone {
		roots.MoveToFront(hashMove)
	}

	best := roots.At(0)
	bestScore := -ValueInf

	for i := 0; i < roots.Len(); i++ {
		m := roots.At(i)
		pos.MakeMove(m)
		s.nodes++
		score := -s.alphaBeta(ctx, pos, depth-1, -ValueInf, ValueInf)
		pos.UnmakeMove()

		if ctx.Err() != nil {
			break
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	return Result{BestMove: best, Score: bestScore, Depth: depth, Nodes: s.nodes, Time: time.Since(start)}
}

// IterativeDeepening runs SearchRoot at increasing depths from 1 up to
// maxDepth and stops early once ctx is cancelled. It returns the result of
// the last iteration that finished before the cancellation; the depth-1
// result is returned even when ctx is cancelled during that iteration
// (spec.md §4.6 "iterative deepening").
func (s *Search) IterativeDeepening(ctx context.Context, pos *position.Position, maxDepth int) Result {
	var last Result
	for d := 1; d <= maxDepth; d++ {
		result := s.SearchRoot(ctx, pos, d)
		if ctx.Err() != nil && d > 1 {
			break
		}
		last = result
		log.Debugf("depth %d: best=%s score=%d nodes=%d", d, result.BestMove, result.Score, result.Nodes)
		if ctx.Err() != nil {
			break
		}
	}
	return last
}

func (s *Search) hashMoveAt(pos *position.Position) Move {
	entry, ok := s.tt.Probe(pos.Key())
	if !ok {
		return MoveNone
	}
	return entry.Move
}

// mateOrStalemateScore returns the score for a position with no legal
// moves: checkmate if the side to move's king is attacked, else
// stalemate (spec.md §4.6 "return -MATE + fullmove_number ... else 0").
func mateOrStalemateScore(pos *position.Position, ply int) Value {
	if pos.InCheck(pos.SideToMove()) {
		return -ValueMate + Value(ply)
	}
	return ValueDraw
}
