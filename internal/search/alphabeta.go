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

package search

import (
	"context"

	"github.com/corvidchess/core/internal/evaluator"
	"github.com/corvidchess/core/internal/movegen"
	"github.com/corvidchess/core/internal/movelist"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/transpositiontable"
	. "github.com/corvidchess/core/internal/types"
)

// alphaBeta is the recursive negamax search with fail-hard bounds (a beta
// cutoff returns beta, otherwise alpha is returned) and
// transposition table probing/storing, implementing spec.md §4.6's AB
// pseudocode directly.
func (s *Search) alphaBeta(ctx context.Context, pos *position.Position, depth int, alpha, beta Value) Value {
	if ctx.Err() != nil {
		return evaluator.Evaluate(pos)
	}

	key := pos.Key()
	entry, found := s.tt.Probe(key)
	if found && entry.Depth >= depth {
		switch entry.Bound {
		case transpositiontable.Exact:
			return entry.Score
		case transpositiontable.LowerBound:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case transpositiontable.UpperBound:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	if depth == 0 {
		return evaluator.Evaluate(pos)
	}

	pseudo := movelist.New()
	movegen.GeneratePseudoLegal(pos, pseudo)

	var hashMove Move
	if found && entry.Move != MoveNone {
		hashMove = entry.Move
		pseudo.MoveToFront(hashMove)
	}

	best := MoveNone
	bound := transpositiontable.UpperBound
	us := pos.SideToMove()
	legalMovesTried := 0

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)

		pos.MakeMove(m)
		s.nodes++
		if pos.IsSquareAttacked(pos.KingSquare(us), us.Flip()) {
			pos.UnmakeMove()
			continue
		}
		legalMovesTried++

		score := -s.alphaBeta(ctx, pos, depth-1, -beta, -alpha)
		pos.UnmakeMove()

		if score >= beta {
			s.tt.Store(key, depth, beta, transpositiontable.LowerBound, m)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
			bound = transpositiontable.Exact
		}
	}

	if legalMovesTried == 0 {
		return mateOrStalemateScore(pos, pos.FullmoveNumber())
	}

	s.tt.Store(key, depth, alpha, bound, best)
	return alpha
}
