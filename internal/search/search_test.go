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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

func TestSearchRootFindsAMoveFromStartPosition(t *testing.T) {
	s := New(4)
	p := position.New()
	result := s.SearchRoot(context.Background(), p, 4)
	assert.True(t, result.BestMove.IsValid())
	assert.Equal(t, position.StartFEN, p.ToFEN(), "search_root must leave the position restored")
	assert.True(t, p.VerifyKey())
}

func TestSearchRootDetectsCheckmate(t *testing.T) {
	s := New(4)
	p, err := position.ParseFEN("8/8/8/8/8/5k2/6q1/7K w - - 0 1")
	require.NoError(t, err)
	result := s.SearchRoot(context.Background(), p, 1)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.True(t, result.Score.IsMateScore())
	assert.Less(t, int(result.Score), 0)
}

func TestSearchRootDetectsStalemate(t *testing.T) {
	s := New(4)
	p, err := position.ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	result := s.SearchRoot(context.Background(), p, 1)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, ValueDraw, result.Score)
}

func TestSearchRootRespectsCastlingLegality(t *testing.T) {
	// f1 is attacked by the black rook on f8, so castling kingside must
	// not appear anywhere in the search even though it's the only way to
	// "develop" quickly.
	p, err := position.ParseFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	s := New(4)
	result := s.SearchRoot(context.Background(), p, 2)
	assert.NotEqual(t, NewCastlingMove(SqE1, SqG1), result.BestMove)
}

func TestIterativeDeepeningStopsOnCancellation(t *testing.T) {
	s := New(4)
	p := position.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := s.IterativeDeepening(ctx, p, 10)
	assert.True(t, result.Depth >= 1)
}

func TestTranspositionTableIsSoundAcrossRepeatedSearch(t *testing.T) {
	s := New(4)
	p := position.New()
	first := s.SearchRoot(context.Background(), p, 3)
	second := s.SearchRoot(context.Background(), p, 3)
	assert.Equal(t, first.BestMove, second.BestMove)
	assert.Equal(t, first.Score, second.Score)
}
