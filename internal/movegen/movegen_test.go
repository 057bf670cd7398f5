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

package movegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/movelist"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

func TestGenerateLegalStartPositionCount(t *testing.T) {
	p := position.New()
	ml := movelist.New()
	GenerateLegal(p, ml)
	assert.Equal(t, 20, ml.Len())
}

func TestGenerateLegalExcludesSelfCheck(t *testing.T) {
	// White rook on e2 is pinned to the e1 king by the black rook on e8;
	// a pseudo-legal move off the e-file must be filtered out as illegal.
	p, err := position.ParseFEN("k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	pinnedMove := NewMove(SqE2, SqA2)

	pseudo := movelist.New()
	GeneratePseudoLegal(p, pseudo)
	assert.True(t, pseudo.Contains(pinnedMove), "pseudo-legal generation should still offer the pinned move")

	legal := movelist.New()
	GenerateLegal(p, legal)
	assert.False(t, legal.Contains(pinnedMove), "rook must not abandon the e-file pin")
	assert.True(t, legal.Contains(NewMove(SqE2, SqE3)), "moving along the pin stays legal")
}

func TestGenerateLegalCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 bears down the f-file onto f1, so white cannot
	// castle kingside (the king would pass through an attacked square).
	p, err := position.ParseFEN("4k2r/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	p2, err := position.ParseFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	ml := movelist.New()
	GeneratePseudoLegal(p, ml)
	assert.True(t, ml.Contains(NewCastlingMove(SqE1, SqG1)))

	ml2 := movelist.New()
	GeneratePseudoLegal(p2, ml2)
	assert.False(t, ml2.Contains(NewCastlingMove(SqE1, SqG1)))
}

func TestHasLegalMoveDetectsStalemate(t *testing.T) {
	// Black king h8 boxed in by white king f7 and queen g6, none of its
	// three adjacent squares are safe, and h8 itself is not attacked.
	p, err := position.ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.InCheck(Black))
	assert.False(t, HasLegalMove(p))
}

func TestHasLegalMoveDetectsCheckmate(t *testing.T) {
	p, err := position.ParseFEN("8/8/8/8/8/5k2/6q1/7K w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.InCheck(White))
	assert.False(t, HasLegalMove(p))
}

func TestPerftStartPositionAnchors(t *testing.T) {
	anchors := map[int]uint64{
		1: 20,
		2: 400,
		3: 8902,
		4: 197281,
	}
	for depth, want := range anchors {
		depth, want := depth, want
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			p := position.New()
			got := NewPerft().Count(p, depth)
			assert.Equal(t, want, got, "perft(startpos, %d)", depth)
		})
	}
}

func TestPerftKiwipeteAnchors(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	anchors := map[int]uint64{
		1: 48,
		2: 2039,
		3: 97862,
	}
	for depth, want := range anchors {
		p, err := position.ParseFEN(fen)
		require.NoError(t, err)
		got := NewPerft().Count(p, depth)
		assert.Equal(t, want, got, "perft(kiwipete, %d)", depth)
	}
}

func TestPerftDividePartitionsTotal(t *testing.T) {
	p := position.New()
	pf := NewPerft()
	total := pf.Count(p, 3)

	divided := pf.Divide(p, 3)
	var sum uint64
	for _, n := range divided {
		sum += n
	}
	assert.Equal(t, total, sum)
}

func TestPerftMakeUnmakeLeavesPositionUnchanged(t *testing.T) {
	p := position.New()
	before := p.ToFEN()
	NewPerft().Count(p, 3)
	assert.Equal(t, before, p.ToFEN())
	assert.True(t, p.VerifyKey())
}
