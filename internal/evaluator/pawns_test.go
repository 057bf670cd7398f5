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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

func TestSidePawnStructureDetectsDoubledAndIsolated(t *testing.T) {
	// White pawns doubled on the e-file, isolated on the h-file.
	p, err := position.ParseFEN("4k3/8/8/8/8/4P3/4P3/4K2P w - - 0 1")
	require.NoError(t, err)
	s := sidePawnStructure(p, White)
	assert.Less(t, int(s.Mid), 0, "doubled+isolated pawns should be a net penalty")
}

func TestSidePawnStructureConnectedPawnsNoIsolationPenalty(t *testing.T) {
	p, err := position.ParseFEN("4k3/8/8/8/8/8/4PP2/4K3 w - - 0 1")
	require.NoError(t, err)
	s := sidePawnStructure(p, White)
	assert.Equal(t, Score{}, s, "adjacent connected pawns are neither doubled nor isolated")
}

func TestIsPassedPawnTrueWithNoBlockers(t *testing.T) {
	p, err := position.ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, isPassedPawn(p, White, SqE2))
}

func TestIsPassedPawnFalseWithEnemyPawnAhead(t *testing.T) {
	p, err := position.ParseFEN("4k3/8/4p3/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, isPassedPawn(p, White, SqE2))
}

func TestIsPassedPawnFalseWithAdjacentFileBlocker(t *testing.T) {
	p, err := position.ParseFEN("4k3/8/3p4/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, isPassedPawn(p, White, SqE2))
}

func TestPawnAdvanceFromOwnStart(t *testing.T) {
	assert.Equal(t, 0, pawnAdvanceFromOwnStart(White, SqE2))
	assert.Equal(t, 5, pawnAdvanceFromOwnStart(White, SqE7))
	assert.Equal(t, 0, pawnAdvanceFromOwnStart(Black, SqE7))
	assert.Equal(t, 5, pawnAdvanceFromOwnStart(Black, SqE2))
}
