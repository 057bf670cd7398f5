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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/core/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

// occupancySamples returns a handful of deterministic occupancy patterns
// (no board, full board, and staggered diagonals/files) to exercise the
// slider tables without relying on a random source.
func occupancySamples() []Bitboard {
	var diag, files, sparse Bitboard
	for sq := Square(0); sq < SqLength; sq++ {
		if int(sq.FileOf()) == int(sq.RankOf()) {
			diag = diag.Set(sq)
		}
		if sq.FileOf() == FileC || sq.FileOf() == FileF {
			files = files.Set(sq)
		}
		if (int(sq)%7) == 0 {
			sparse = sparse.Set(sq)
		}
	}
	return []Bitboard{BbZero, diag, files, sparse, ^BbZero}
}

func TestBishopAttacksMatchRayWalk(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		for _, occ := range occupancySamples() {
			want := RayWalkAttacks(Bishop, sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks from %s under occupancy %#x", sq, uint64(occ))
		}
	}
}

func TestRookAttacksMatchRayWalk(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		for _, occ := range occupancySamples() {
			want := RayWalkAttacks(Rook, sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks from %s under occupancy %#x", sq, uint64(occ))
		}
	}
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	occ := occupancySamples()[2]
	for sq := Square(0); sq < SqLength; sq++ {
		want := BishopAttacks(sq, occ) | RookAttacks(sq, occ)
		assert.Equal(t, want, QueenAttacks(sq, occ))
	}
}

func TestKnightAttacksAreSymmetric(t *testing.T) {
	// Every square a knight on sq attacks must itself attack sq back.
	for sq := Square(0); sq < SqLength; sq++ {
		for bb := KnightAttacks(sq); bb != 0; {
			to, rest := bb.PopLsb()
			bb = rest
			assert.True(t, KnightAttacks(to).Has(sq))
		}
	}
}

func TestPawnAttacksAreDiagonalOnly(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		for bb := PawnAttacks(White, sq); bb != 0; {
			to, rest := bb.PopLsb()
			bb = rest
			assert.NotEqual(t, sq.FileOf(), to.FileOf())
		}
	}
}
