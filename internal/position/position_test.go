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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidchess/core/internal/types"
)

func TestNewIsStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, WhiteKingside|WhiteQueenside|BlackKingside|BlackQueenside, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, StartFEN, p.ToFEN())
	assert.True(t, p.VerifyKey())
}

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/5k2/6q1/7K w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.ToFEN())
		assert.True(t, p.VerifyKey())
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range bad {
		_, err := ParseFEN(fen)
		assert.Error(t, err, "expected error for FEN %q", fen)
	}
}

func TestMakeUnmakeMoveRestoresState(t *testing.T) {
	p := New()
	before := p.ToFEN()
	beforeKey := p.Key()

	p.MakeMove(NewMove(SqE2, SqE4))
	assert.NotEqual(t, before, p.ToFEN())
	assert.True(t, p.VerifyKey())

	p.UnmakeMove()
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, beforeKey, p.Key())
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.ToFEN()

	p.MakeMove(NewCastlingMove(SqE1, SqG1))
	assert.Equal(t, White.Flip(), p.SideToMove())
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqF1))
	assert.True(t, p.VerifyKey())

	p.UnmakeMove()
	assert.Equal(t, before, p.ToFEN())
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/pp1ppppp/8/2pP4/8/8/PPP1PPPP/RNBQKBNR w KQkq c6 0 3")
	require.NoError(t, err)
	before := p.ToFEN()
	beforeKey := p.Key()

	p.MakeMove(NewEnPassantMove(SqD5, SqC6))
	assert.Equal(t, PieceNone, p.PieceAt(SqC5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqC6))
	assert.True(t, p.VerifyKey())

	p.UnmakeMove()
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, beforeKey, p.Key())
}

func TestMakeUnmakePromotion(t *testing.T) {
	p, err := ParseFEN("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	require.NoError(t, err)
	before := p.ToFEN()

	p.MakeMove(NewPromotionMove(SqA7, SqA8, Queen))
	assert.Equal(t, MakePiece(White, Queen), p.PieceAt(SqA8))
	assert.True(t, p.VerifyKey())

	p.UnmakeMove()
	assert.Equal(t, before, p.ToFEN())
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := ParseFEN("8/8/8/8/8/5k2/6q1/7K w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(SqH1, Black))
	assert.True(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	clone := p.Clone()
	clone.MakeMove(NewMove(SqE2, SqE4))
	assert.NotEqual(t, p.ToFEN(), clone.ToFEN())
	assert.Equal(t, StartFEN, p.ToFEN())
}
