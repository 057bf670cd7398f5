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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoveRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.Type())
	assert.Equal(t, "e2e4", m.String())
}

func TestNewPromotionMoveRoundTrip(t *testing.T) {
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		m := NewPromotionMove(SqA7, SqA8, pt)
		assert.Equal(t, Promotion, m.Type())
		assert.Equal(t, pt, m.PromotionType())
	}
	assert.Equal(t, "a7a8q", NewPromotionMove(SqA7, SqA8, Queen).String())
}

func TestNewEnPassantMoveRoundTrip(t *testing.T) {
	m := NewEnPassantMove(SqD5, SqC6)
	assert.Equal(t, EnPassant, m.Type())
	assert.Equal(t, SqD5, m.From())
	assert.Equal(t, SqC6, m.To())
}

func TestNewCastlingMoveRoundTrip(t *testing.T) {
	m := NewCastlingMove(SqE1, SqG1)
	assert.Equal(t, Castling, m.Type())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.String())
	assert.True(t, NewMove(SqA1, SqA2).IsValid())
}

func TestCastlingRightsUpdateOnKingMove(t *testing.T) {
	rights := CastlingAll
	rights = rights.UpdateCastlingRights(SqE1, SqE2)
	assert.False(t, rights.Has(WhiteKingside))
	assert.False(t, rights.Has(WhiteQueenside))
	assert.True(t, rights.Has(BlackKingside))
	assert.True(t, rights.Has(BlackQueenside))
}

func TestCastlingRightsUpdateOnRookMove(t *testing.T) {
	rights := CastlingAll
	rights = rights.UpdateCastlingRights(SqH1, SqF1)
	assert.False(t, rights.Has(WhiteKingside))
	assert.True(t, rights.Has(WhiteQueenside))
}

func TestCastlingRightsUpdateOnRookCapture(t *testing.T) {
	// Capturing a rook on its home square removes that side's rights even
	// though the moving piece isn't the king or rook itself.
	rights := CastlingAll
	rights = rights.UpdateCastlingRights(SqB6, SqH8)
	assert.False(t, rights.Has(BlackKingside))
	assert.True(t, rights.Has(BlackQueenside))
}
