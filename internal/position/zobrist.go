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
	. "github.com/corvidchess/core/internal/types"
)

// Key is a Zobrist hash key used to fingerprint a position for the
// transposition table.
type Key uint64

// zobristSeed is fixed so that every run of the engine builds the exact
// same key tables (spec.md §3: "reproducible runs").
const zobristSeed = 1070372

var (
	zPieceSquare [PieceLength][SqLength]Key
	zSideToMove  Key
	zCastling    [CastlingLength]Key
	// zEnPassantFile holds one key per file plus a final "no en passant"
	// key at index FileLength, matching the spec's "8 files + none".
	zEnPassantFile [FileLength + 1]Key

	zobristInitialized = false
)

func initZobrist() {
	if zobristInitialized {
		return
	}
	rng := newRandom(zobristSeed)
	for p := Piece(0); p < PieceLength; p++ {
		for sq := Square(0); sq < SqLength; sq++ {
			zPieceSquare[p][sq] = Key(rng.rand64())
		}
	}
	zSideToMove = Key(rng.rand64())
	for c := CastlingRights(0); c < CastlingLength; c++ {
		zCastling[c] = Key(rng.rand64())
	}
	for f := 0; f <= FileLength; f++ {
		zEnPassantFile[f] = Key(rng.rand64())
	}
	zobristInitialized = true
}

// enPassantKey returns the Zobrist key contribution of the given
// en-passant square (sq == SqNone contributes the "none" key).
func enPassantKey(sq Square) Key {
	if sq == SqNone {
		return zEnPassantFile[FileLength]
	}
	return zEnPassantFile[sq.FileOf()]
}

// computeKey builds the Zobrist key for p entirely from scratch, used to
// validate the incrementally maintained key (spec.md §8 "hash round-trip").
func computeKey(p *Position) Key {
	var k Key
	for sq := Square(0); sq < SqLength; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			k ^= zPieceSquare[pc][sq]
		}
	}
	if p.sideToMove == Black {
		k ^= zSideToMove
	}
	k ^= zCastling[p.castlingRights]
	k ^= enPassantKey(p.enPassantSquare)
	return k
}
