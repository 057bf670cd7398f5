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

import "fmt"

// File is a chess board file a-h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength = 8
	FileNone   = 8
)

// IsValid reports whether f is a real file (a-h).
func (f File) IsValid() bool {
	return f < FileLength
}

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// Rank is a chess board rank. The numbering follows the engine's internal
// square order (rank-8-first, see Square), so Rank8 == 0 and Rank1 == 7.
type Rank uint8

const (
	Rank8 Rank = iota
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
	RankLength = 8
	RankNone   = 8
)

// IsValid reports whether r is a real rank.
func (r Rank) IsValid() bool {
	return r < RankLength
}

// Number returns the conventional 1-8 rank number (Rank1 -> 1, Rank8 -> 8).
func (r Rank) Number() int {
	return 8 - int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('0' + r.Number()))
}

// Square is one of the 64 squares of a chess board. Squares are numbered
// rank-8-first: SqA8 = 0, SqH8 = 7, ..., SqA1 = 56, SqH1 = 63. This is the
// canonical numbering used by every attack table, PSQT and move encoding
// in this engine.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = 64
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the (internal, rank-8-first) rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf builds a square from a file and an (internal) rank.
// Returns SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)*8 + uint8(f))
}

// MirrorVertical flips a square across the board's horizontal midline
// (a1 <-> a8, e4 <-> e5, ...). Used to mirror PSQT lookups for Black and
// to mirror whole positions for the evaluator-symmetry test.
func (sq Square) MirrorVertical() Square {
	return sq ^ 56
}

// MakeSquare parses a two-character algebraic square name (e.g. "e4").
// Returns SqNone if s is not a valid square string.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rankNum := s[1] - '0'
	if !file.IsValid() || rankNum < 1 || rankNum > 8 {
		return SqNone
	}
	return SquareOf(file, Rank(8-int(rankNum)))
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// Direction is a compass direction expressed as a delta on the internal
// square index (rank-8-first, so North - the direction pawns advance for
// White - subtracts from the index).
type Direction int8

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// To returns the square one step from sq in direction d, or SqNone if that
// would leave the board (including wrap-around on the east/west edges).
func (sq Square) To(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North, South:
		// no file change, only overflow north/south is possible
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	target := int(sq) + int(d)
	if target < 0 || target >= SqLength {
		return SqNone
	}
	return Square(target)
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// String for a direction, useful only for debugging output.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Northwest:
		return "NW"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}
