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

// Package attacks builds and serves the engine's precomputed attack
// tables: leaper attacks (pawn/knight/king) and, for the two slider
// pieces, a parallel-bit-extract (PBE) indexed lookup over every
// occupancy subset of each square's relevance mask. Everything here is
// built once by Init and is read-only afterwards - see spec.md §4.1.
package attacks

import (
	myLogging "github.com/corvidchess/core/internal/logging"
	. "github.com/corvidchess/core/internal/types"
)

var log = myLogging.GetLog("attacks")

// Table sizes are a direct consequence of the relevance masks (excluding
// board edges, which can never block further travel): summed across all
// 64 squares, the bishop occupancy subsets total 0x1480 entries and the
// rook subsets total 0x19000 - see spec.md §3 "Attack tables".
const (
	bishopTableSize = 0x1480
	rookTableSize   = 0x19000
)

var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard

	bishopMask   [SqLength]Bitboard
	rookMask     [SqLength]Bitboard
	bishopOffset [SqLength]int
	rookOffset   [SqLength]int

	bishopTable [bishopTableSize]Bitboard
	rookTable   [rookTableSize]Bitboard

	initialized = false
)

var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirs = [4]Direction{North, South, East, West}

// Init builds every attack table. Idempotent - safe to call repeatedly
// (e.g. once per test package) without rebuilding.
func Init() {
	if initialized {
		return
	}
	log.Debug("initializing attack tables")
	initLeapers()
	initSliders(bishopDirs, bishopMask[:], bishopOffset[:], bishopTable[:])
	initSliders(rookDirs, rookMask[:], rookOffset[:], rookTable[:])
	initialized = true
}

func initLeapers() {
	for sq := Square(0); sq < SqLength; sq++ {
		var wp, bp, kn, ki Bitboard
		if t := sq.To(Northeast); t.IsValid() {
			wp = wp.Set(t)
		}
		if t := sq.To(Northwest); t.IsValid() {
			wp = wp.Set(t)
		}
		if t := sq.To(Southeast); t.IsValid() {
			bp = bp.Set(t)
		}
		if t := sq.To(Southwest); t.IsValid() {
			bp = bp.Set(t)
		}
		pawnAttacks[White][sq] = wp
		pawnAttacks[Black][sq] = bp

		for _, d := range knightDeltas {
			if t, ok := step(sq, d[0], d[1]); ok {
				kn = kn.Set(t)
			}
		}
		knightAttacks[sq] = kn

		for _, d := range kingDeltas {
			if t, ok := step(sq, d[0], d[1]); ok {
				ki = ki.Set(t)
			}
		}
		kingAttacks[sq] = ki
	}
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// step offsets sq by (df, dr) in file/rank coordinates, returning the
// resulting square and whether it stayed on the board.
func step(sq Square, df, dr int) (Square, bool) {
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone, false
	}
	return SquareOf(File(f), Rank(r)), true
}

// slidingAttack ray-walks from sq in each of directions, treating set
// bits of occ as blockers that stop further travel (the blocker's square
// is included in the result; squares beyond it are not).
func slidingAttack(directions [4]Direction, sq Square, occ Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = attack.Set(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attack
}

// initSliders computes the relevance mask for every square and fills the
// flat attack table by enumerating every occupancy subset of each mask
// via the carry-rippler trick, storing each subset's true ray-walk
// attack at its PBE-derived offset (spec.md §4.1, steps 1-3).
func initSliders(directions [4]Direction, mask []Bitboard, offset []int, table []Bitboard) {
	cursor := 0
	for sq := Square(0); sq < SqLength; sq++ {
		edges := (RankBb[Rank1] | RankBb[Rank8]) &^ sq.RankOf().Bb() |
			(FileBb[FileA] | FileBb[FileH]) &^ sq.FileOf().Bb()
		m := slidingAttack(directions, sq, BbZero) &^ edges
		mask[sq] = m
		offset[sq] = cursor

		subset := BbZero
		for {
			idx := offset[sq] + int(PBE(subset, m))
			table[idx] = slidingAttack(directions, sq, subset)
			subset = subset.NextSubset(m)
			if subset == BbZero {
				break
			}
		}
		cursor += 1 << uint(m.PopCount())
	}
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king step set from sq (castling is handled by
// the move generator, not here).
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// BishopAttacks returns the bishop attack set from sq given the board
// occupancy occ, via the PBE-indexed lookup table.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	idx := bishopOffset[sq] + int(PBE(occ&bishopMask[sq], bishopMask[sq]))
	return bishopTable[idx]
}

// RookAttacks returns the rook attack set from sq given the board
// occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	idx := rookOffset[sq] + int(PBE(occ&rookMask[sq], rookMask[sq]))
	return rookTable[idx]
}

// QueenAttacks returns the queen attack set from sq given the board
// occupancy occ (bishop | rook).
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// Attacks returns the attack set for an arbitrary non-pawn piece type.
func Attacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	default:
		return BbZero
	}
}

// RayWalkAttacks is an independent, non-table-driven ray walk used only
// by tests to verify the PBE tables are total functions of (sq, occ).
func RayWalkAttacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return slidingAttack(bishopDirs, sq, occ)
	case Rook:
		return slidingAttack(rookDirs, sq, occ)
	case Queen:
		return slidingAttack(bishopDirs, sq, occ) | slidingAttack(rookDirs, sq, occ)
	default:
		return BbZero
	}
}
