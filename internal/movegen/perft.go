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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/core/internal/movelist"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
	"github.com/corvidchess/core/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes of the legal move tree below a position to a
// fixed depth, the standard move-generator correctness check (spec.md
// §4.7 "Perft"). After a Count call, a Perft holds the totals of that call;
// NewPerft returns one with all totals zero.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
}

// NewPerft returns an empty Perft.
func NewPerft() *Perft {
	return &Perft{}
}

// Count runs perft to depth from p, mutating neither p (make/unmake
// leaves it restored) nor any state outside the returned counters.
func (pf *Perft) Count(p *position.Position, depth int) uint64 {
	pf.reset()
	if depth <= 0 {
		return 1
	}
	pf.Nodes = pf.search(p, depth)
	return pf.Nodes
}

// Divide runs perft to depth and returns the leaf count contributed by
// each individual legal root move, keyed by its long algebraic notation -
// the standard tool for bisecting a move generator bug against a known
// reference.
func (pf *Perft) Divide(p *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	moves := movelist.New()
	GenerateLegal(p, moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.MakeMove(m)
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = pf.search(p, depth-1)
		}
		p.UnmakeMove()
		result[m.String()] = nodes
	}
	return result
}

func (pf *Perft) search(p *position.Position, depth int) uint64 {
	moves := movelist.New()
	GenerateLegal(p, moves)

	if depth == 1 {
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			pf.tallyLeaf(p, m)
		}
		return uint64(moves.Len())
	}

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.MakeMove(m)
		total += pf.search(p, depth-1)
		p.UnmakeMove()
	}
	return total
}

func (pf *Perft) tallyLeaf(p *position.Position, m Move) {
	capture := p.PieceAt(m.To()) != PieceNone
	switch m.Type() {
	case EnPassant:
		pf.EnPassantCounter++
		pf.CaptureCounter++
	case Castling:
		pf.CastleCounter++
	case Promotion:
		pf.PromotionCounter++
		if capture {
			pf.CaptureCounter++
		}
	default:
		if capture {
			pf.CaptureCounter++
		}
	}
	p.MakeMove(m)
	if p.InCheck(p.SideToMove()) {
		pf.CheckCounter++
	}
	p.UnmakeMove()
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.CaptureCounter = 0
	pf.EnPassantCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0
	pf.CheckCounter = 0
}

// Report runs Count and prints a human-readable summary in the engine's
// usual locale-formatted style (spec.md's CLI uses the same German
// thousands-separator convention throughout).
func Report(p *position.Position, depth int) *Perft {
	pf := NewPerft()
	out.Printf("Perft to depth %d\n", depth)
	out.Printf("FEN: %s\n", p.ToFEN())
	start := time.Now()
	nodes := pf.Count(p, depth)
	elapsed := time.Since(start)
	out.Printf("Nodes: %d  Time: %s  NPS: %d\n", nodes, elapsed, util.Nps(nodes, elapsed))
	out.Printf("Captures: %d  EnPassant: %d  Castles: %d  Promotions: %d  Checks: %d\n",
		pf.CaptureCounter, pf.EnPassantCounter, pf.CastleCounter, pf.PromotionCounter, pf.CheckCounter)
	return pf
}
