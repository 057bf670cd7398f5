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
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/core/internal/types"
)

// ParseFEN builds a Position from Forsyth-Edwards Notation. Unlike many
// casual FEN readers this one is strict: any malformed field is reported
// as an error rather than silently producing a best-effort position
// (spec.md Open Question: FEN error handling). The halfmove clock and
// fullmove number are the exception: in-range-but-oversized values are
// clamped to [0, MaxHalfmoveClock] and [1, MaxFullmoveNumber] rather than
// rejected (spec.md §4.2).
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: FEN needs at least 4 fields, got %d: %q", len(fields), fen)
	}
	// Halfmove clock and fullmove number are traditionally optional.
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	p := newEmpty()

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, fields[1]); err != nil {
		return nil, err
	}
	if err := parseCastling(p, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, fields[3]); err != nil {
		return nil, err
	}
	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("position: invalid halfmove clock %q", fields[4])
	}
	if halfmove > MaxHalfmoveClock {
		halfmove = MaxHalfmoveClock
	}
	p.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("position: invalid fullmove number %q", fields[5])
	}
	if fullmove > MaxFullmoveNumber {
		fullmove = MaxFullmoveNumber
	}
	p.fullmoveNumber = fullmove

	if p.kingSquare[White] == SqNone || p.kingSquare[Black] == SqNone {
		return nil, fmt.Errorf("position: FEN missing a king: %q", fen)
	}

	p.key = computeKey(p)
	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: piece placement needs 8 ranks, got %d: %q", len(ranks), placement)
	}
	for ri, rankStr := range ranks {
		r := Rank(ri)
		f := File(0)
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f >= FileLength {
				return fmt.Errorf("position: rank %d overflows the board: %q", ri, rankStr)
			}
			pc := PieceFromChar(ch)
			if pc == PieceNone {
				return fmt.Errorf("position: invalid piece char %q in rank %q", ch, rankStr)
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileLength {
			return fmt.Errorf("position: rank %d does not sum to 8 files: %q", ri, rankStr)
		}
	}
	return nil
}

func parseSideToMove(p *Position, s string) error {
	switch s {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: invalid side to move %q", s)
	}
	return nil
}

func parseCastling(p *Position, s string) error {
	if s == "-" {
		p.castlingRights = CastlingNone
		return nil
	}
	var rights CastlingRights
	for _, ch := range []byte(s) {
		switch ch {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return fmt.Errorf("position: invalid castling char %q in %q", ch, s)
		}
	}
	p.castlingRights = rights
	return nil
}

func parseEnPassant(p *Position, s string) error {
	if s == "-" {
		p.enPassantSquare = SqNone
		return nil
	}
	sq := MakeSquare(s)
	if sq == SqNone {
		return fmt.Errorf("position: invalid en passant square %q", s)
	}
	p.enPassantSquare = sq
	return nil
}

// ToFEN renders p back to Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		empty := 0
		for f := File(0); f < FileLength; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	if p.enPassantSquare == SqNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.enPassantSquare.String())
	}
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
