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

package transpositiontable

import (
	"math"

	myLogging "github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
	"github.com/corvidchess/core/internal/util"
)

var log = myLogging.GetLog("transpositiontable")

// MaxSizeMB is the largest table size this engine accepts, matching
// common default budgets for a single search thread.
const MaxSizeMB = 65536

// Table is a fixed-capacity, direct-mapped transposition table indexed
// by the low bits of the position's Zobrist key. Entries are always
// overwritten on Store, even when the incoming entry is shallower than
// the one being replaced: the spec does not define a replacement
// strategy (an Open Question, resolved in DESIGN.md towards the
// simplest correct policy), and always-overwrite keeps lookups and
// stores both O(1) without extra bookkeeping.
type Table struct {
	entries     []Entry
	indexMask   uint64
	Hits        uint64
	Misses      uint64
	Collisions  uint64
	Stores      uint64
}

// New builds a Table sized to the largest power-of-two entry count that
// fits within sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize rebuilds the table for a new megabyte budget, discarding all
// entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}
	if sizeMB < 1 {
		sizeMB = 1
	}
	byteBudget := uint64(sizeMB) * MB
	numEntries := uint64(1) << uint(math.Floor(math.Log2(float64(byteBudget/EntrySize))))
	if numEntries == 0 {
		numEntries = 1
	}
	t.entries = make([]Entry, numEntries)
	t.indexMask = numEntries - 1
	log.Infof("TT resized to %d entries (%d MB requested)", numEntries, sizeMB)
	log.Debugf("%s", util.MemStat())
}

// Clear empties the table without reallocating.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.Hits, t.Misses, t.Collisions, t.Stores = 0, 0, 0, 0
}

func (t *Table) index(key position.Key) uint64 {
	return uint64(key) & t.indexMask
}

// Probe returns the entry stored at key's slot and whether its key
// matches (a true hit, as opposed to a different position that hashed to
// the same slot).
func (t *Table) Probe(key position.Key) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Bound == BoundNone {
		t.Misses++
		return Entry{}, false
	}
	if e.Key != key {
		t.Collisions++
		return Entry{}, false
	}
	t.Hits++
	return e, true
}

// Store writes an entry into key's slot, always overwriting whatever was
// there before.
func (t *Table) Store(key position.Key, depth int, score Value, bound Bound, move Move) {
	t.Stores++
	t.entries[t.index(key)] = Entry{Key: key, Depth: depth, Score: score, Bound: bound, Move: move}
}

// Capacity returns the number of slots in the table.
func (t *Table) Capacity() int {
	return len(t.entries)
}
