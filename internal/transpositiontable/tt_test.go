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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/core/internal/position"
	. "github.com/corvidchess/core/internal/types"
)

func TestNewSizesToPowerOfTwo(t *testing.T) {
	tt := New(1)
	assert.Greater(t, tt.Capacity(), 0)
	// capacity must be a power of two
	assert.Equal(t, tt.Capacity()&(tt.Capacity()-1), 0)
}

func TestStoreThenProbeHits(t *testing.T) {
	tt := New(1)
	p := position.New()
	key := p.Key()
	move := NewMove(SqE2, SqE4)

	tt.Store(key, 4, Value(123), Exact, move)
	entry, found := tt.Probe(key)
	assert.True(t, found)
	assert.Equal(t, move, entry.Move)
	assert.Equal(t, Value(123), entry.Score)
	assert.Equal(t, Exact, entry.Bound)
	assert.Equal(t, uint64(1), tt.Hits)
}

func TestProbeMissOnEmptySlot(t *testing.T) {
	tt := New(1)
	_, found := tt.Probe(position.Key(0xdeadbeef))
	assert.False(t, found)
	assert.Equal(t, uint64(1), tt.Misses)
}

func TestStoreAlwaysOverwrites(t *testing.T) {
	tt := New(1)
	// Store the same key twice with different depths, bounds and scores;
	// the probe must return the second entry.
	key := position.Key(42)
	tt.Store(key, 2, Value(10), LowerBound, MoveNone)
	tt.Store(key, 8, Value(20), Exact, MoveNone)

	entry, found := tt.Probe(key)
	assert.True(t, found)
	assert.Equal(t, 8, entry.Depth)
	assert.Equal(t, Value(20), entry.Score)
	assert.Equal(t, Exact, entry.Bound)
}

func TestProbeDetectsCollisionAtSameSlot(t *testing.T) {
	tt := New(1)
	capacity := uint64(tt.Capacity())
	keyA := position.Key(1)
	keyB := position.Key(1 + capacity) // same low bits, different key

	tt.Store(keyA, 5, Value(1), Exact, MoveNone)
	_, found := tt.Probe(keyB)
	assert.False(t, found)
	assert.Equal(t, uint64(1), tt.Collisions)
}

func TestClearEmptiesTableAndCounters(t *testing.T) {
	tt := New(1)
	key := position.Key(7)
	tt.Store(key, 1, Value(1), Exact, MoveNone)
	tt.Probe(key)

	tt.Clear()
	_, found := tt.Probe(key)
	assert.False(t, found)
	assert.Equal(t, uint64(1), tt.Misses)
	assert.Equal(t, uint64(0), tt.Hits)
	assert.Equal(t, uint64(0), tt.Stores)
}

func TestResizeClampsBelowMinimum(t *testing.T) {
	tt := New(0)
	assert.Greater(t, tt.Capacity(), 0)
}
