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

package movelist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/core/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	ml := New()
	m1 := NewMove(SqE2, SqE4)
	m2 := NewMove(SqD2, SqD4)
	ml.PushBack(m1)
	ml.PushBack(m2)

	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.At(0))
	assert.Equal(t, m2, ml.At(1))
	assert.True(t, ml.Contains(m1))
	assert.False(t, ml.Contains(NewMove(SqG1, SqF3)))
}

func TestMoveToFront(t *testing.T) {
	ml := New()
	a := NewMove(SqE2, SqE4)
	b := NewMove(SqD2, SqD4)
	c := NewMove(SqG1, SqF3)
	ml.PushBack(a)
	ml.PushBack(b)
	ml.PushBack(c)

	ml.MoveToFront(c)
	assert.Equal(t, c, ml.At(0))
	assert.Equal(t, a, ml.At(1))
	assert.Equal(t, b, ml.At(2))
}

func TestMoveToFrontMissingIsNoop(t *testing.T) {
	ml := New()
	a := NewMove(SqE2, SqE4)
	ml.PushBack(a)
	ml.MoveToFront(NewMove(SqA2, SqA4))
	assert.Equal(t, a, ml.At(0))
}

func TestClear(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4))
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestClone(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4))
	clone := ml.Clone()
	clone.PushBack(NewMove(SqD2, SqD4))
	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, 2, clone.Len())
}
