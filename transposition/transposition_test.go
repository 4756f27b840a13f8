/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package transposition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

func TestTable_ProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	assert.Nil(t, tt.Probe(position.Key(12345)))
}

func TestTable_StoreThenProbeHits(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(0xDEADBEEF)
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Store(key, m, Value(123), 4, BoundExact)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
	assert.Equal(t, Value(123), e.Move.ValueOf())
	assert.Equal(t, m.MoveOf(), e.Move.MoveOf())
}

func TestTable_ShallowerStoreDoesNotReplaceOnCollision(t *testing.T) {
	tt := NewTable(1)
	// Force a collision: same masked index, different key.
	key1 := position.Key(1)
	key2 := position.Key(1 + (tt.mask + 1))
	m := NewMove(SqA2, SqA4, Normal, PtNone)

	tt.Store(key1, m, Value(50), 6, BoundExact)
	tt.Store(key2, m, Value(10), 2, BoundExact)

	e := tt.Probe(key1)
	assert.NotNil(t, e, "deeper entry must survive a shallower collider")
	assert.Equal(t, key1, e.Key)
}

func TestTable_ResizeClampsToMax(t *testing.T) {
	tt := NewTable(MaxSizeMB + 1)
	assert.LessOrEqual(t, len(tt.data)*entrySize, MaxSizeMB*int(MB))
}

func TestTable_Hashfull(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	// 1 MB holds 65536 entries; 100 distinct slots is just over 1 permille
	for k := 1; k <= 100; k++ {
		tt.Store(position.Key(k), NewMove(SqD2, SqD4, Normal, PtNone), Value(0), 1, BoundExact)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
