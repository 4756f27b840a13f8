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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	. "github.com/chesscore/chesscore/types"
)

func TestMoveSlice_PushPop(t *testing.T) {
	ml := New(10)
	m1 := NewMove(SqE2, SqE4, Normal, PtNone)
	m2 := NewMove(SqD2, SqD4, Normal, PtNone)
	ml.PushBack(m1)
	ml.PushBack(m2)
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m2, ml.PopBack())
	assert.Equal(t, m1, ml.PopBack())
}

func TestMoveSlice_Clear(t *testing.T) {
	ml := New(10)
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestMoveSlice_Filter(t *testing.T) {
	ml := New(10)
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	ml.PushBack(NewMove(SqA2, SqA4, Normal, PtNone))
	ml.Filter(func(i int) bool { return ml.At(i).From() == SqE2 })
	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, SqE2, ml.At(0).From())
}

func TestMoveSlice_Sort(t *testing.T) {
	ml := New(10)
	low := NewMove(SqE2, SqE4, Normal, PtNone).SetValue(10)
	high := NewMove(SqD2, SqD4, Normal, PtNone).SetValue(100)
	ml.PushBack(low)
	ml.PushBack(high)
	ml.Sort()
	assert.Equal(t, Value(100), ml.At(0).ValueOf())
	assert.Equal(t, Value(10), ml.At(1).ValueOf())
}
