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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboard_PushPopSquare(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboard_PopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 1, BbOne.PopCount())
}

func TestBitboard_MoreThanOne(t *testing.T) {
	assert.False(t, BbZero.MoreThanOne())
	assert.False(t, SqA1.Bitboard().MoreThanOne())
	assert.True(t, (SqA1.Bitboard() | SqH8.Bitboard()).MoreThanOne())
}

func TestBitboard_LsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
	b := SqC3.Bitboard() | SqF6.Bitboard()
	assert.Equal(t, SqC3, b.Lsb())
	assert.Equal(t, SqF6, b.Msb())
}

func TestBitboard_PopLsb(t *testing.T) {
	b := SqB2.Bitboard() | SqG7.Bitboard()
	first := b.PopLsb()
	assert.Equal(t, SqB2, first)
	assert.True(t, b.Has(SqG7))
	assert.False(t, b.Has(SqB2))
	second := b.PopLsb()
	assert.Equal(t, SqG7, second)
	assert.Equal(t, BbZero, b)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestShiftBitboard(t *testing.T) {
	center := SqE4.Bitboard()
	assert.Equal(t, SqE5.Bitboard(), ShiftBitboard(center, North))
	assert.Equal(t, SqE3.Bitboard(), ShiftBitboard(center, South))
	assert.Equal(t, SqF4.Bitboard(), ShiftBitboard(center, East))
	assert.Equal(t, SqD4.Bitboard(), ShiftBitboard(center, West))

	// edge wraparound must vanish rather than wrap to the other file/rank
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bitboard(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bitboard(), West))
	assert.Equal(t, BbZero, ShiftBitboard(SqE8.Bitboard(), North))
	assert.Equal(t, BbZero, ShiftBitboard(SqE1.Bitboard(), South))
}

func TestFileRankDistance(t *testing.T) {
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 0, FileDistance(FileD, FileD))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestBitboard_StringBoard(t *testing.T) {
	s := SqA1.Bitboard().StringBoard()
	assert.Contains(t, s, "+---+---+---+---+---+---+---+---+")
}
