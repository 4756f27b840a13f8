/*
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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

func TestSEE_FreeCapture(t *testing.T) {
	// White rook on a1 takes an undefended black pawn on a5.
	p, err := position.NewFen("4k3/8/8/p7/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(SqA1, SqA5, Normal, PtNone)
	assert.EqualValues(t, 100, SEE(p, m))
}

func TestSEE_LosingCapture(t *testing.T) {
	// White queen on e4 takes a black pawn on d5 defended by a black pawn
	// on c6: the queen is lost for a pawn, a clearly losing exchange.
	p, err := position.NewFen("1k6/8/2p5/3p4/4Q3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(SqE4, SqD5, Normal, PtNone)
	assert.Less(t, int(SEE(p, m)), 0)
}

func TestSEE_EnPassantIsAlwaysGood(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	m := NewMove(SqE5, SqD6, EnPassant, PtNone)
	assert.EqualValues(t, 100, SEE(p, m))
}

func TestSEE_EqualTrade(t *testing.T) {
	// Rook takes a rook defended by the pawn on b6, which recaptures:
	// a rook for a rook, net zero for the capturing side.
	p, err := position.NewFen("4k3/8/1p6/r7/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(SqA1, SqA5, Normal, PtNone)
	assert.EqualValues(t, 0, SEE(p, m))
}
