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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

func TestOrderMoves_BestCaptureFirst(t *testing.T) {
	// White queen on d4 can take either a rook on a4 (same rank) or a
	// pawn on d6 (same file); MVV-LVA should place "queen takes rook"
	// ahead of "queen takes pawn".
	p, err := position.NewFen("4k3/8/3p4/8/r2Q4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var ml moveslice.MoveSlice = moveslice.New(32)
	movegen.GenerateLegal(p, &ml)
	OrderMoves(p, &ml, MoveNone)

	best := ml.At(0)
	assert.Equal(t, SqA4, best.To(), "capturing the rook should be ordered first")
}

func TestOrderMoves_QuietIntoPawnAttackIsPenalized(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/8/3p4/8/8/3NK3 w - - 0 1")
	assert.NoError(t, err)
	var ml moveslice.MoveSlice = moveslice.New(32)
	movegen.GenerateLegal(p, &ml)
	OrderMoves(p, &ml, MoveNone)

	var intoAttack, safe Move
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.MoveOf().To() == SqC3 {
			intoAttack = m
		}
		if m.MoveOf().To() == SqB2 {
			safe = m
		}
	}
	assert.NotEqual(t, MoveNone, intoAttack)
	assert.NotEqual(t, MoveNone, safe)
	assert.Less(t, intoAttack.ValueOf(), safe.ValueOf())
}

func TestOrderMoves_TTMoveFirst(t *testing.T) {
	p := position.New()
	var ml moveslice.MoveSlice = moveslice.New(32)
	movegen.GenerateLegal(p, &ml)

	var pick Move
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).To() == SqA3 {
			pick = ml.At(i).MoveOf()
		}
	}
	assert.NotEqual(t, MoveNone, pick)

	OrderMoves(p, &ml, pick)
	assert.Equal(t, pick, ml.At(0).MoveOf())
}

func TestOrderMoves_TTMoveThatIsWinningPromotionCaptureSortsFirstWithoutOverflow(t *testing.T) {
	// b7xc8=Q is MVV-LVA's highest-scoring move in this position (a queen
	// captured by a pawn that also promotes): 10*900 - 100 + 900 = 9800,
	// just below ValueMax. Passing it as the remembered tt move exercises
	// the case where stacking ttMoveBonus on top of that natural score
	// (rather than overriding it) would push the combined value past
	// ValueInf and overflow Move's 15-bit packed sort field.
	p, err := position.NewFen("2q1k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var ml moveslice.MoveSlice = moveslice.New(32)
	movegen.GenerateLegal(p, &ml)

	var ttMove Move
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i).MoveOf()
		if m.To() == SqC8 && m.MoveType() == Promotion && m.PromotionType() == Queen {
			ttMove = m
		}
	}
	assert.NotEqual(t, MoveNone, ttMove)

	OrderMoves(p, &ml, ttMove)

	best := ml.At(0)
	assert.Equal(t, ttMove, best.MoveOf(), "tt move should sort first")
	assert.Equal(t, ValueMax, best.ValueOf(), "tt move's stamped sort value must round-trip exactly, not overflow")
}
