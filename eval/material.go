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

package eval

import (
	"github.com/chesscore/chesscore/logging"
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

var log = logging.GetLog("eval")

// Material is the bundled Evaluator: the material balance of the position,
// computed fresh from the piece bitboards on every call rather than kept
// as incremental position state, so it is a pure function of position as
// required of the default evaluator.
type Material struct{}

// NewMaterial returns the bundled material-only Evaluator.
func NewMaterial() *Material {
	return &Material{}
}

// Evaluate returns the material balance from the perspective of the side
// to move: sum of this side's piece values minus the opponent's.
func (m *Material) Evaluate(pos *position.Position) Value {
	us := pos.NextPlayer()
	them := us.Flip()
	score := balance(pos, us) - balance(pos, them)
	log.Debugf("material eval for %s to move: %d", us, score)
	return score
}

func balance(pos *position.Position, c Color) Value {
	var v Value
	for pt := Pawn; pt <= Queen; pt++ {
		v += Value(pos.Pieces(c, pt).PopCount() * pt.ValueOf())
	}
	return v
}
