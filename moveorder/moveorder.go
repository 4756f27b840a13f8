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

// Package moveorder rates pseudo-legal/legal moves with a heuristic score
// so search explores the most promising moves first, maximizing
// alpha-beta cutoffs. Scores are stamped directly onto each Move's high
// bits (see types.Move.SetValue) so a plain descending sort on the move
// list also sorts by score.
package moveorder

import (
	. "github.com/chesscore/chesscore/types"

	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
)

// capScale is MVV-LVA's victim-value multiplier: the victim's value
// dominates the attacker's so that "rook takes pawn" always outranks
// "pawn takes rook" regardless of the specific values involved.
const capScale = 10

// pawnAttackPenalty is subtracted from a quiet move's score when its
// destination square is attacked by an enemy pawn, pushing moves into
// an attacked square behind moves that don't risk losing the piece for
// a pawn.
const pawnAttackPenalty = Value(350)

// ttMoveBonus is the sort value stamped on the move that matches the
// transposition table's stored best move for this position, placing it
// first in the list regardless of its own capture/quiet score. This is a
// flat override, not an addition on top of the move's natural score: the
// highest natural score a capture/promotion can reach is 9800 (a pawn
// capturing a queen while promoting to a queen), comfortably below ValueMax, so
// overriding to ValueMax guarantees the tt move sorts strictly ahead of
// every other move without the combined value ever leaving Value's valid
// range -- adding the bonus on top of a large capture score instead could
// push the sum past ValueInf and overflow the 15-bit sort field packed
// into types.Move.
const ttMoveBonus = ValueMax

// losingCapturePenalty is subtracted from the score of a capture that
// static exchange evaluation judges as a net material loss. For captures
// with a small MVV-LVA score this puts them behind the quiet moves:
// "queen takes pawn-defended-by-pawn" scores 100-500 = -400, below a
// quiet move's 0. A losing capture of a more valuable victim (e.g. rook
// takes defended knight, 2500-500) still sorts ahead of quiet moves.
const losingCapturePenalty = Value(500)

// OrderMoves assigns a sort value to every move in list via Move.SetValue
// and sorts the list descending, so list.At(0) is searched first.
//
// Scoring:
//   - Captures: MVV-LVA, 10*value(captured) - value(mover).
//   - Promotions: add value(promoted kind) on top of any capture score.
//   - Quiet moves: subtract pawnAttackPenalty if the destination is
//     attacked by an enemy pawn.
//   - ttMove (optional, pass MoveNone to skip): its score is overridden
//     to ttMoveBonus, replacing rather than stacking on its ordinary
//     score, so a remembered best move is tried first even before
//     re-verifying it still looks good tactically.
func OrderMoves(pos *position.Position, list *moveslice.MoveSlice, ttMove Move) {
	us := pos.NextPlayer()
	them := us.Flip()

	for i := 0; i < list.Len(); i++ {
		m := list.At(i).MoveOf()
		from, to := m.From(), m.To()
		mover := pos.Board(from).TypeOf()
		captured := pos.Board(to)

		var score Value

		isCapture := captured != PieceNone || m.MoveType() == EnPassant
		if isCapture {
			capturedType := captured.TypeOf()
			if m.MoveType() == EnPassant {
				capturedType = Pawn
			}
			score = Value(capScale)*Value(capturedType.ValueOf()) - Value(mover.ValueOf())
			if m.MoveType() != EnPassant && movegen.SEE(pos, m) < 0 {
				score -= losingCapturePenalty
			}
		} else if GetPawnAttacks(them, to)&pos.Pieces(them, Pawn) != BbZero {
			score -= pawnAttackPenalty
		}

		if m.MoveType() == Promotion {
			score += Value(m.PromotionType().ValueOf())
		}

		if ttMove != MoveNone && m == ttMove.MoveOf() {
			score = ttMoveBonus
		}

		list.Set(i, m.SetValue(score))
	}

	list.Sort()
}
