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
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

// maxSeeDepth bounds the capture-recapture chain SEE walks: at most every
// piece on the board could pile onto one square.
const maxSeeDepth = 32

// SEE runs static exchange evaluation on the capture (or promotion) move m:
// it replays the full capture-recapture sequence on the destination square,
// always answering with the least valuable attacker available, and returns
// the net material gain for the side making m from the side-to-move's
// perspective. A negative result means the capture loses material even
// after every recapture is accounted for.
//
// En-passant is treated as an unconditionally good capture (its target
// square, once vacated, attracts no further attackers worth chasing and the
// move preceding it is never itself a capture), matching the teacher's own
// shortcut.
func SEE(pos *position.Position, m Move) Value {
	if m.MoveType() == EnPassant {
		return 100
	}

	var gain [maxSeeDepth]Value
	ply := 0

	from, to := m.From(), m.To()
	mover := pos.Board(from).TypeOf()
	toMove := pos.NextPlayer()

	occ := pos.Occupied()
	attackers := pos.AttacksToOcc(to, occ)

	gain[ply] = Value(pos.Board(to).TypeOf().ValueOf())
	if m.MoveType() == Promotion {
		// the pawn turns into the promoted piece, which is what a
		// recapture then takes off the destination square
		gain[ply] += Value(m.PromotionType().ValueOf()) - Value(Pawn.ValueOf())
		mover = m.PromotionType()
	}

	for {
		ply++
		toMove = toMove.Flip()

		gain[ply] = Value(mover.ValueOf()) - gain[ply-1]

		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		attackers.PopSquare(from)
		occ.PopSquare(from)
		attackers |= revealedAttackers(pos, to, occ)

		from = leastValuableAttacker(pos, attackers, toMove)
		if from == SqNone {
			break
		}
		mover = pos.Board(from).TypeOf()

		if ply+1 >= maxSeeDepth {
			break
		}
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}
	return gain[0]
}

// revealedAttackers re-derives slider attacks on sq through the shrunk
// occupancy occ -- the only attacks that change as pieces are peeled off
// one by one, since leaper attackers were already captured whole into the
// initial attacker set.
func revealedAttackers(pos *position.Position, sq Square, occ Bitboard) Bitboard {
	bishops := GetAttacksBb(Bishop, sq, occ) & (pos.PiecesByType(Bishop) | pos.PiecesByType(Queen))
	rooks := GetAttacksBb(Rook, sq, occ) & (pos.PiecesByType(Rook) | pos.PiecesByType(Queen))
	return (bishops | rooks) & occ
}

// leastValuableAttacker picks the cheapest piece of color c in attackers,
// breaking ties (same kind, several squares) by least-significant-bit
// order, matching generation's own deterministic square ordering.
func leastValuableAttacker(pos *position.Position, attackers Bitboard, c Color) Square {
	for _, pt := range [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if b := attackers & pos.Pieces(c, pt); b != BbZero {
			return b.Lsb()
		}
	}
	return SqNone
}

func max(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}
