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

// Package movegen enumerates pseudo-legal and legal moves for a position.
// Generation is parameterized by a GenType so callers (search's main
// search, quiescence, and perft) each ask for exactly the slice of moves
// they need instead of filtering a single "all moves" list afterwards.
package movegen

import (
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

// GenType selects which subset of pseudo-legal moves GenerateFor produces.
type GenType int

const (
	// Captures generates moves landing on an enemy-occupied square,
	// including capture promotions and en-passant.
	Captures GenType = iota
	// Evasions generates moves while the side to move is in check: king
	// moves plus, if exactly one checker, moves that land on a square
	// between king and checker (inclusive of the checker itself).
	Evasions
	// NonEvasions generates every pseudo-legal move available when not
	// in check: target any square not occupied by one of our own pieces.
	NonEvasions
	// Quiet generates non-capturing moves: target empty squares only.
	Quiet
	// QuietChecks generates non-capturing moves that give check, either
	// directly (destination is one of the moved piece kind's check
	// squares) or by discovery (the mover is a discoverer and moves off
	// the line to the enemy king).
	QuietChecks
)

// GenerateLegal clears list and fills it with every legal move available
// to the side to move: Evasions if in check, NonEvasions otherwise,
// filtered by IsLegal for the subset of moves that can possibly expose
// the king (pinned-piece moves, king moves, en-passant).
func GenerateLegal(pos *position.Position, list *moveslice.MoveSlice) {
	list.Clear()
	us := pos.NextPlayer()
	st := pos.State()

	gt := NonEvasions
	if st.Checkers != BbZero {
		gt = Evasions
	}
	GenerateFor(pos, list, us, gt)

	king := pos.King(us)
	pinned := st.Blockers[us]
	list.Filter(func(i int) bool {
		m := list.At(i)
		if m.MoveType() == EnPassant || m.From() == king || pinned.Has(m.From()) {
			return IsLegal(pos, m)
		}
		return true
	})
}

// GenerateFor appends pseudo-legal moves of gt's kind for color us into
// list. Callers needing only a subset (e.g. quiescence asking for
// Captures) skip the cost of generating and then discarding quiet moves.
func GenerateFor(pos *position.Position, list *moveslice.MoveSlice, us Color, gt GenType) {
	st := pos.State()

	var target Bitboard
	kingOnly := false

	switch gt {
	case Captures:
		target = pos.Colors(us.Flip())
	case Evasions:
		if st.Checkers.MoreThanOne() {
			kingOnly = true
		} else {
			checker := st.Checkers.Lsb()
			target = Between(pos.King(us), checker) | st.Checkers
		}
	case NonEvasions:
		target = ^pos.Colors(us)
	case Quiet, QuietChecks:
		target = ^pos.Occupied()
	}

	if !kingOnly {
		generatePawnMoves(pos, list, us, gt, target)
		for pt := Knight; pt <= Queen; pt++ {
			generatePieceMoves(pos, list, us, pt, target, gt)
		}
	}
	generateKingMoves(pos, list, us, gt)

	if gt == NonEvasions || gt == Quiet {
		generateCastling(pos, list, us)
	}
}

func pawnPushDir(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// generatePawnMoves covers single/double pushes, captures, promotions
// (one entry per promotion kind) and en-passant. Every candidate is
// intersected with target before being emitted, which is what excludes
// captures from Quiet/QuietChecks (target there is the empty-square
// mask, disjoint from any capture destination) without a special case.
func generatePawnMoves(pos *position.Position, list *moveslice.MoveSlice, us Color, gt GenType, target Bitboard) {
	them := us.Flip()
	push := pawnPushDir(us)
	pawns := pos.Pieces(us, Pawn)
	promoRank := us.PromotionRank().Bb()
	empty := ^pos.Occupied()

	addPromotions := func(from, to Square, gtOk bool) {
		if !gtOk {
			return
		}
		for _, pt := range [4]PieceType{Queen, Knight, Rook, Bishop} {
			m := NewMove(from, to, Promotion, pt)
			if moveMatchesGenType(pos, m, gt) {
				list.PushBack(m)
			}
		}
	}

	// pushes
	single := ShiftBitboard(pawns, push) & empty
	double := ShiftBitboard(single&Rank3.Relative(us).Bb(), push) & empty

	promos := single & promoRank & target
	for b := promos; b != BbZero; {
		to := b.PopLsb()
		addPromotions(to.To(-push), to, true)
	}
	quietSingle := single &^ promoRank & target
	for b := quietSingle; b != BbZero; {
		to := b.PopLsb()
		m := NewMove(to.To(-push), to, Normal, PtNone)
		if moveMatchesGenType(pos, m, gt) {
			list.PushBack(m)
		}
	}
	doubles := double & target
	for b := doubles; b != BbZero; {
		to := b.PopLsb()
		from := to.To(-push).To(-push)
		m := NewMove(from, to, Normal, PtNone)
		if moveMatchesGenType(pos, m, gt) {
			list.PushBack(m)
		}
	}

	// captures
	for _, dir := range [2]Direction{West, East} {
		capDir := push + dir
		caps := ShiftBitboard(pawns, capDir) & pos.Colors(them) & target
		promos := caps & promoRank
		for b := promos; b != BbZero; {
			to := b.PopLsb()
			addPromotions(to.To(-capDir), to, true)
		}
		plain := caps &^ promoRank
		for b := plain; b != BbZero; {
			to := b.PopLsb()
			list.PushBack(NewMove(to.To(-capDir), to, Normal, PtNone))
		}
	}

	// en passant: never part of Quiet/QuietChecks, since it is a capture
	// even though its destination square is empty.
	if gt != Quiet && gt != QuietChecks {
		ep := pos.State().EpSquare
		if ep != SqNone {
			for _, dir := range [2]Direction{West, East} {
				from := ep.To(-push - dir)
				if from.IsValid() && pawns.Has(from) {
					list.PushBack(NewMove(from, ep, EnPassant, PtNone))
				}
			}
		}
	}
}

func generatePieceMoves(pos *position.Position, list *moveslice.MoveSlice, us Color, pt PieceType, target Bitboard, gt GenType) {
	pieces := pos.Pieces(us, pt)
	occ := pos.Occupied()
	for b := pieces; b != BbZero; {
		from := b.PopLsb()
		attacks := GetAttacksBb(pt, from, occ) & target
		for a := attacks; a != BbZero; {
			to := a.PopLsb()
			m := NewMove(from, to, Normal, PtNone)
			if moveMatchesGenType(pos, m, gt) {
				list.PushBack(m)
			}
		}
	}
}

func generateKingMoves(pos *position.Position, list *moveslice.MoveSlice, us Color, gt GenType) {
	from := pos.King(us)
	attacks := GetPseudoAttacks(King, from)

	var target Bitboard
	switch gt {
	case Captures:
		target = pos.Colors(us.Flip())
	case Quiet, QuietChecks:
		target = ^pos.Occupied()
	default: // Evasions (including the double-check, king-only case), NonEvasions
		target = ^pos.Colors(us)
	}

	attacks &= target
	for a := attacks; a != BbZero; {
		to := a.PopLsb()
		m := NewMove(from, to, Normal, PtNone)
		if moveMatchesGenType(pos, m, gt) {
			list.PushBack(m)
		}
	}
}

func generateCastling(pos *position.Position, list *moveslice.MoveSlice, us Color) {
	cr := pos.State().CastlingRights
	occ := pos.Occupied()
	if us == White {
		if cr.Has(CastlingWhiteOO) && Between(SqE1, SqH1)&occ == BbZero {
			list.PushBack(NewMove(SqE1, SqG1, Castle, PtNone))
		}
		if cr.Has(CastlingWhiteOOO) && Between(SqE1, SqA1)&occ == BbZero {
			list.PushBack(NewMove(SqE1, SqC1, Castle, PtNone))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Between(SqE8, SqH8)&occ == BbZero {
			list.PushBack(NewMove(SqE8, SqG8, Castle, PtNone))
		}
		if cr.Has(CastlingBlackOOO) && Between(SqE8, SqA8)&occ == BbZero {
			list.PushBack(NewMove(SqE8, SqC8, Castle, PtNone))
		}
	}
}

// moveMatchesGenType applies the QuietChecks direct/discovered-check
// filter; every other GenType has already restricted the target mask
// enough that the move qualifies by construction.
func moveMatchesGenType(pos *position.Position, m Move, gt GenType) bool {
	if gt != QuietChecks {
		return true
	}
	return pos.GivesCheck(m)
}

// IsLegal reports whether a pseudo-legal move m leaves the moving side's
// own king safe. Only called for moves GenerateLegal flags as possibly
// unsafe: en-passant, king moves, and moves by a pinned piece.
func IsLegal(pos *position.Position, m Move) bool {
	us := pos.NextPlayer()
	them := us.Flip()
	king := pos.King(us)
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case EnPassant:
		capSq := to.To(-pawnPushDir(us))
		occ := (pos.Occupied() &^ from.Bitboard() &^ capSq.Bitboard()) | to.Bitboard()
		rooksQueens := pos.Pieces(them, Rook) | pos.Pieces(them, Queen)
		bishopsQueens := pos.Pieces(them, Bishop) | pos.Pieces(them, Queen)
		if GetAttacksBb(Rook, king, occ)&rooksQueens != BbZero {
			return false
		}
		if GetAttacksBb(Bishop, king, occ)&bishopsQueens != BbZero {
			return false
		}
		return true
	case Castle:
		path := Between(from, to) | to.Bitboard()
		for b := path; b != BbZero; {
			sq := b.PopLsb()
			if pos.IsAttacked(sq, them) {
				return false
			}
		}
		return !pos.IsAttacked(from, them)
	}

	if from == king {
		occ := pos.Occupied() &^ from.Bitboard()
		return attacksToWithOccupancy(pos, to, occ, us)&pos.Colors(them) == BbZero
	}

	if !pos.State().Blockers[us].Has(from) {
		return true
	}
	return Line(from, king).Has(to)
}

// attacksToWithOccupancy recomputes attacks on sq using an alternate
// occupancy bitboard, needed for king-move legality: the king's own
// square must be removed from the board before testing slider attacks,
// otherwise the king would appear to block its own escape square.
func attacksToWithOccupancy(pos *position.Position, sq Square, occ Bitboard, us Color) Bitboard {
	them := us.Flip()
	attackers := GetPawnAttacks(us, sq) & pos.Pieces(them, Pawn)
	attackers |= GetPseudoAttacks(Knight, sq) & pos.PiecesByType(Knight)
	attackers |= GetPseudoAttacks(King, sq) & pos.PiecesByType(King)
	attackers |= GetAttacksBb(Bishop, sq, occ) & (pos.PiecesByType(Bishop) | pos.PiecesByType(Queen))
	attackers |= GetAttacksBb(Rook, sq, occ) & (pos.PiecesByType(Rook) | pos.PiecesByType(Queen))
	return attackers
}
