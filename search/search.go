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

// Package search implements fail-hard negamax alpha-beta with quiescence,
// principal-variation recovery, and iterative deepening on top of the
// movegen/moveorder/eval/transposition packages.
package search

import (
	"github.com/chesscore/chesscore/eval"
	"github.com/chesscore/chesscore/logging"
	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveorder"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	"github.com/chesscore/chesscore/transposition"
	. "github.com/chesscore/chesscore/types"
)

var log = logging.GetSearchLog()

// MaxPV bounds principal-variation length, well above any depth this
// engine will realistically reach, matching spec's "~246" ceiling.
const MaxPV = 246

// Result is one completed iterative-deepening iteration: the best move
// found at the root, its score from the side-to-move's perspective, the
// principal variation from the root, and node count.
type Result struct {
	BestMove Move
	Score    Value
	PV       moveslice.MoveSlice
	Nodes    uint64
	Depth    int
}

// Search holds the state shared across one search call: the transposition
// table and the evaluator to call at the leaves. A Search is not safe for
// concurrent use; ParallelRoot gives each worker its own Search over its
// own cloned Position instead of sharing one.
type Search struct {
	tt      *transposition.Table
	eval    eval.Evaluator
	nodes   uint64
	pv      [MaxPV + 1]moveslice.MoveSlice
	history *position.History
}

// New returns a Search using tt for move ordering/caching and ev to score
// leaf positions. Pass a fresh, sufficiently large tt per long-lived engine
// instance; pass eval.NewMaterial() for the bundled evaluator.
func New(tt *transposition.Table, ev eval.Evaluator) *Search {
	s := &Search{tt: tt, eval: ev, history: position.NewHistory()}
	for i := range s.pv {
		s.pv[i] = moveslice.New(MaxPV)
	}
	return s
}

// SetHistory replaces the position keys this search treats as already
// played -- the moves actually made so far in the game -- so a search line
// that transposes back into one of them is recognized as a repetition
// instead of being re-explored. Pass a fresh position.NewHistory() (the
// New constructor's default) when no game history exists yet, e.g. at the
// start of a new game.
func (s *Search) SetHistory(h *position.History) {
	s.history = h
}

// IterativeDeepening searches pos from depth 1 up to maxDepth, returning
// the last completed iteration's Result. Each iteration reuses the
// previous iteration's best move first via move ordering's ttMove bonus
// (the table entry Store left behind), which is the classic win of
// iterative deepening: a shallow pass primes move order for the next.
func (s *Search) IterativeDeepening(pos *position.Position, maxDepth int) Result {
	var last Result
	for d := 1; d <= maxDepth; d++ {
		score := s.searchRoot(pos, d)
		// no legal root move (mate or stalemate) leaves the PV empty
		best := MoveNone
		if s.pv[0].Len() > 0 {
			best = s.pv[0].At(0).MoveOf()
		}
		last = Result{
			BestMove: best,
			Score:    score,
			PV:       s.pv[0],
			Nodes:    s.nodes,
			Depth:    d,
		}
		log.Infof("depth %d score %s nodes %d pv %s", d, score, s.nodes, last.PV.StringUci())
	}
	return last
}

// searchRoot runs one full-depth negamax pass and leaves the best line in
// s.pv[0].
func (s *Search) searchRoot(pos *position.Position, depth int) Value {
	return s.negamax(pos, depth, 0, -ValueInf, ValueInf)
}

// negamax implements spec.md's alpha_beta pseudocode: fail-hard cutoffs,
// mate/stalemate at the leaves, PV recorded by prepending the move that
// raised alpha to the child's already-recorded PV.
func (s *Search) negamax(pos *position.Position, depth, ply int, alpha, beta Value) Value {
	s.pv[ply].Clear()

	if ply > 0 && s.history.IsRepetition(pos.ZobristKey(), pos.State().Rule50) {
		return ValueDraw
	}

	var moves moveslice.MoveSlice = moveslice.New(moveslice.MaxMoves)
	movegen.GenerateLegal(pos, &moves)

	if moves.Len() == 0 {
		if pos.State().Checkers != BbZero {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}

	if depth == 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	ttMove := MoveNone
	if entry := s.tt.Probe(pos.ZobristKey()); entry != nil {
		ttMove = entry.Move
	}
	moveorder.OrderMoves(pos, &moves, ttMove)

	bound := BoundUpper
	var best Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).MoveOf()
		pos.DoMove(m)
		s.nodes++
		s.history.Push(pos.ZobristKey())
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		s.history.Pop()
		pos.UndoMove(m)

		if score >= beta {
			s.tt.Store(pos.ZobristKey(), m, beta, int8(depth), BoundLower)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
			bound = BoundExact
			savePV(&s.pv[ply], m, &s.pv[ply+1])
		}
	}

	s.tt.Store(pos.ZobristKey(), best, alpha, int8(depth), bound)
	return alpha
}

// quiescence resolves tactical sequences (captures, and evasions while in
// check) before handing a score to the caller, so the static evaluator is
// never asked to judge a position with a hanging piece mid-exchange.
func (s *Search) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	s.nodes++

	inCheck := pos.State().Checkers != BbZero
	standPat := s.eval.Evaluate(pos)
	if !inCheck {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves moveslice.MoveSlice = moveslice.New(moveslice.MaxMoves)
	us := pos.NextPlayer()
	if inCheck {
		movegen.GenerateFor(pos, &moves, us, movegen.Evasions)
		king := pos.King(us)
		pinned := pos.State().Blockers[us]
		moves.Filter(func(i int) bool {
			m := moves.At(i)
			if m.MoveType() == EnPassant || m.From() == king || pinned.Has(m.From()) {
				return movegen.IsLegal(pos, m)
			}
			return true
		})
		if moves.Len() == 0 {
			return -ValueCheckMate + Value(ply)
		}
	} else {
		movegen.GenerateFor(pos, &moves, us, movegen.Captures)
		moves.Filter(func(i int) bool {
			m := moves.At(i)
			if !movegen.IsLegal(pos, m) {
				return false
			}
			// Losing captures can never raise alpha once stand-pat already
			// has (every capture's gain is bounded above by what SEE says
			// it nets), so pruning them here keeps quiescence's node count
			// from blowing up on dead-end tactical sequences.
			return m.MoveType() == EnPassant || movegen.SEE(pos, m) >= 0
		})
	}

	moveorder.OrderMoves(pos, &moves, MoveNone)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).MoveOf()
		pos.DoMove(m)
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UndoMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// savePV records move as the best move at ply, followed by child's PV,
// into dest -- mirroring FrankyGo's savePV helper.
func savePV(dest *moveslice.MoveSlice, move Move, child *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	for i := 0; i < child.Len(); i++ {
		dest.PushBack(child.At(i))
	}
}
