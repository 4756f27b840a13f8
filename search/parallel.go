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

package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chesscore/chesscore/eval"
	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	"github.com/chesscore/chesscore/transposition"
	. "github.com/chesscore/chesscore/types"
)

// ParallelRoot splits the root move list across goroutines, one per legal
// root move, each searching its own cloned Position with its own Search
// instance (and so its own transposition table -- tables are not safe for
// concurrent writers). This is the "parallel-search harness" §5 explicitly
// allows on top of the otherwise single-threaded core: do_move/undo_move
// and search still form a strictly sequential LIFO protocol within each
// goroutine's own cloned subtree.
func ParallelRoot(pos *position.Position, maxDepth int, ttSizeMBPerWorker int, ev eval.Evaluator) (Result, error) {
	var moves moveslice.MoveSlice = moveslice.New(moveslice.MaxMoves)
	movegen.GenerateLegal(pos, &moves)

	if moves.Len() == 0 {
		if pos.State().Checkers != BbZero {
			return Result{Score: -ValueCheckMate}, nil
		}
		return Result{Score: ValueDraw}, nil
	}

	results := make([]Result, moves.Len())
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < moves.Len(); i++ {
		i, m := i, moves.At(i).MoveOf()
		g.Go(func() error {
			clone := pos.Clone()
			clone.DoMove(m)
			tt := transposition.NewTable(ttSizeMBPerWorker)
			s := New(tt, ev)
			sub := s.IterativeDeepening(clone, maxDepth-1)
			pv := moveslice.New(MaxPV)
			pv.PushBack(m)
			for j := 0; j < sub.PV.Len(); j++ {
				pv.PushBack(sub.PV.At(j))
			}
			results[i] = Result{
				BestMove: m,
				Score:    -sub.Score,
				PV:       pv,
				Nodes:    sub.Nodes,
				Depth:    maxDepth,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, nil
}
