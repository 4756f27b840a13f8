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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/eval"
	"github.com/chesscore/chesscore/position"
	"github.com/chesscore/chesscore/transposition"
	. "github.com/chesscore/chesscore/types"
)

func newSearch(ttSizeMB int) *Search {
	return New(transposition.NewTable(ttSizeMB), eval.NewMaterial())
}

// TestSearch_AvoidsImmediateMaterialLoss is the "Search soundness" property
// from spec.md: at depth 6 the engine must prefer a legal move that avoids
// immediate material loss.
func TestSearch_AvoidsImmediateMaterialLoss(t *testing.T) {
	pos, err := position.NewFen("2r1k3/4ppp1/8/2q4b/8/3Q4/1r6/3RK3 w - - 0 1")
	assert.NoError(t, err)

	s := newSearch(4)
	result := s.IterativeDeepening(pos, 6)

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Greater(t, result.Score, -Value(500), "must not walk into hanging material")
}

func TestSearch_FindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back-rank mate, king boxed in by own pawns.
	pos, err := position.NewFen("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := newSearch(4)
	result := s.IterativeDeepening(pos, 3)

	assert.True(t, result.Score > ValueCheckMateThreshold, "must report a mate score")
}

func TestSearch_StalemateScoresAsDraw(t *testing.T) {
	// Black to move has no legal move and is not in check: stalemate.
	pos, err := position.NewFen("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)

	s := newSearch(1)
	result := s.IterativeDeepening(pos, 1)

	assert.Equal(t, ValueDraw, result.Score)
}

func TestSearch_IterativeDeepeningNodeCountGrowsWithDepth(t *testing.T) {
	pos := position.New()

	shallow := newSearch(4).IterativeDeepening(pos, 1)
	deeper := newSearch(4).IterativeDeepening(pos, 3)

	assert.Less(t, shallow.Nodes, deeper.Nodes)
}

func TestParallelRoot_MatchesSingleThreadedBestScore(t *testing.T) {
	pos := position.New()

	single := newSearch(8).IterativeDeepening(pos, 3)
	parallel, err := ParallelRoot(pos, 3, 1, eval.NewMaterial())
	assert.NoError(t, err)

	assert.Equal(t, single.Score, parallel.Score)
}

func TestParallelRoot_MateAtRootReturnsImmediately(t *testing.T) {
	// Black to move, already checkmated by the rook's back-rank check.
	pos, err := position.NewFen("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)

	result, err := ParallelRoot(pos, 4, 1, eval.NewMaterial())
	assert.NoError(t, err)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, -ValueCheckMate, result.Score)
}
