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

// Package perft counts the legal-move subtree size below a position to a
// fixed depth, the standard correctness benchmark for a move generator:
// a single off-by-one in castling, en-passant or promotion generation
// shows up as a wrong leaf count at some depth.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

var out = message.NewPrinter(language.German)

// Result holds node and move-kind counters for a single perft run.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
	Elapsed    time.Duration
}

// Run counts the leaves of the legal-move tree below pos to the given
// depth. depth 0 counts the empty line as a single leaf (pos itself).
func Run(pos *position.Position, depth int) Result {
	start := time.Now()
	r := Result{}
	r.Nodes = perft(pos, depth, &r)
	r.Elapsed = time.Since(start)
	return r
}

// RunFen parses fen and runs Run against the resulting position.
func RunFen(fen string, depth int) (Result, error) {
	pos, err := position.NewFen(fen)
	if err != nil {
		return Result{}, err
	}
	return Run(pos, depth), nil
}

func perft(pos *position.Position, depth int, r *Result) uint64 {
	if depth == 0 {
		return 1
	}
	var ml moveslice.MoveSlice = moveslice.New(moveslice.MaxMoves)
	movegen.GenerateLegal(pos, &ml)

	if depth == 1 {
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			tallyLeaf(pos, m, r)
		}
		return uint64(ml.Len())
	}

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.DoMove(m)
		nodes += perft(pos, depth-1, r)
		pos.UndoMove(m)
	}
	return nodes
}

// tallyLeaf classifies a depth-1 move for the diagnostic counters; it is
// only called at the bottom ply since counting here, rather than at
// every internal node, keeps the recursive case allocation-free.
func tallyLeaf(pos *position.Position, m Move, r *Result) {
	if m.MoveType() == EnPassant {
		r.EnPassant++
		r.Captures++
	} else if m.MoveType() == Castle {
		r.Castles++
	} else if pos.Board(m.To()) != PieceNone {
		r.Captures++
	}
	if m.MoveType() == Promotion {
		r.Promotions++
	}
	if pos.GivesCheck(m) {
		r.Checks++
		pos.DoMove(m)
		var reply moveslice.MoveSlice = moveslice.New(moveslice.MaxMoves)
		movegen.GenerateLegal(pos, &reply)
		if reply.Len() == 0 {
			r.CheckMates++
		}
		pos.UndoMove(m)
	}
}

// Print renders r the way a developer running perft from the command
// line expects: node count, timing and NPS, and a move-kind breakdown.
// NPS uses a German-locale thousands separator, matching the rest of the
// engine's diagnostic output.
func Print(depth int, r Result) {
	out.Printf("Perft depth %d\n", depth)
	out.Printf("  Nodes      : %d\n", r.Nodes)
	out.Printf("  Time       : %d ms\n", r.Elapsed.Milliseconds())
	nanos := r.Elapsed.Nanoseconds()
	if nanos == 0 {
		nanos = 1
	}
	out.Printf("  NPS        : %d\n", (r.Nodes*uint64(time.Second.Nanoseconds()))/uint64(nanos))
	out.Printf("  Captures   : %d\n", r.Captures)
	out.Printf("  EnPassant  : %d\n", r.EnPassant)
	out.Printf("  Castles    : %d\n", r.Castles)
	out.Printf("  Promotions : %d\n", r.Promotions)
	out.Printf("  Checks     : %d\n", r.Checks)
	out.Printf("  CheckMates : %d\n", r.CheckMates)
}
