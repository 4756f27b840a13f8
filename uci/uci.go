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

// Package uci handles the UCI protocol conversation between a chess GUI and
// the engine core (position/movegen/search/eval). It is a thin collaborator
// sitting outside the core's correctness contract: everything it does is
// translate UCI text to and from calls on the core packages.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"

	oplog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesscore/chesscore/config"
	"github.com/chesscore/chesscore/eval"
	"github.com/chesscore/chesscore/logging"
	"github.com/chesscore/chesscore/movegen"
	"github.com/chesscore/chesscore/moveslice"
	"github.com/chesscore/chesscore/position"
	"github.com/chesscore/chesscore/search"
	"github.com/chesscore/chesscore/transposition"
	. "github.com/chesscore/chesscore/types"
)

const engineName = "chesscore"
const engineVersion = "0.1"
const engineAuthor = "chesscore contributors"

var out = message.NewPrinter(language.German)
var log = logging.GetLog("uci")

// Handler reads UCI commands from InIo and writes UCI responses to OutIo,
// driving a Position/Search pair underneath.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos     *position.Position
	history *position.History
	tt      *transposition.Table
	evalFn  eval.Evaluator
	uciLog  *oplog.Logger
}

// NewHandler creates a Handler wired to stdin/stdout with a fresh
// transposition table sized per config.Settings.Search.TTSizeMB.
func NewHandler() *Handler {
	return &Handler{
		InIo:    bufio.NewScanner(os.Stdin),
		OutIo:   bufio.NewWriter(os.Stdout),
		pos:     position.New(),
		history: position.NewHistory(),
		tt:      transposition.NewTable(config.Settings.Search.TTSizeMB),
		evalFn:  eval.NewMaterial(),
		uciLog:  logging.GetUciLog(),
	}
}

// Loop reads commands from InIo until "quit" or EOF.
func (u *Handler) Loop() {
	for u.InIo.Scan() {
		if u.handle(u.InIo.Text()) {
			return
		}
	}
}

// Command runs a single UCI command line and returns everything it wrote to
// OutIo, for tests and scripted drivers.
func (u *Handler) Command(cmd string) string {
	saved := u.OutIo
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handle(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (u *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.pos = position.New()
		u.history = position.NewHistory()
		u.tt.Clear()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		// search runs synchronously to completion; nothing to interrupt.
	case "debug", "register", "ponderhit":
		log.Debugf("command %q acknowledged, no-op", tokens[0])
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (u *Handler) uciCommand() {
	u.send(out.Sprintf("id name %s %s", engineName, engineVersion))
	u.send(out.Sprintf("id author %s", engineAuthor))
	for _, o := range uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		u.sendInfoString("setoption malformed: missing 'name'")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		name.WriteString(tokens[i])
		name.WriteString(" ")
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = tokens[i+1]
	}
	o, found := uciOptions[strings.TrimSpace(name.String())]
	if !found {
		u.sendInfoString(out.Sprintf("setoption: no such option '%s'", name.String()))
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func (u *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.sendInfoString("position malformed: missing subcommand")
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
	default:
		u.sendInfoString(out.Sprintf("position malformed: %v", tokens))
		return
	}

	pos, err := position.NewFen(fen)
	if err != nil {
		u.sendInfoString(out.Sprintf("position malformed fen %q: %v", fen, err))
		return
	}
	u.pos = pos
	u.history = position.NewHistory()

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := moveFromUci(u.pos, tokens[i])
			if !m.IsValid() {
				u.sendInfoString(out.Sprintf("position malformed: invalid move %q", tokens[i]))
				return
			}
			u.pos.DoMove(m)
			u.history.Push(u.pos.ZobristKey())
		}
	}
}

func (u *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.DepthLimit
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				if d, err := strconv.Atoi(tokens[i+1]); err == nil {
					depth = d
				}
				i++
			}
		case "infinite", "ponder", "movetime", "wtime", "btime", "winc", "binc", "movestogo", "nodes", "mate":
			log.Debugf("go subcommand %q not implemented by this single-threaded search, ignoring", tokens[i])
			if i+1 < len(tokens) {
				i++
			}
		}
	}

	s := search.New(u.tt, u.evalFn)
	s.SetHistory(u.history)
	result := s.IterativeDeepening(u.pos, depth)
	u.send(out.Sprintf("info depth %d score %s nodes %d pv %s",
		result.Depth, result.Score.String(), result.Nodes, result.PV.StringUci()))
	u.send(out.Sprintf("bestmove %s", result.BestMove.StringUci()))
}

func (u *Handler) sendInfoString(s string) {
	u.send(out.Sprintf("info string %s", s))
}

func (u *Handler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

// moveFromUci resolves a UCI move string (e.g. "e2e4", "e7e8q") against the
// legal moves available at pos, returning MoveNone if none match.
func moveFromUci(pos *position.Position, s string) Move {
	if len(s) < 4 {
		return MoveNone
	}
	from := MakeSquare(s[0:2])
	to := MakeSquare(s[2:4])
	promo := PtNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}

	legal := moveslice.New(moveslice.MaxMoves)
	movegen.GenerateLegal(pos, &legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == from && m.To() == to {
			if m.MoveType() == Promotion && m.PromotionType() != promo {
				continue
			}
			return m
		}
	}
	return MoveNone
}
