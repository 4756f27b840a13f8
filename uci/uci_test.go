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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/config"
)

func TestMain(m *testing.M) {
	config.Setup("")
	os.Exit(m.Run())
}

func TestHandler_LoopRespondsUciok(t *testing.T) {
	u := NewHandler()
	u.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestHandler_UciCommandAdvertisesIdentity(t *testing.T) {
	u := NewHandler()
	result := u.Command("uci")
	assert.Contains(t, result, "id name "+engineName)
	assert.Contains(t, result, "option name Hash")
	assert.Contains(t, result, "uciok")
}

func TestHandler_IsReadyRespondsReadyok(t *testing.T) {
	u := NewHandler()
	assert.Contains(t, u.Command("isready"), "readyok")
}

func TestHandler_PositionStartposThenMoves(t *testing.T) {
	u := NewHandler()
	u.Command("position startpos moves e2e4 e7e5")
	fields := strings.Fields(u.pos.StringFen())
	assert.Equal(t, "w", fields[1], "white to move again after 1. e4 e5")
}

func TestHandler_PositionMalformedMoveReportsInfoString(t *testing.T) {
	u := NewHandler()
	result := u.Command("position startpos moves e2e5")
	assert.Contains(t, result, "info string")
}

func TestHandler_PositionFen(t *testing.T) {
	u := NewHandler()
	fen := "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
	u.Command("position fen " + fen)
	assert.Equal(t, fen, u.pos.StringFen())
}

func TestHandler_GoReturnsBestmove(t *testing.T) {
	u := NewHandler()
	u.Command("position startpos")
	result := u.Command("go depth 2")
	assert.Contains(t, result, "bestmove")
}

func TestHandler_SetOptionHash(t *testing.T) {
	u := NewHandler()
	u.Command("setoption name Hash value 16")
	assert.Equal(t, 16, config.Settings.Search.TTSizeMB)
}
