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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesscore/chesscore/position"
)

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
const position3Fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"

func TestPerft_StartPosition(t *testing.T) {
	expected := []uint64{20, 400, 8902, 197281}
	for depth, want := range expected {
		r, err := RunFen(position.StartFen, depth+1)
		assert.NoError(t, err)
		assert.Equal(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerft_Kiwipete(t *testing.T) {
	expected := []uint64{48, 2039, 97862}
	for depth, want := range expected {
		r, err := RunFen(kiwipeteFen, depth+1)
		assert.NoError(t, err)
		assert.Equal(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerft_Position3(t *testing.T) {
	expected := []uint64{14, 191, 2812, 43238}
	for depth, want := range expected {
		r, err := RunFen(position3Fen, depth+1)
		assert.NoError(t, err)
		assert.Equal(t, want, r.Nodes, "depth %d", depth+1)
	}
}

func TestPerft_StartPositionDepth5_LongRunning(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}
	r, err := RunFen(position.StartFen, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(4865609), r.Nodes)
}

func TestParseEPDLine(t *testing.T) {
	c, err := ParseEPDLine(kiwipeteFen + " ;D1 48 ;D2 2039")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), c.Depths[1])
	assert.Equal(t, uint64(2039), c.Depths[2])
}

func TestRunSuite_AllMatch(t *testing.T) {
	cases := ParseEPDSuite(position.StartFen + " ;D1 20 ;D2 400\n" + kiwipeteFen + " ;D1 48")
	mismatches, err := RunSuite(cases)
	assert.NoError(t, err)
	assert.Empty(t, mismatches)
}
