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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_IsRepetition(t *testing.T) {
	h := NewHistory()
	h.Push(Key(1))
	h.Push(Key(2))
	h.Push(Key(1))

	assert.True(t, h.IsRepetition(Key(1), 3))
	assert.False(t, h.IsRepetition(Key(3), 3))
}

func TestHistory_RespectsRule50Window(t *testing.T) {
	h := NewHistory()
	h.Push(Key(1))
	h.Push(Key(2)) // pretend this was an irreversible move (pawn push/capture)
	h.Push(Key(3))

	// rule50 of 1 means only the last ply is in the window: key 1 is out of
	// range even though it occurs earlier in the game.
	assert.False(t, h.IsRepetition(Key(1), 1))
	// key 1 becomes visible again once the window is widened to cover it.
	assert.True(t, h.IsRepetition(Key(1), 3))
}

func TestHistory_PushPopBalances(t *testing.T) {
	h := NewHistory()
	h.Push(Key(5))
	h.Push(Key(6))
	h.Pop()
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.IsRepetition(Key(6), 2))
}
