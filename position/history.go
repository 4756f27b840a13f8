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

// History tracks the Zobrist keys of every position reached so far -- the
// moves actually played in the game plus, while a search is descending a
// line, the moves tried along that line -- so repeated positions can be
// scored as a draw instead of re-searched indefinitely. Push/Pop mirrors
// DoMove/UndoMove: callers push after DoMove and pop before (or after)
// UndoMove, keeping the stack's depth equal to the number of plies played.
type History struct {
	keys []Key
}

// NewHistory returns an empty History ready to track a game or search line.
func NewHistory() *History {
	return &History{keys: make([]Key, 0, 64)}
}

// Push records k as the most recently reached position.
func (h *History) Push(k Key) {
	h.keys = append(h.keys, k)
}

// Pop discards the most recently recorded key. It is a no-op on an empty
// History.
func (h *History) Pop() {
	if len(h.keys) == 0 {
		return
	}
	h.keys = h.keys[:len(h.keys)-1]
}

// Len reports how many keys are currently recorded.
func (h *History) Len() int {
	return len(h.keys)
}

// IsRepetition reports whether k already occurred earlier within the last
// rule50 plies -- the window since the last pawn move or capture, beyond
// which no earlier position can recur (any irreversible move changes the
// board permanently). Only the window is scanned, not the whole game, so
// the check stays cheap at every search node. The most recent key is the
// current position itself (callers push after DoMove) and is not compared.
func (h *History) IsRepetition(k Key, rule50 int) bool {
	n := len(h.keys)
	limit := n - 1 - rule50
	if limit < 0 {
		limit = 0
	}
	for i := n - 2; i >= limit; i-- {
		if h.keys[i] == k {
			return true
		}
	}
	return false
}
