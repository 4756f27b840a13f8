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

// Package transposition implements the search's transposition table: a
// fixed-size, power-of-two-addressed cache of previously searched
// positions keyed by their Zobrist hash. Not safe for concurrent use by
// multiple writers; Table.Resize/Clear must not run concurrently with
// Probe/Store.
package transposition

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesscore/chesscore/logging"
	"github.com/chesscore/chesscore/position"
	. "github.com/chesscore/chesscore/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("transposition")

// MaxSizeMB bounds Resize's requested size.
const MaxSizeMB = 65_536

// entrySize is the per-slot memory footprint, used to size the table to
// a power-of-two entry count within the requested byte budget.
const entrySize = int(unsafe.Sizeof(Entry{}))

// Entry is one transposition table slot.
type Entry struct {
	Key   position.Key
	Move  Move // packed move, its sort-value bits carry the stored Value
	Depth int8
	Age   int8
	Bound BoundType
}

// Table is a depth-preferred transposition table (a colliding entry is
// replaced only by a result searched at least as deep) sized to a power
// of two for cheap mask-based addressing.
type Table struct {
	data     []Entry
	mask     uint64
	entries  uint64
	Stats    Stats
}

// Stats tracks table usage for UCI "info" reporting and tuning.
type Stats struct {
	Puts, Collisions, Overwrites, Updates, Probes, Hits, Misses uint64
}

// NewTable returns a Table sized to at most sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize clears the table and reallocates it to at most sizeMB megabytes.
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}

	byteBudget := uint64(sizeMB) * MB
	count := uint64(0)
	if byteBudget >= uint64(entrySize) {
		count = 1 << uint64(math.Floor(math.Log2(float64(byteBudget)/float64(entrySize))))
	}

	t.data = make([]Entry, count)
	t.mask = 0
	if count > 0 {
		t.mask = count - 1
	}
	t.entries = 0
	t.Stats = Stats{}

	log.Info(out.Sprintf("transposition table: %d MB, %d entries (%d bytes each)",
		uint64(len(t.data)*entrySize)/MB, len(t.data), entrySize))
}

// Clear empties the table without changing its size.
func (t *Table) Clear() {
	t.data = make([]Entry, len(t.data))
	t.entries = 0
	t.Stats = Stats{}
}

func (t *Table) slot(key position.Key) *Entry {
	return &t.data[uint64(key)&t.mask]
}

// Probe returns the stored entry for key, or nil on a miss or an
// index collision with a different position.
func (t *Table) Probe(key position.Key) *Entry {
	if len(t.data) == 0 {
		return nil
	}
	t.Stats.Probes++
	e := t.slot(key)
	if e.Key == key {
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Store records a search result for key. On an index collision with a
// different position it replaces the stored entry only if the new
// result was searched at least as deep, preferring the deeper/newer
// result the way FrankyGo's TtTable.Put does.
func (t *Table) Store(key position.Key, move Move, value Value, depth int8, bound BoundType) {
	if len(t.data) == 0 {
		return
	}
	t.Stats.Puts++

	e := t.slot(key)
	valueMove := move.SetValue(value)

	switch {
	case e.Key == 0:
		t.entries++
	case e.Key != key:
		t.Stats.Collisions++
		if depth < e.Depth {
			return
		}
		t.Stats.Overwrites++
	default:
		t.Stats.Updates++
	}

	e.Key = key
	e.Move = valueMove
	e.Depth = depth
	e.Age = 0
	e.Bound = bound
}

// Hashfull reports how full the table is, in permille, as UCI's "info
// hashfull" expects.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.entries
}
