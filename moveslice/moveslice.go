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

// Package moveslice provides the fixed-capacity move list used by
// move generation and ordering: a thin slice facade sized for at most
// MaxMoves (256) entries per spec.md's MoveList contract. The limit is
// not enforced: PushBack appends past it like any Go slice.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/chesscore/chesscore/types"
)

// MaxMoves is the largest number of pseudo-legal moves any position can
// have; the generation-type filter never needs to exceed it.
const MaxMoves = 256

// MoveSlice is a Move container backed by a Go slice.
type MoveSlice []Move

// New creates a move list with the given capacity and 0 elements.
func New(cap int) MoveSlice {
	return make([]Move, 0, cap)
}

// PushBack appends an element at the end of the list.
func (ma *MoveSlice) PushBack(m Move) {
	*ma = append(*ma, m)
}

// PopBack removes and returns the move from the back of the list. Panics
// if the list is empty.
func (ma *MoveSlice) PopBack() Move {
	if len(*ma) <= 0 {
		panic("moveslice: PopBack() called on empty list")
	}
	back := (*ma)[len(*ma)-1]
	*ma = (*ma)[:len(*ma)-1]
	return back
}

// Len returns the number of moves currently stored.
func (ma *MoveSlice) Len() int {
	return len(*ma)
}

// At returns the move at index i without removing it. Index is not
// bounds-checked.
func (ma *MoveSlice) At(i int) Move {
	return (*ma)[i]
}

// Set overwrites the move at index i. Index is not bounds-checked.
func (ma *MoveSlice) Set(i int, move Move) {
	(*ma)[i] = move
}

// Filter rebuilds the list in place, keeping only elements for which f
// returns true.
func (ma *MoveSlice) Filter(f func(index int) bool) {
	b := (*ma)[:0]
	for i, x := range *ma {
		if f(i) {
			b = append(b, x)
		}
	}
	*ma = b
}

// ForEach calls f with the index of each element, in stored order.
func (ma *MoveSlice) ForEach(f func(index int)) {
	for index := range *ma {
		f(index)
	}
}

// Data exposes the underlying slice for range loops. Use with care: the
// returned slice aliases the MoveSlice's storage.
func (ma *MoveSlice) Data() []Move {
	return *ma
}

// Clear empties the list but retains its current capacity, useful when
// a list is reused at high frequency (e.g. once per node in search).
func (ma *MoveSlice) Clear() {
	*ma = (*ma)[:0]
}

// Sort orders moves from highest sort value to lowest using insertion
// sort, since move lists are small (<256) and often nearly sorted
// already by generation order. Relies on SetValue packing the sort
// value into a move's high bits so plain numeric comparison of Move
// values also compares by sort value.
func (ma *MoveSlice) Sort() {
	l := len(*ma)
	for i := 1; i < l; i++ {
		tmp := (*ma)[i]
		j := i
		for j > 0 && tmp > (*ma)[j-1] {
			(*ma)[j] = (*ma)[j-1]
			j--
		}
		(*ma)[j] = tmp
	}
}

// String returns a human-readable representation of the list.
func (ma *MoveSlice) String() string {
	var os strings.Builder
	size := len(*ma)
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ma.At(i).String())
	}
	os.WriteString(" }")
	return os.String()
}

// StringUci renders the list as a space-separated sequence of UCI move
// strings.
func (ma *MoveSlice) StringUci() string {
	var os strings.Builder
	size := len(*ma)
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(ma.At(i).StringUci())
	}
	return os.String()
}
