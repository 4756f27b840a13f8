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

package types

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/chesscore/chesscore/util"
)

// Bitboard holds one bit per square, A1 as bit 0 through H8 as bit 63.
type Bitboard uint64

// Bb constants for convenience.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)

	notFileABb = ^FileABb
	notFileHBb = ^FileHBb
	notRank1Bb = ^Rank1Bb
	notRank8Bb = ^Rank8Bb
)

// precomputed per-square masks, filled by initBb()
var (
	sqBb   [SqLength]Bitboard
	fileBb [FileLength]Bitboard
	rankBb [RankLength]Bitboard

	squareDistance [SqLength][SqLength]int
)

// initBb precomputes square/file/rank masks and square distances. Must run
// before initAttacks, which builds on sqBb.
func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << sq
	}
	for f := FileA; f < FileNone; f++ {
		fileBb[f] = FileABb << f
	}
	for r := Rank1; r < RankNone; r++ {
		rankBb[r] = Rank1Bb << (8 * r)
	}
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			squareDistance[s1][s2] = util.Max(
				FileDistance(s1.FileOf(), s2.FileOf()),
				RankDistance(s1.RankOf(), s2.RankOf()))
		}
	}
}

// Bitboard returns the singleton bitboard for sq.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// Has reports whether b has the bit for s set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// PushSquare sets the bit for s in b.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the bit for s.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare clears the bit for s in b.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bitboard()
}

// PopSquare clears the bit for s.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bitboard()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// MoreThanOne reports whether b has two or more set bits. Cheaper than
// PopCount() > 1 since it avoids a full population count.
func (b Bitboard) MoreThanOne() bool {
	return (b & (b - 1)) != 0
}

// Lsb returns the least significant set bit as a Square, or SqNone if b is
// empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b is
// empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square of b and clears it in b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// masking off bits that would wrap around an edge file/rank.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (b & notRank8Bb) << 8
	case South:
		return (b & notRank1Bb) >> 8
	case East:
		return (b & notFileHBb) << 1
	case West:
		return (b & notFileABb) >> 1
	case Northeast:
		return (b & notFileHBb & notRank8Bb) << 9
	case Southeast:
		return (b & notFileHBb & notRank1Bb) >> 7
	case Southwest:
		return (b & notFileABb & notRank1Bb) >> 9
	case Northwest:
		return (b & notFileABb & notRank8Bb) << 7
	}
	return b
}

// FileDistance returns the absolute file distance between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance between s1 and s2.
func SquareDistance(s1, s2 Square) int {
	return squareDistance[s1][s2]
}

// String renders the raw 64-bit pattern, msb first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 board, rank 8 at the top, for debugging
// and test failure output.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b&SquareOf(f, r).Bitboard() != 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
