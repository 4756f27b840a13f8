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
	"strings"

	"github.com/chesscore/chesscore/assert"
)

// Move packs an origin square, destination square, move type and (where
// relevant) a promotion piece type into the low bits of a 32-bit value;
// the high 15 bits optionally carry a move-ordering sort value (see
// SetValue/ValueOf), the way moveorder's scoring pass stores a score
// directly on the move so a plain descending sort on the raw Move value
// orders moves correctly.
//
//	BITMAP 32-bit
//	| sort value (15 bits)          | 1 1 | 1 1 1 | 1 1 1 1 1 1 | 1 1 1 1 1 1 |
//	|                                | typ | prom  | from        | to          |
//	31                            17   16 15 14 12 11          6 5           0
//
// MoveNone (all zero bits) is the sentinel NULL move: From() == To() == SqA1.
type Move uint32

// MoveNone is the NULL move sentinel; From() == To() holds for it.
const MoveNone Move = 0

const (
	toShift       uint32 = 0
	fromShift     uint32 = 6
	promTypeShift uint32 = 12
	typeShift     uint32 = 15
	valueShift    uint32 = 17

	toMask       Move = 0x3F << toShift
	fromMask     Move = 0x3F << fromShift
	promTypeMask Move = 0x7 << promTypeShift
	moveTypeMask Move = 0x3 << typeShift
	valueMask    Move = 0x7FFF << valueShift
	moveOnlyMask Move = toMask | fromMask | promTypeMask | moveTypeMask
)

// NewMove encodes a Move from its four fields. promType is ignored unless
// t == Promotion.
func NewMove(from, to Square, t MoveType, promType PieceType) Move {
	if assert.DEBUG && t == Promotion {
		assertValidPromotion(promType)
	}
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(promType)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveOf returns m with any sort value stripped, leaving only the move's
// identity bits -- used to compare moves for equality regardless of
// whatever ordering score has been stamped onto them.
func (m Move) MoveOf() Move {
	return m & moveOnlyMask
}

// ValueOf returns the sort value previously stamped by SetValue, or
// ValueNA if none has been set.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue stamps a move-ordering sort value into the high bits of m and
// returns the updated Move. Plain descending numeric sort on the result
// then orders moves by value, since higher scores occupy higher bits.
func (m Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "invalid move sort value: %d", v)
	}
	return m.MoveOf() | Move(v-ValueNA)<<valueShift
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// MoveType returns the move's kind: Normal, EnPassant, Promotion or Castle.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type to promote to. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m & promTypeMask) >> promTypeShift)
}

// IsValid reports whether m has sane squares, a sane move type and, when a
// promotion, a sane promotion type. MoveNone is never valid by this check
// even though From()==To() also holds for it -- callers test for MoveNone
// explicitly when NULL is an acceptable value (e.g. search's root sentinel).
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || m.From() == m.To() {
		return false
	}
	if !m.MoveType().IsValid() {
		return false
	}
	if m.MoveType() == Promotion {
		pt := m.PromotionType()
		return pt == Knight || pt == Bishop || pt == Rook || pt == Queen
	}
	return true
}

// StringUci renders m in long algebraic notation, e.g. "e7e8q". The NULL
// move renders as "a1a1" per spec.
func (m Move) StringUci() string {
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(m.PromotionType().Char())
	}
	return strings.ToLower(os.String())
}

// String is an alias of StringUci kept for fmt.Stringer compatibility.
func (m Move) String() string {
	return m.StringUci()
}

// assertValidPromotion panics in debug builds if pt is not a legal
// promotion target (Knight, Bishop, Rook or Queen).
func assertValidPromotion(pt PieceType) {
	if assert.DEBUG {
		assert.Assert(pt == Knight || pt == Bishop || pt == Rook || pt == Queen,
			"invalid promotion piece type %d", pt)
	}
}
