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

// BoundType records how a search-stored Value relates to the true minimax
// value: exact, or a bound produced by an alpha/beta cutoff. Used by the
// transposition table and alpha-beta search.
type BoundType int8

const (
	BoundNone  BoundType = 0
	BoundExact BoundType = 1
	BoundUpper BoundType = 2 // fail-low: true value <= stored value
	BoundLower BoundType = 3 // fail-high: true value >= stored value
	boundTypeLength int = 4
)

// IsValid reports whether bt is one of the defined bound types.
func (bt BoundType) IsValid() bool {
	return bt >= BoundNone && int(bt) < boundTypeLength
}

var boundTypeToString = [boundTypeLength]string{"None", "Exact", "Upper", "Lower"}

func (bt BoundType) String() string {
	return boundTypeToString[bt]
}
