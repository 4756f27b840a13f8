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

// PieceType is a set of constants for piece types in chess.
// King is kept at index 1 so that Piece packing (color<<3 | kind) stays a
// single cheap shift-and-or, matching the teacher's Piece encoding.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	King     PieceType = 1 // Non sliding
	Pawn     PieceType = 2 // Non sliding
	Knight   PieceType = 3 // Non sliding
	Bishop   PieceType = 4 // Sliding
	Rook     PieceType = 5 // Sliding
	Queen    PieceType = 6 // Sliding
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns a string representation of a piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-KPNBRQ")

// Char returns a single char string representation of a piece type (uppercase, as in FEN).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// gamePhaseValue weighs officers for game-phase interpolation (0 for king/pawn,
// minor=1, rook=2, queen=4) -- kept for pluggable evaluators that want it even
// though the bundled Material evaluator (see package eval) ignores phase.
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns a value used by phase-aware evaluators to judge
// whether a position is closer to the middle- or the endgame.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds the material values mandated by the spec: Pawn 100,
// Knight 300, Bishop 300, Rook 500, Queen 900, King 0 (never captured).
var pieceTypeValue = [PtLength]int{0, 0, 100, 300, 300, 500, 900}

// ValueOf returns the material value of a piece type in centipawns.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid checks if pt is a valid, non-null piece type.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}
