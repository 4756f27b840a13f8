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

// Precomputed attack tables. Leaper (king, knight, pawn) attacks are plain
// step tables; slider (bishop, rook, queen) attacks are served from the
// magic bitboard tables initialized in magic.go.
var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	neighbourFilesMask [SqLength]Bitboard
	castlingRights     [SqLength]CastlingRights
	kingSideCastleMask [ColorLength]Bitboard
	queenSideCastleMask [ColorLength]Bitboard
	squaresBb          [ColorLength]Bitboard

	// between[s1][s2] holds the squares strictly between s1 and s2 when they
	// share a rank, file or diagonal; BbZero otherwise.
	betweenBb [SqLength][SqLength]Bitboard
	// line[s1][s2] holds the full rank/file/diagonal through s1 and s2,
	// including both squares, when they are aligned; BbZero otherwise.
	lineBb [SqLength][SqLength]Bitboard
)

// initAttacks precomputes leaper/slider attack tables, castling masks and
// the between/line tables. Must run after initBb.
func initAttacks() {
	pseudoAttacksPreCompute()
	initMagicBitboards()
	sliderPseudoAttacksPreCompute()
	neighbourMasksPreCompute()
	lineAndBetweenPreCompute()
	castleMasksPreCompute()
	squareColorsPreCompute()
}

// pseudoAttacksPreCompute fills the leaper step tables: king, knight and
// pawn attacks (pawn attacks are color dependent, the rest are symmetric
// under rank mirroring so a single table indexed by color suffices for
// pawns only).
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	knightSteps := []Direction{
		North + North + East, North + North + West,
		South + South + East, South + South + West,
		East + East + North, East + East + South,
		West + West + North, West + West + South,
	}

	for s := SqA1; s <= SqH8; s++ {
		for _, d := range kingSteps {
			to := s.To(d)
			if to.IsValid() {
				pseudoAttacks[King][s] |= sqBb[to]
			}
		}
		for _, d := range knightSteps {
			to := knightStep(s, d)
			if to != SqNone {
				pseudoAttacks[Knight][s] |= sqBb[to]
			}
		}
		if to := s.To(Northwest); to.IsValid() {
			pawnAttacks[White][s] |= sqBb[to]
		}
		if to := s.To(Northeast); to.IsValid() {
			pawnAttacks[White][s] |= sqBb[to]
		}
		if to := s.To(Southwest); to.IsValid() {
			pawnAttacks[Black][s] |= sqBb[to]
		}
		if to := s.To(Southeast); to.IsValid() {
			pawnAttacks[Black][s] |= sqBb[to]
		}
	}
}

// knightStep applies a two-and-one leap encoded as a sum of two Direction
// steps, rejecting any leap that wraps around a board edge.
func knightStep(s Square, d Direction) Square {
	to := Square(int(s) + int(d))
	if int(to) < 0 || int(to) > int(SqH8) {
		return SqNone
	}
	if SquareDistance(s, to) > 2 {
		return SqNone
	}
	return to
}

// sliderPseudoAttacksPreCompute fills the bishop/rook/queen pseudo attack
// tables from the now-initialized magic tables using an empty-board
// occupancy -- lineAndBetweenPreCompute uses them to test whether two
// squares are aligned.
func sliderPseudoAttacksPreCompute() {
	for s := SqA1; s <= SqH8; s++ {
		pseudoAttacks[Bishop][s] = AttacksBb(Bishop, s, BbZero)
		pseudoAttacks[Rook][s] = AttacksBb(Rook, s, BbZero)
		pseudoAttacks[Queen][s] = pseudoAttacks[Bishop][s] | pseudoAttacks[Rook][s]
	}
}

// lineAndBetweenPreCompute fills betweenBb and lineBb for every aligned
// square pair, following the same construction Stockfish uses: a line is
// the intersection of the two squares' slider pseudo attacks unioned with
// both squares; between is the slider attack from s1 blocked by s2
// intersected with the slider attack from s2 blocked by s1.
func lineAndBetweenPreCompute() {
	for _, pt := range []PieceType{Bishop, Rook} {
		for s1 := SqA1; s1 <= SqH8; s1++ {
			for s2 := SqA1; s2 <= SqH8; s2++ {
				if pseudoAttacks[pt][s1]&sqBb[s2] == BbZero {
					continue
				}
				lineBb[s1][s2] = (AttacksBb(pt, s1, BbZero) & AttacksBb(pt, s2, BbZero)) | sqBb[s1] | sqBb[s2]
				betweenBb[s1][s2] = AttacksBb(pt, s1, sqBb[s2]) & AttacksBb(pt, s2, sqBb[s1])
			}
		}
	}
}

func neighbourMasksPreCompute() {
	for s := SqA1; s <= SqH8; s++ {
		f := s.FileOf()
		if f > FileA {
			neighbourFilesMask[s] |= fileBb[f-1]
		}
		if f < FileH {
			neighbourFilesMask[s] |= fileBb[f+1]
		}
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

// squareColorsPreCompute fills the light/dark square masks returned by
// SquaresBb.
func squareColorsPreCompute() {
	for s := SqA1; s <= SqH8; s++ {
		if (int(s.FileOf())+int(s.RankOf()))%2 == 0 {
			squaresBb[Black] |= sqBb[s]
		} else {
			squaresBb[White] |= sqBb[s]
		}
	}
}

// GetAttacksBb returns the squares attacked by a piece of type pt standing
// on sq given the board occupancy occupied. pt must not be Pawn; use
// GetPawnAttacks for pawns.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	return AttacksBb(pt, sq, occupied)
}

// GetPseudoAttacks returns the squares a piece of type pt could reach from
// sq on an otherwise empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c standing on sq
// attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// NeighbourFilesMask returns the bitboard of the file(s) immediately east
// and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Between returns the squares strictly between s1 and s2 if they share a
// rank, file or diagonal; BbZero otherwise.
func Between(s1, s2 Square) Bitboard {
	return betweenBb[s1][s2]
}

// Line returns the full rank, file or diagonal through s1 and s2 (including
// both squares) if they are aligned; BbZero otherwise.
func Line(s1, s2 Square) Bitboard {
	return lineBb[s1][s2]
}

// KingSideCastleMask returns the squares east of color c's king origin
// square up to and including the rook's home square (f, g and h file).
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastleMask returns the squares west of color c's king origin
// square up to and including the rook's home square (d, c, b and a file).
func QueenSideCastleMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns the castling rights that are lost when a piece
// moves to or from sq (the rook/king home squares); CastlingNone elsewhere.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns the mask of all light (White) or dark (Black) squares.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}
