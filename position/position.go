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

// Package position implements the chess board representation: a square-
// indexed piece array backed by per-color/per-type bitboards, plus the
// State chain (checkers, pins, castling, en-passant, half-move clock)
// needed to make and unmake moves without recomputing from scratch.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesscore/chesscore/assert"
	. "github.com/chesscore/chesscore/types"
)

// StartFen is the FEN of the initial chess position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var zobristInitialized = false

// State is the derived, per-ply data that do_move pushes onto an undo
// stack and recomputes from scratch for the new side to move; undo_move
// restores it verbatim from the chain without recomputing anything.
type State struct {
	Checkers     Bitboard
	Blockers     [ColorLength]Bitboard
	Pinners      [ColorLength]Bitboard
	CheckSquares [PtLength]Bitboard

	// Discoverers holds the squares of the side-to-move's own pieces that
	// currently block one of that side's own sliders from attacking the
	// enemy king; moving one off its blocking line gives discovered check.
	Discoverers Bitboard

	CastlingRights CastlingRights
	EpSquare       Square
	Rule50         int

	Captured Piece

	Prev *State
}

// Position holds a board (square -> piece), redundant per-color/per-type
// bitboards, and the State chain. The zero value is not usable; build one
// with New or NewFen.
type Position struct {
	board    [SqLength]Piece
	piecesBb [ColorLength][PtLength]Bitboard
	colorsBb [ColorLength]Bitboard

	ply        int
	nextPlayer Color
	zobristKey Key

	state *State
}

// New creates a Position at the standard starting setup.
func New() *Position {
	p, err := NewFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: start fen must always parse: %s", err))
	}
	return p
}

// NewFen creates a Position from a FEN string. Malformed FEN input returns
// a *FenParseError rather than panicking -- this is external input, not an
// internal invariant violation.
func NewFen(fen string) (*Position, error) {
	if !zobristInitialized {
		initZobrist()
		zobristInitialized = true
	}
	p := &Position{state: &State{EpSquare: SqNone}}
	if err := p.parseFen(fen); err != nil {
		return nil, err
	}
	p.computeState()
	return p, nil
}

// Board returns the piece occupying sq, or PieceNone if empty.
func (p *Position) Board(sq Square) Piece {
	return p.board[sq]
}

// Pieces returns the bitboard of pieces of type pt and color c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// PiecesByType returns the union over both colors of pieces of type pt.
func (p *Position) PiecesByType(pt PieceType) Bitboard {
	return p.piecesBb[White][pt] | p.piecesBb[Black][pt]
}

// Colors returns the bitboard of all pieces of color c.
func (p *Position) Colors(c Color) Bitboard {
	return p.colorsBb[c]
}

// Occupied returns the bitboard of all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.colorsBb[White] | p.colorsBb[Black]
}

// King returns the square of color c's king.
func (p *Position) King(c Color) Square {
	return p.piecesBb[c][King].Lsb()
}

// Ply returns the number of half-moves played since the root position.
func (p *Position) Ply() int {
	return p.ply
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// ZobristKey returns the incrementally-maintained Zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// State returns the current derived State.
func (p *Position) State() *State {
	return p.state
}

// Clone returns a deep copy of p suitable for an independent search
// subtree: the board/bitboards are copied by value and the State chain
// is collapsed to a single detached State (no Prev), matching §5's
// "clone the Position ... and search sub-trees independently" allowance.
// A cloned Position does not share mutable state with its source, so
// concurrent do_move/undo_move on the clone and the original are safe.
func (p *Position) Clone() *Position {
	c := &Position{
		board:      p.board,
		piecesBb:   p.piecesBb,
		colorsBb:   p.colorsBb,
		ply:        p.ply,
		nextPlayer: p.nextPlayer,
		zobristKey: p.zobristKey,
	}
	st := *p.state
	st.Prev = nil
	c.state = &st
	return c
}

// AttacksTo returns every piece of either color attacking sq given the
// current occupancy, unioning leaper attacks with slider attacks cast
// through the actual board.
func (p *Position) AttacksTo(sq Square) Bitboard {
	return p.AttacksToOcc(sq, p.Occupied())
}

// AttacksToOcc is AttacksTo against a caller-supplied occupancy instead of
// the position's own, letting a caller probe attacks on a board with some
// pieces hypothetically removed (SEE's x-ray re-scan after each capture
// peels the capturing piece off the real occupancy without mutating p).
func (p *Position) AttacksToOcc(sq Square, occ Bitboard) Bitboard {
	pawns := (GetPawnAttacks(White, sq) & p.piecesBb[Black][Pawn]) |
		(GetPawnAttacks(Black, sq) & p.piecesBb[White][Pawn])
	knights := GetPseudoAttacks(Knight, sq) & p.PiecesByType(Knight)
	kings := GetPseudoAttacks(King, sq) & p.PiecesByType(King)
	bishops := GetAttacksBb(Bishop, sq, occ) & (p.PiecesByType(Bishop) | p.PiecesByType(Queen))
	rooks := GetAttacksBb(Rook, sq, occ) & (p.PiecesByType(Rook) | p.PiecesByType(Queen))
	return pawns | knights | kings | bishops | rooks
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.AttacksTo(sq)&p.colorsBb[by] != 0
}

// DoMove commits a move to the board. The caller is responsible for only
// passing pseudo-legal moves generated against this exact position;
// legality (king safety) is not checked here, matching movegen's
// generate-then-filter contract.
func (p *Position) DoMove(m Move) {
	assert.Assert(m.IsValid(), "position: DoMove got invalid move %s", m.String())

	from, to := m.From(), m.To()
	moveType := m.MoveType()
	us := p.nextPlayer

	moved := p.board[from]
	assert.Assert(moved != PieceNone, "position: DoMove no piece on %s", from.String())
	assert.Assert(moved.ColorOf() == us, "position: DoMove piece on %s does not belong to side to move", from.String())

	captured := p.board[to]

	next := *p.state
	next.Captured = PieceNone
	next.Rule50++
	next.EpSquare = SqNone
	next.Prev = p.state

	p.removePiece(from)
	if captured != PieceNone {
		p.removePiece(to)
		next.Captured = captured
	}

	switch moveType {
	case Promotion:
		assert.Assert(moved.TypeOf() == Pawn, "position: promotion move but from-piece is not a pawn")
		p.putPiece(MakePiece(us, m.PromotionType()), to)
	case EnPassant:
		assert.Assert(moved.TypeOf() == Pawn, "position: en-passant move but from-piece is not a pawn")
		capSq := to.To(pawnPushDirection(us.Flip()))
		epCaptured := p.board[capSq]
		assert.Assert(epCaptured == MakePiece(us.Flip(), Pawn), "position: en-passant target square holds no enemy pawn")
		p.removePiece(capSq)
		next.Captured = epCaptured
		p.putPiece(moved, to)
	case Castle:
		p.putPiece(moved, to)
		rookFrom, rookTo := castleRookSquares(to)
		rook := p.board[rookFrom]
		assert.Assert(rook == MakePiece(us, Rook), "position: castle move but no rook on %s", rookFrom.String())
		p.removePiece(rookFrom)
		p.putPiece(rook, rookTo)
	default:
		p.putPiece(moved, to)
	}

	if next.CastlingRights != CastlingNone {
		next.CastlingRights &= ^castleMaskChange(from) & ^castleMaskChange(to)
	}

	if moved.TypeOf() == Pawn && SquareDistance(from, to) == 2 {
		epSq := from.To(pawnPushDirection(us))
		if GetPawnAttacks(us, epSq)&p.piecesBb[us.Flip()][Pawn] != 0 {
			next.EpSquare = epSq
		}
	}

	if moved.TypeOf() == Pawn || captured != PieceNone || next.Captured != PieceNone {
		next.Rule50 = 0
	}

	if p.state.EpSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.state.EpSquare.FileOf()]
	}
	if next.EpSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[next.EpSquare.FileOf()]
	}
	if next.CastlingRights != p.state.CastlingRights {
		p.zobristKey ^= zobristBase.castlingRights[p.state.CastlingRights]
		p.zobristKey ^= zobristBase.castlingRights[next.CastlingRights]
	}

	p.state = &next
	p.ply++
	p.nextPlayer = us.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
	p.computeState()
}

// UndoMove reverses the most recent DoMove, restoring the position
// (including the State chain) to exactly what it was before. No
// recomputation is needed: the popped State is the prior State verbatim.
func (p *Position) UndoMove(m Move) {
	assert.Assert(p.state.Prev != nil, "position: UndoMove called with empty undo stack")

	from, to := m.From(), m.To()
	moveType := m.MoveType()
	captured := p.state.Captured

	p.nextPlayer = p.nextPlayer.Flip()
	us := p.nextPlayer

	switch moveType {
	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
		if captured != PieceNone {
			p.putPiece(captured, to)
		}
	case EnPassant:
		moved := p.removePiece(to)
		p.putPiece(moved, from)
		capSq := to.To(pawnPushDirection(us.Flip()))
		p.putPiece(captured, capSq)
	case Castle:
		moved := p.removePiece(to)
		p.putPiece(moved, from)
		rookFrom, rookTo := castleRookSquares(to)
		rook := p.removePiece(rookTo)
		p.putPiece(rook, rookFrom)
	default:
		moved := p.removePiece(to)
		p.putPiece(moved, from)
		if captured != PieceNone {
			p.putPiece(captured, to)
		}
	}

	prev := p.state.Prev
	if p.state.EpSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.state.EpSquare.FileOf()]
	}
	if prev.EpSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[prev.EpSquare.FileOf()]
	}
	if prev.CastlingRights != p.state.CastlingRights {
		p.zobristKey ^= zobristBase.castlingRights[p.state.CastlingRights]
		p.zobristKey ^= zobristBase.castlingRights[prev.CastlingRights]
	}

	p.zobristKey ^= zobristBase.nextPlayer
	p.state = prev
	p.ply--
}

// GivesCheck reports whether playing m against the current position would
// put the opponent's king in check, using the precomputed check-square
// table and the discovered-check probe via blockers/pinners.
func (p *Position) GivesCheck(m Move) bool {
	from, to := m.From(), m.To()
	moved := p.board[from]
	them := p.nextPlayer.Flip()

	pt := moved.TypeOf()
	if m.MoveType() == Promotion {
		pt = m.PromotionType()
	}
	if p.state.CheckSquares[pt]&to.Bitboard() != 0 {
		return true
	}
	if p.state.Discoverers&from.Bitboard() == 0 {
		return false
	}
	theirKing := p.King(them)
	return !Line(from, theirKing).Has(to)
}

// computeState recomputes checkers, pinners, blockers and check-squares
// for the side now to move, from scratch, per the original checker/pinner
// sniper-scan algorithm: for each color, scan enemy rook/bishop rays from
// that color's king on an empty board; a sniper whose between-ray holds
// exactly one piece, and that piece of the king's own color, records the
// piece as a blocker and the sniper as a pinner for that color.
func (p *Position) computeState() {
	us := p.nextPlayer
	them := us.Flip()
	king := p.King(us)
	theirKing := p.King(them)
	occ := p.Occupied()

	p.state.Checkers = p.AttacksTo(king) & p.colorsBb[them]

	// CheckSquares[pt] holds the squares from which a piece of type pt,
	// belonging to us, would give check to their king -- computed against
	// an empty board, same symmetric leaper/slider trick used to derive
	// checkers: a square attacks theirKing iff theirKing's own attack
	// pattern from that piece type reaches it.
	p.state.CheckSquares[PtNone] = BbZero
	p.state.CheckSquares[Pawn] = GetPawnAttacks(them, theirKing)
	p.state.CheckSquares[Knight] = GetPseudoAttacks(Knight, theirKing)
	p.state.CheckSquares[Bishop] = GetAttacksBb(Bishop, theirKing, BbZero)
	p.state.CheckSquares[Rook] = GetAttacksBb(Rook, theirKing, BbZero)
	p.state.CheckSquares[Queen] = p.state.CheckSquares[Bishop] | p.state.CheckSquares[Rook]

	p.state.Blockers[White] = BbZero
	p.state.Blockers[Black] = BbZero
	p.state.Pinners[White] = BbZero
	p.state.Pinners[Black] = BbZero

	for _, c := range [ColorLength]Color{White, Black} {
		k := p.King(c)
		enemy := c.Flip()
		snipers := (GetAttacksBb(Rook, k, BbZero) & (p.piecesBb[enemy][Rook] | p.piecesBb[enemy][Queen])) |
			(GetAttacksBb(Bishop, k, BbZero) & (p.piecesBb[enemy][Bishop] | p.piecesBb[enemy][Queen]))
		for snipers != BbZero {
			sniper := snipers.PopLsb()
			between := Between(k, sniper) & occ
			if between.PopCount() != 1 {
				continue
			}
			blockerSq := between.Lsb()
			if p.board[blockerSq].ColorOf() == c {
				p.state.Blockers[c] |= between
				p.state.Pinners[c] |= sniper.Bitboard()
			}
		}
	}

	// Discoverers (and, per spec, CheckSquares[King]): our own sliders'
	// rays to the enemy king, scanned the other way around -- a sniper of
	// OUR color whose between-ray to their king holds exactly one piece,
	// that piece OUR color, blocks our own attack and would discover
	// check if moved off the line.
	p.state.Discoverers = BbZero
	ourSnipers := (GetAttacksBb(Rook, theirKing, BbZero) & (p.piecesBb[us][Rook] | p.piecesBb[us][Queen])) |
		(GetAttacksBb(Bishop, theirKing, BbZero) & (p.piecesBb[us][Bishop] | p.piecesBb[us][Queen]))
	for ourSnipers != BbZero {
		sniper := ourSnipers.PopLsb()
		between := Between(theirKing, sniper) & occ
		if between.PopCount() != 1 {
			continue
		}
		blockerSq := between.Lsb()
		if p.board[blockerSq].ColorOf() == us {
			p.state.Discoverers |= between
		}
	}
	p.state.CheckSquares[King] = p.state.Discoverers
}

func pawnPushDirection(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: invalid castle destination %s", kingTo.String()))
	}
}

// castleMaskChange returns the castling rights forfeited when a piece
// moves to or from sq: the king/rook home squares.
func castleMaskChange(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqH1:
		return CastlingWhiteOO
	case SqA1:
		return CastlingWhiteOOO
	case SqE8:
		return CastlingBlack
	case SqH8:
		return CastlingBlackOO
	case SqA8:
		return CastlingBlackOOO
	default:
		return CastlingNone
	}
}

func (p *Position) putPiece(piece Piece, sq Square) {
	color := piece.ColorOf()
	p.board[sq] = piece
	p.piecesBb[color][piece.TypeOf()].PushSquare(sq)
	p.colorsBb[color].PushSquare(sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	removed := p.board[sq]
	color := removed.ColorOf()
	p.board[sq] = PieceNone
	p.piecesBb[color][removed.TypeOf()].PopSquare(sq)
	p.colorsBb[color].PopSquare(sq)
	p.zobristKey ^= zobristBase.pieces[removed][sq]
	return removed
}

// String renders the FEN followed by an ASCII board matrix.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringBoard returns a visual 8x8 matrix of the board, rank 8 on top.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// StringFen renders the current position as a FEN string.
func (p *Position) StringFen() string {
	var fen strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		fen.WriteString("/")
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.state.CastlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.state.EpSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.state.Rule50))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.ply/2 + 1))
	return fen.String()
}
