package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/chesscore/chesscore/types"
)

// FenParseError reports a malformed FEN field. It wraps the offending
// field name and a human-readable reason; it is returned via the error
// interface rather than panicking, since FEN is external input.
type FenParseError struct {
	Field  string
	Reason string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("fen: invalid %s: %s", e.Field, e.Reason)
}

var pieceFromChar = map[byte]Piece{
	'K': WhiteKing, 'Q': WhiteQueen, 'R': WhiteRook, 'B': WhiteBishop, 'N': WhiteKnight, 'P': WhitePawn,
	'k': BlackKing, 'q': BlackQueen, 'r': BlackRook, 'b': BlackBishop, 'n': BlackKnight, 'p': BlackPawn,
}

// parseFen fills p from a FEN string, per the board/side/castling/en-
// passant/half-move/full-move field layout. The board field is walked
// rank-8-to-rank-1, file-a-to-file-h per rank, matching FEN's own
// left-to-right, top-to-bottom reading order.
func (p *Position) parseFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return &FenParseError{Field: "fen", Reason: "expected at least 4 space-separated fields"}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return &FenParseError{Field: "board", Reason: "expected 8 ranks separated by '/'"}
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc, ok := pieceFromChar[c]
			if !ok {
				return &FenParseError{Field: "board", Reason: fmt.Sprintf("unexpected character %q", c)}
			}
			if f > FileH {
				return &FenParseError{Field: "board", Reason: fmt.Sprintf("rank %d overflows 8 files", 8-i)}
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileH+1 {
			return &FenParseError{Field: "board", Reason: fmt.Sprintf("rank %d does not sum to 8 files", 8-i)}
		}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return &FenParseError{Field: "active color", Reason: fmt.Sprintf("expected 'w' or 'b', got %q", fields[1])}
	}
	if p.nextPlayer == Black {
		p.zobristKey ^= zobristBase.nextPlayer
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.state.CastlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.state.CastlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.state.CastlingRights.Add(CastlingBlackOO)
			case 'q':
				p.state.CastlingRights.Add(CastlingBlackOOO)
			default:
				return &FenParseError{Field: "castling", Reason: fmt.Sprintf("unexpected character %q", fields[2][i])}
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return &FenParseError{Field: "en passant", Reason: fmt.Sprintf("expected a square or '-', got %q", fields[3])}
		}
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return &FenParseError{Field: "en passant", Reason: fmt.Sprintf("not a valid square: %q", fields[3])}
		}
		p.state.EpSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return &FenParseError{Field: "half-move clock", Reason: fmt.Sprintf("not a non-negative integer: %q", fields[4])}
		}
		p.state.Rule50 = n
	}

	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return &FenParseError{Field: "full-move number", Reason: fmt.Sprintf("not a positive integer: %q", fields[5])}
		}
		p.ply = (n - 1) * 2
		if p.nextPlayer == Black {
			p.ply++
		}
	}

	p.zobristKey ^= zobristBase.castlingRights[p.state.CastlingRights]
	if p.state.EpSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.state.EpSquare.FileOf()]
	}

	return nil
}
