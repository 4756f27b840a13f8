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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to Square
		mt       MoveType
		promType PieceType
	}{
		{"e2e4", SqE2, SqE4, Normal, PtNone},
		{"e1g1 castling", SqE1, SqG1, Castle, PtNone},
		{"a7a8Q promotion", SqA7, SqA8, Promotion, Queen},
		{"e5d6 en passant", SqE5, SqD6, EnPassant, PtNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(tt.from, tt.to, tt.mt, tt.promType)
			assert.Equal(t, tt.from, m.From())
			assert.Equal(t, tt.to, m.To())
			assert.Equal(t, tt.mt, m.MoveType())
			if tt.mt == Promotion {
				assert.Equal(t, tt.promType, m.PromotionType())
			}
		})
	}
}

func TestMove_IsValid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.True(t, NewMove(SqE2, SqE4, Normal, PtNone).IsValid())
	assert.True(t, NewMove(SqA7, SqA8, Promotion, Queen).IsValid())
	assert.True(t, NewMove(SqA7, SqA8, Promotion, Knight).IsValid())
	assert.False(t, NewMove(SqA1, SqA1, Normal, PtNone).IsValid())
}

func TestMove_StringUci(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4, Normal, PtNone).StringUci())
	assert.Equal(t, "e7e5", NewMove(SqE7, SqE5, Normal, PtNone).StringUci())
	assert.Equal(t, "a7a8q", NewMove(SqA7, SqA8, Promotion, Queen).StringUci())
	assert.Equal(t, "e1g1", NewMove(SqE1, SqG1, Castle, PtNone).StringUci())
}
