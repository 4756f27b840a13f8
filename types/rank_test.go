/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, To any person obtaining a copy
 * of this software and associated documentation files (the "Software"), To deal
 * in the Software without restriction, including without limitation the rights
 * To use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and To permit persons To whom the Software is
 * furnished To do so, subject To the following conditions:
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

import "testing"

func TestRankType(t *testing.T) {
	tests := []struct {
		value    Rank
		expected int
	}{
		{Rank1, 0},
		{Rank8, 7},
		{RankNone, 8},
	}
	for _, test := range tests {
		if got := int(test.value); got != test.expected {
			t.Errorf("rank %s == %d expected. Got %d", test.value.String(), test.expected, got)
		}
	}
}

func TestRank_IsValid(t *testing.T) {
	tests := []struct {
		value    Rank
		expected bool
	}{
		{Rank1, true},
		{Rank8, true},
		{RankNone, false},
		{Rank(100), false},
	}
	for _, test := range tests {
		if got := test.value.IsValid(); got != test.expected {
			t.Errorf("rank.IsValid(%s) %t expected. Got %t", test.value.String(), test.expected, got)
		}
	}
}

func TestRank_String(t *testing.T) {
	tests := []struct {
		value    Rank
		expected string
	}{
		{Rank1, "1"},
		{Rank8, "8"},
		{RankNone, "-"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.expected {
			t.Errorf("rank label %s expected. Got %s", test.expected, got)
		}
	}
}

func TestRank_Relative(t *testing.T) {
	if Rank1.Relative(Black) != Rank8 {
		t.Errorf("Rank1.Relative(Black) should equal Rank8")
	}
	if Rank8.Relative(Black) != Rank1 {
		t.Errorf("Rank8.Relative(Black) should equal Rank1")
	}
	if Rank4.Relative(White) != Rank4 {
		t.Errorf("Rank4.Relative(White) should equal Rank4")
	}
}
