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

import "testing"

func TestFileType(t *testing.T) {
	tests := []struct {
		value    File
		expected int
	}{
		{FileA, 0},
		{FileH, 7},
		{FileNone, 8},
	}
	for _, test := range tests {
		if got := int(test.value); got != test.expected {
			t.Errorf("file %s == %d expected. Got %d", test.value.String(), test.expected, got)
		}
	}
}

func TestFile_IsValid(t *testing.T) {
	tests := []struct {
		value    File
		expected bool
	}{
		{FileA, true},
		{FileH, true},
		{FileNone, false},
		{File(100), false},
	}
	for _, test := range tests {
		if got := test.value.IsValid(); got != test.expected {
			t.Errorf("file.IsValid(%s) %t expected. Got %t", test.value.String(), test.expected, got)
		}
	}
}

func TestFile_String(t *testing.T) {
	tests := []struct {
		value    File
		expected string
	}{
		{FileA, "a"},
		{FileH, "h"},
		{FileNone, "-"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.expected {
			t.Errorf("file label %s expected. Got %s", test.expected, got)
		}
	}
}

func TestFile_Bb(t *testing.T) {
	if FileA.Bb() != FileABb {
		t.Errorf("FileA.Bb() should equal FileABb")
	}
	if FileH.Bb() != FileHBb {
		t.Errorf("FileH.Bb() should equal FileHBb")
	}
}
