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

package perft

import (
	"fmt"
	"strconv"
	"strings"
)

// EPDCase is one line of an Extended Position Description perft suite:
// a FEN prefix followed by semicolon-separated "Dn <count>" opcodes
// giving the expected perft node count at depth n.
type EPDCase struct {
	Id     string
	Fen    string
	Depths map[int]uint64
}

// ParseEPDLine splits a single EPD perft line into its FEN and its
// "Dn <count>" opcodes. The grammar used by full EPD (operations like
// "bm", "id", arbitrary quoted comments) is broader than this needs;
// perft suites only ever carry Dn opcodes, so a semicolon/field scanner
// is used here instead of a general EPD parser.
func ParseEPDLine(line string) (EPDCase, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return EPDCase{}, fmt.Errorf("epd: empty or comment line")
	}

	parts := strings.Split(line, ";")
	fields := strings.Fields(parts[0])
	if len(fields) < 4 {
		return EPDCase{}, fmt.Errorf("epd: malformed FEN prefix %q", parts[0])
	}
	fen := strings.Join(fields[:4], " ")

	c := EPDCase{Fen: fen, Depths: map[int]uint64{}}
	for _, opcode := range parts[1:] {
		opcode = strings.TrimSpace(opcode)
		if opcode == "" {
			continue
		}
		fs := strings.Fields(opcode)
		if len(fs) != 2 || !strings.HasPrefix(fs[0], "D") {
			continue
		}
		depth, err := strconv.Atoi(fs[0][1:])
		if err != nil {
			continue
		}
		count, err := strconv.ParseUint(fs[1], 10, 64)
		if err != nil {
			continue
		}
		c.Depths[depth] = count
	}
	return c, nil
}

// ParseEPDSuite parses every Dn-bearing line in text, skipping blank
// lines, comment lines and lines that parse as neither.
func ParseEPDSuite(text string) []EPDCase {
	var cases []EPDCase
	for _, line := range strings.Split(text, "\n") {
		c, err := ParseEPDLine(line)
		if err != nil || len(c.Depths) == 0 {
			continue
		}
		cases = append(cases, c)
	}
	return cases
}

// Mismatch describes one depth at which a suite case's actual perft
// count disagreed with the expected count recorded in the EPD line.
type Mismatch struct {
	Fen      string
	Depth    int
	Expected uint64
	Actual   uint64
}

// RunSuite runs every case in cases at every depth it specifies and
// returns every mismatch found; an empty result means the suite passed.
func RunSuite(cases []EPDCase) ([]Mismatch, error) {
	var mismatches []Mismatch
	for _, c := range cases {
		for depth, want := range c.Depths {
			got, err := RunFen(c.Fen, depth)
			if err != nil {
				return nil, fmt.Errorf("epd: %s: %w", c.Fen, err)
			}
			if got.Nodes != want {
				mismatches = append(mismatches, Mismatch{
					Fen: c.Fen, Depth: depth, Expected: want, Actual: got.Nodes,
				})
			}
		}
	}
	return mismatches, nil
}
