/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package uci

import (
	"strconv"
	"strings"

	"github.com/chesscore/chesscore/config"
)

func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: Button},
		"Hash": {NameID: "Hash", HandlerFunc: hashSize, OptionType: Spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			CurrentValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			MinValue:     "1", MaxValue: strconv.Itoa(64_000)},
		"Depth": {NameID: "Depth", HandlerFunc: depthLimit, OptionType: Spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.DepthLimit),
			CurrentValue: strconv.Itoa(config.Settings.Search.DepthLimit),
			MinValue:     "1", MaxValue: "128"},
	}
}

// GetOptions returns all available uci options as a slice of strings to be
// sent to the UCI ui during the "uci" response.
func (o optionMap) GetOptions() []string {
	var options []string
	for _, opt := range uciOptions {
		options = append(options, opt.String())
	}
	return options
}

// String renders a uci option the way the UCI protocol's "uci" response
// requires during initialization.
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Button:
		os.WriteString("button")
	}
	return os.String()
}

type uciOptionType int

const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Button uciOptionType = 2
)

type optionHandler func(*Handler, *uciOption)

// uciOption is one entry of the "uci" response's option list; HandlerFunc
// runs when "setoption" sets this option's CurrentValue.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap

func clearHash(u *Handler, o *uciOption) {
	u.tt.Clear()
	log.Debug("cleared transposition table")
}

func hashSize(u *Handler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("invalid Hash value %q: %v", o.CurrentValue, err)
		return
	}
	config.Settings.Search.TTSizeMB = v
	u.tt.Resize(v)
}

func depthLimit(u *Handler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("invalid Depth value %q: %v", o.CurrentValue, err)
		return
	}
	config.Settings.Search.DepthLimit = v
}
