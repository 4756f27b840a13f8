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

// Package config holds the engine's TOML-backed settings: search depth
// limit, transposition table size and log level. Settings is populated
// with defaults by the init() functions in this package's other files,
// then Setup() overlays whatever a config file on disk provides.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// LogLevel is the effective standard-logger level, resolved from
	// Settings.Log.LogLvl by setupLogLvl().
	LogLevel = 2

	// SearchLogLevel is the effective search-logger level, resolved from
	// Settings.Log.SearchLogLvl by setupLogLvl().
	SearchLogLevel = 2

	// Settings is the global configuration, populated by Setup().
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads config.toml (if present) over the package defaults and
// resolves the derived LogLevel/SearchLogLevel values. Idempotent: a
// second call is a no-op.
func Setup(path string) {
	if initialized {
		return
	}

	if path == "" {
		path = "config/config.toml"
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: no config file loaded, using defaults:", err)
	}

	setupLogLvl()

	initialized = true
}
