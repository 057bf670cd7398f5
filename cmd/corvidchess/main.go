/*
 * corvidchess - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 corvidchess contributors
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

// Command corvidchess is a thin driver over the engine core: give it a
// FEN and a depth and it either runs perft or runs a search and prints
// the result. It is deliberately not a UCI loop (see SPEC_FULL.md §1
// Non-goals) - just the external collaborator the core's search_root
// and perft contracts expect.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"github.com/corvidchess/core/internal/config"
	"github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/movegen"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search or perft")
	perftDepth := flag.Int("perft", 0, "if > 0, run perft to this depth instead of searching")
	divide := flag.Bool("divide", false, "with -perft, print a per-root-move leaf count breakdown")
	depth := flag.Int("depth", 6, "search depth in plies")
	ttSizeMB := flag.Int("ttsize", 64, "transposition table size in megabytes")
	loglvl := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug)")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	logging.SetLevelFromString(config.Settings.Log.Level)
	if *loglvl != "" {
		logging.SetLevelFromString(*loglvl)
	}

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corvidchess: invalid FEN: %v\n", err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		runPerft(pos, *perftDepth, *divide)
		return
	}

	runSearch(pos, *depth, *ttSizeMB)
}

func runPerft(pos *position.Position, depth int, divide bool) {
	if divide {
		for move, nodes := range movegen.NewPerft().Divide(pos, depth) {
			out.Printf("%s: %d\n", move, nodes)
		}
		return
	}
	result := movegen.Report(pos, depth)
	out.Printf("Nodes: %d  Captures: %d  EnPassant: %d  Castles: %d  Promotions: %d  Checks: %d\n",
		result.Nodes, result.CaptureCounter, result.EnPassantCounter, result.CastleCounter,
		result.PromotionCounter, result.CheckCounter)
}

func runSearch(pos *position.Position, depth, ttSizeMB int) {
	s := search.New(ttSizeMB)
	result := s.IterativeDeepening(context.Background(), pos, depth)
	out.Printf("bestmove %s score %d depth %d nodes %d time %s\n",
		result.BestMove, result.Score, result.Depth, result.Nodes, result.Time)
}

func printVersionInfo() {
	out.Println("corvidchess - bitboard chess engine core")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
