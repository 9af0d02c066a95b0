// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlsh/avl"
)

// ReplayOptions controls a non-interactive replay of recorded input.
type ReplayOptions struct {
	Quiet    bool // no progress bar
	Check    bool
	Trace    bool
	LevelGap int
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	Tokens  int
	Skipped int
	Stopped bool // the quit sentinel was seen before the end
	Stats   Stats
	Len     int
	Height  int
	Balance int
}

// readTokens tokenizes every line of r. Lines that cannot be tokenized
// are returned as a count of skipped lines.
func readTokens(r io.Reader, log zerolog.Logger) ([]string, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tokens []string
	skipped := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		parts, err := splitTokens(scanner.Text())
		if err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("skipping line")
			skipped += 1
			continue
		}
		tokens = append(tokens, parts...)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read input: %w", err)
	}
	return tokens, skipped, nil
}

// replayFile feeds the file at path through the same command parser the
// shell uses.
func replayFile[K cmp.Ordered](path string, parser *Parser[K], opts ReplayOptions, out io.Writer, log zerolog.Logger) (ReplayResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ReplayResult{}, fmt.Errorf("replay file %s not found", path)
		}
		return ReplayResult{}, err
	}
	defer file.Close()

	return replay(file, parser, opts, out, log)
}

func replay[K cmp.Ordered](r io.Reader, parser *Parser[K], opts ReplayOptions, out io.Writer, log zerolog.Logger) (ReplayResult, error) {
	tokens, skipped, err := readTokens(r, log)
	if err != nil {
		return ReplayResult{}, err
	}

	var bar *progressbar.ProgressBar
	if !opts.Quiet {
		bar = progressbar.NewOptions(len(tokens),
			progressbar.OptionSetDescription("🌳 Replaying..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	s := newSession(parser, opts.Check, log)
	result := ReplayResult{Tokens: len(tokens), Skipped: skipped}

	for _, token := range tokens {
		if bar != nil {
			bar.Add(1)
		}
		outcome, err := s.applyToken(token)
		if errors.Is(err, ErrMalformedInput) {
			result.Skipped += 1
			continue
		}
		if err != nil {
			return result, err
		}

		switch outcome.Command.Kind {
		case CmdInsert:
			if opts.Trace {
				for _, rot := range outcome.Rotations {
					fmt.Fprintf(out, "%s %v\n", rot.Kind, rot.Key)
				}
			}
		case CmdReportAndClear:
			fmt.Fprintf(out, "Balance = %d\n", outcome.Balance)
			fmt.Fprintln(out, "Tree cleared!")
		case CmdPrint:
			if err := s.tree.Fprint(out, opts.LevelGap); err != nil {
				return result, err
			}
		}
		if outcome.Command.Kind == CmdQuit {
			result.Stopped = true
			break
		}
	}
	if bar != nil {
		bar.Finish()
	}

	result.Stats = s.stats
	result.Len = s.tree.Len()
	result.Height = s.tree.Height()
	result.Balance = s.tree.BalanceFactor()
	return result, nil
}

func printReplaySummary(w io.Writer, r ReplayResult) {
	fmt.Fprintf(w, "tokens:      %d\n", r.Tokens)
	fmt.Fprintf(w, "inserted:    %d\n", r.Stats.Inserted)
	fmt.Fprintf(w, "duplicates:  %d\n", r.Stats.Duplicates)
	fmt.Fprintf(w, "clears:      %d\n", r.Stats.Clears)
	fmt.Fprintf(w, "skipped:     %d\n", r.Skipped)

	kinds := make([]avl.RotationKind, 0, len(r.Stats.Rotations))
	for k := range r.Stats.Rotations {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	fmt.Fprintf(w, "rotations:   %d\n", r.Stats.TotalRotations())
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s %-10s %d\n", k, k.Name(), r.Stats.Rotations[k])
	}

	fmt.Fprintf(w, "final size:  %d\n", r.Len)
	fmt.Fprintf(w, "height:      %d\n", r.Height)
	fmt.Fprintf(w, "balance:     %d\n", r.Balance)
	if r.Stopped {
		fmt.Fprintln(w, "stopped at the quit sentinel")
	}
}
