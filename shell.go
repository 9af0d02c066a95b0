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

	"github.com/rs/zerolog"
)

// ShellOptions controls the presentation of the read loop.
type ShellOptions struct {
	Interactive bool // print prompts and blank separator lines
	Trace       bool // print a line for every rotation
	Check       bool // verify the tree after every insert
	LevelGap    int
}

// Shell is the interactive read loop: it reads tokens, hands keys to the
// tree and renders the results.
type Shell[K cmp.Ordered] struct {
	session *session[K]
	kind    KeyKind
	opts    ShellOptions
	in      *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	styles  *shellStyles
	log     zerolog.Logger
}

// NewShell creates a shell reading from in. Tree output goes to out and
// diagnostics to errOut.
func NewShell[K cmp.Ordered](kind KeyKind, parser *Parser[K], opts ShellOptions, in io.Reader, out, errOut io.Writer, log zerolog.Logger) *Shell[K] {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Shell[K]{
		session: newSession(parser, opts.Check, log),
		kind:    kind,
		opts:    opts,
		in:      scanner,
		out:     out,
		errOut:  errOut,
		styles:  newShellStyles(out),
		log:     log,
	}
}

// Run executes the read loop until the quit sentinel or end of input.
func (s *Shell[K]) Run() error {
	s.printTip()

	for {
		if s.opts.Interactive {
			fmt.Fprint(s.out, s.styles.Prompt.Render("Enter the value to insert:")+" ")
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			// end of input behaves like the quit sentinel
			if s.opts.Interactive {
				fmt.Fprintln(s.out)
			}
			break
		}

		quit, err := s.handleLine(s.in.Text())
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	fmt.Fprintln(s.out, "End")
	return nil
}

// handleLine applies every token on the line. A malformed token is
// reported and the rest of the line is discarded.
func (s *Shell[K]) handleLine(line string) (bool, error) {
	tokens, err := splitTokens(line)
	if err != nil {
		s.reportMalformed(err)
		return false, nil
	}

	for _, token := range tokens {
		outcome, err := s.session.applyToken(token)
		if errors.Is(err, ErrMalformedInput) {
			s.reportMalformed(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if s.opts.Interactive {
			fmt.Fprintln(s.out)
		}
		if quit := s.present(outcome); quit {
			return true, nil
		}
	}
	return false, nil
}

func (s *Shell[K]) present(outcome Outcome[K]) bool {
	switch outcome.Command.Kind {
	case CmdInsert:
		if s.opts.Trace {
			for _, r := range outcome.Rotations {
				fmt.Fprintln(s.out, s.styles.Trace.Render(fmt.Sprintf("%s %v", r.Kind, r.Key)))
			}
		}
	case CmdReportAndClear:
		fmt.Fprintf(s.out, "Balance = %d\n", outcome.Balance)
		fmt.Fprintln(s.out, s.styles.Success.Render("Tree cleared!"))
	case CmdPrint:
		if err := s.session.tree.Fprint(s.out, s.opts.LevelGap); err != nil {
			s.log.Warn().Err(err).Msg("failed to print tree")
		}
	case CmdQuit:
		return true
	}
	return false
}

func (s *Shell[K]) reportMalformed(err error) {
	s.log.Debug().Err(err).Msg("malformed input")
	fmt.Fprintln(s.errOut, s.styles.Error.Render("Invalid value!"))
	fmt.Fprintf(s.errOut, "Instantiate a tree with another type\n\n")
	s.printTip()
}

func (s *Shell[K]) printTip() {
	fmt.Fprint(s.out, tipText(s.kind, s.session.parser.Sentinels()))
}

// Stats returns what the shell did so far.
func (s *Shell[K]) Stats() Stats {
	return s.session.stats
}

func tipText(kind KeyKind, sentinels SentinelConfig) string {
	return fmt.Sprintf("Enter a value of type <%s> to insert into the tree.\n"+
		"Enter %s to clear the tree.\n"+
		"Enter %s to exit.\n"+
		"Enter %s to print the tree.\n\n",
		kind.TypeName(), sentinels.Clear, sentinels.Quit, sentinels.Print)
}
