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
	"cmp"
	"fmt"

	"github.com/mattn/go-shellwords"
)

// CommandKind enumerates what a single input token asks for.
type CommandKind int

const (
	CmdInsert CommandKind = iota
	CmdReportAndClear
	CmdPrint
	CmdQuit
)

func (c CommandKind) String() string {
	switch c {
	case CmdInsert:
		return "insert"
	case CmdReportAndClear:
		return "report-and-clear"
	case CmdPrint:
		return "print"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

// Command is a parsed input token. Key is only meaningful for CmdInsert.
type Command[K cmp.Ordered] struct {
	Kind CommandKind
	Key  K
}

// Parser turns input tokens into commands. The sentinel values are
// parsed with the same key parser, so "-0" or "00" mean clear for an
// int tree just like "0" does.
type Parser[K cmp.Ordered] struct {
	parse func(string) (K, error)
	clear K
	quit  K
	print K
	raw   SentinelConfig
}

// NewParser builds a parser for the given key parser and sentinels.
func NewParser[K cmp.Ordered](parse func(string) (K, error), sentinels SentinelConfig) (*Parser[K], error) {
	p := &Parser[K]{parse: parse, raw: sentinels}

	var err error
	if p.clear, err = parse(sentinels.Clear); err != nil {
		return nil, fmt.Errorf("clear sentinel: %w", err)
	}
	if p.quit, err = parse(sentinels.Quit); err != nil {
		return nil, fmt.Errorf("quit sentinel: %w", err)
	}
	if p.print, err = parse(sentinels.Print); err != nil {
		return nil, fmt.Errorf("print sentinel: %w", err)
	}
	if p.clear == p.quit || p.clear == p.print || p.quit == p.print {
		return nil, fmt.Errorf("sentinels must be distinct, got clear=%q quit=%q print=%q",
			sentinels.Clear, sentinels.Quit, sentinels.Print)
	}
	return p, nil
}

// Sentinels returns the sentinel tokens as configured.
func (p *Parser[K]) Sentinels() SentinelConfig {
	return p.raw
}

// Parse classifies one token. Errors wrap ErrMalformedInput.
func (p *Parser[K]) Parse(token string) (Command[K], error) {
	key, err := p.parse(token)
	if err != nil {
		return Command[K]{}, err
	}
	switch key {
	case p.clear:
		return Command[K]{Kind: CmdReportAndClear}, nil
	case p.quit:
		return Command[K]{Kind: CmdQuit}, nil
	case p.print:
		return Command[K]{Kind: CmdPrint}, nil
	}
	return Command[K]{Kind: CmdInsert, Key: key}, nil
}

// splitTokens splits an input line into tokens the way a shell would,
// so string keys may contain spaces when quoted.
func splitTokens(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse line %q: %v", ErrMalformedInput, line, err)
	}
	return args, nil
}
