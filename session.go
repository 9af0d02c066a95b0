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

	"github.com/rs/zerolog"

	"github.com/cybrota/avlsh/avl"
)

// Stats counts what a session did to its tree.
type Stats struct {
	Inserted   int
	Duplicates int
	Clears     int
	Prints     int
	Rotations  map[avl.RotationKind]int
}

// TotalRotations sums rotations over all kinds.
func (s Stats) TotalRotations() int {
	total := 0
	for _, n := range s.Rotations {
		total += n
	}
	return total
}

// Outcome is the result of applying one command, for the presentation
// side to report.
type Outcome[K cmp.Ordered] struct {
	Command   Command[K]
	Added     bool
	Balance   int // balance factor reported before a clear
	Rotations []avl.Rotation[K]
}

// session owns one tree and applies parsed commands to it. Every front-end
// (shell, replay, tui) drives the tree through a session.
type session[K cmp.Ordered] struct {
	tree    *avl.Tree[K]
	parser  *Parser[K]
	check   bool
	stats   Stats
	pending []avl.Rotation[K]
	log     zerolog.Logger
}

func newSession[K cmp.Ordered](parser *Parser[K], check bool, log zerolog.Logger) *session[K] {
	s := &session[K]{
		parser: parser,
		check:  check,
		stats:  Stats{Rotations: map[avl.RotationKind]int{}},
		log:    log,
	}
	s.tree = avl.New(avl.WithRotationHook(s.onRotation))
	return s
}

func (s *session[K]) onRotation(r avl.Rotation[K]) {
	s.pending = append(s.pending, r)
	s.stats.Rotations[r.Kind] += 1
	s.log.Debug().
		Str("rotation", r.Kind.Name()).
		Str("code", r.Kind.String()).
		Interface("key", r.Key).
		Msg("rebalanced")
}

// apply runs one command against the tree. An error is only returned when
// the invariant check is enabled and fails.
func (s *session[K]) apply(command Command[K]) (Outcome[K], error) {
	s.pending = nil
	out := Outcome[K]{Command: command}

	switch command.Kind {
	case CmdInsert:
		out.Added = s.tree.Insert(command.Key)
		if out.Added {
			s.stats.Inserted += 1
		} else {
			s.stats.Duplicates += 1
			s.log.Debug().Interface("key", command.Key).Msg("duplicate key ignored")
		}
		out.Rotations = s.pending
		if s.check {
			if err := s.tree.Check(); err != nil {
				return out, fmt.Errorf("invariant check after inserting %v: %w", command.Key, err)
			}
		}
	case CmdReportAndClear:
		out.Balance = s.tree.BalanceFactor()
		s.tree.Clear()
		s.stats.Clears += 1
	case CmdPrint:
		s.stats.Prints += 1
	case CmdQuit:
	}
	return out, nil
}

// applyToken parses and applies a single token.
func (s *session[K]) applyToken(token string) (Outcome[K], error) {
	command, err := s.parser.Parse(token)
	if err != nil {
		s.log.Info().Err(err).Str("token", token).Msg("rejected input")
		return Outcome[K]{}, err
	}
	return s.apply(command)
}
