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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode guesses whether the terminal has a light or dark
// background from the environment.
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background", low background numbers are dark
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

// ColorScheme holds the termui colors of the tree viewer.
type ColorScheme struct {
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
	Selected    ui.Color
	OnSelected  ui.Color
}

func newColorScheme(mode TerminalMode) ColorScheme {
	if mode == TerminalModeLight {
		return ColorScheme{
			Border:      ui.Color(8),
			BorderFocus: ui.Color(4),
			Text:        ui.ColorBlack,
			TextMuted:   ui.Color(240),
			Selected:    ui.Color(4),
			OnSelected:  ui.ColorWhite,
		}
	}
	return ColorScheme{
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
		Selected:    ui.Color(6),
		OnSelected:  ui.ColorBlack,
	}
}

// shellStyles colors the line-oriented output of the shell. The renderer
// is bound to the output writer, so output that is not a terminal stays
// free of escape codes.
type shellStyles struct {
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Trace   lipgloss.Style
	Success lipgloss.Style
}

func newShellStyles(w io.Writer) *shellStyles {
	r := lipgloss.NewRenderer(w)
	return &shellStyles{
		Prompt:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "5", Dark: "205"}).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "196"}).Bold(true),
		Trace:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "39"}),
		Success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "46"}),
	}
}
