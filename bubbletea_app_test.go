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
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUIModel(t *testing.T) tuiModel[int] {
	t.Helper()
	s := newSession(intParser(t), true, zerolog.Nop())
	return newTUIModel(s, KeyInt, 5, NewHelpCache(time.Minute))
}

func submitLine(t *testing.T, m tuiModel[int], line string) (tuiModel[int], tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := next.(tuiModel[int])
	require.True(t, ok)
	return model, cmd
}

func TestTUIInsertAndRotationLog(t *testing.T) {
	m := newTestTUIModel(t)

	m, cmd := submitLine(t, m, "10 20 30")
	assert.Nil(t, cmd)
	assert.Equal(t, []int{10, 20, 30}, m.session.tree.Keys())
	assert.Equal(t, "", m.textInput.Value())
	assert.Equal(t, "inserted 30", m.status)
	assert.False(t, m.statusErr)

	items := m.rotationLog.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "RSE 10", items[0].(rotationItem).Title())
	assert.Contains(t, m.renderTree(), "20")
}

func TestTUIDuplicateAndMalformed(t *testing.T) {
	m := newTestTUIModel(t)

	m, _ = submitLine(t, m, "4 4")
	assert.Equal(t, "4 is already in the tree", m.status)

	m, _ = submitLine(t, m, "5 x 6")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "Invalid value!")
	assert.Equal(t, []int{4, 5}, m.session.tree.Keys())
}

func TestTUISentinels(t *testing.T) {
	m := newTestTUIModel(t)

	m, _ = submitLine(t, m, "1 2")
	assert.False(t, m.rotated)
	m, _ = submitLine(t, m, "-2")
	assert.True(t, m.rotated)
	assert.Equal(t, "\n     2\n\n1\n", m.renderTree())

	m, _ = submitLine(t, m, "0")
	assert.Equal(t, "Balance = -1. Tree cleared!", m.status)
	assert.True(t, m.session.tree.IsEmpty())

	_, cmd := submitLine(t, m, "-1")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUIFocusAndHelp(t *testing.T) {
	m := newTestTUIModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(tuiModel[int])
	assert.True(t, m.focusOnLog)
	assert.False(t, m.textInput.Focused())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(tuiModel[int])
	assert.False(t, m.focusOnLog)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(tuiModel[int])
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(tuiModel[int])
	assert.True(t, m.showHelp)
	assert.NotEmpty(t, GetHelpPage(m.helpCache, helpCacheKey("tui", m.helpView.Width)))
}

func TestTUIView(t *testing.T) {
	m := newTestTUIModel(t)
	assert.Equal(t, "Initializing...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(tuiModel[int])
	assert.True(t, strings.HasPrefix(m.View(), "Terminal too small"))

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(tuiModel[int])
	m, _ = submitLine(t, m, "8 3")
	view := m.View()
	assert.Contains(t, view, "Rotations")
	assert.Contains(t, view, "Insert")
	assert.Contains(t, view, "size")
}

func TestTUIClipboardMessage(t *testing.T) {
	m := newTestTUIModel(t)

	next, _ := m.Update(clipboardMsg{})
	m = next.(tuiModel[int])
	assert.Contains(t, m.status, "copied")
	assert.False(t, m.statusErr)

	next, _ = m.Update(clipboardMsg{err: assert.AnError})
	m = next.(tuiModel[int])
	assert.True(t, m.statusErr)
}
