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
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Stat           lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Stat: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
	}
}

// rotationItem is one entry of the rotation log
type rotationItem struct {
	code        string
	description string
}

func (i rotationItem) FilterValue() string { return i.code }
func (i rotationItem) Title() string       { return i.code }
func (i rotationItem) Description() string { return i.description }

// clipboardMsg reports the result of a copy
type clipboardMsg struct{ err error }

// tuiModel is the Bubble Tea application state. The tree is only touched
// from Update, which bubbletea runs on a single goroutine.
type tuiModel[K cmp.Ordered] struct {
	session  *session[K]
	kind     KeyKind
	levelGap int

	textInput   textinput.Model
	treeView    viewport.Model
	rotationLog list.Model
	helpView    viewport.Model

	focusOnLog bool
	showHelp   bool
	rotated    bool // the 90° layout instead of the box drawing one
	status     string
	statusErr  bool
	ready      bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer
	helpCache       *cache.Cache

	width  int
	height int
}

func newTUIModel[K cmp.Ordered](s *session[K], kind KeyKind, levelGap int, hc *cache.Cache) tuiModel[K] {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Type a value of type <%s>...", kind.TypeName())
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	rotationLog := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	rotationLog.SetShowTitle(false)
	rotationLog.SetShowHelp(false)
	rotationLog.SetFilteringEnabled(false)

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := tuiModel[K]{
		session:         s,
		kind:            kind,
		levelGap:        levelGap,
		textInput:       ti,
		treeView:        treeView,
		rotationLog:     rotationLog,
		helpView:        helpView,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		helpCache:       hc,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m tuiModel[K]) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m tuiModel[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.updateHelp()
			}
			return m, nil
		case "ctrl+y":
			content := m.renderTree()
			return m, func() tea.Msg {
				return clipboardMsg{err: clipboard.WriteAll(content)}
			}
		case "tab":
			m.focusOnLog = !m.focusOnLog
			if m.focusOnLog {
				m.textInput.Blur()
			} else {
				m.textInput.Focus()
			}
			return m, nil
		case "enter":
			if !m.focusOnLog {
				return m.submit()
			}
		}

		if m.focusOnLog {
			m.rotationLog, cmd = m.rotationLog.Update(msg)
		} else if m.showHelp {
			m.helpView, cmd = m.helpView.Update(msg)
		} else {
			m.textInput, cmd = m.textInput.Update(msg)
		}
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 tree copied to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		if m.showHelp {
			m.updateHelp()
		}
		return m, nil
	}

	m.treeView, cmd = m.treeView.Update(msg)
	return m, cmd
}

// submit applies every token of the input line
func (m tuiModel[K]) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if line == "" {
		return m, nil
	}

	tokens, err := splitTokens(line)
	if err != nil {
		m.setStatus("Invalid value! "+err.Error(), true)
		return m, nil
	}

	for _, token := range tokens {
		outcome, err := m.session.applyToken(token)
		if errors.Is(err, ErrMalformedInput) {
			m.setStatus(fmt.Sprintf("Invalid value! Enter a value of type <%s>", m.kind.TypeName()), true)
			break
		}
		if err != nil {
			m.setStatus(err.Error(), true)
			break
		}

		switch outcome.Command.Kind {
		case CmdInsert:
			if outcome.Added {
				m.setStatus(fmt.Sprintf("inserted %v", outcome.Command.Key), false)
			} else {
				m.setStatus(fmt.Sprintf("%v is already in the tree", outcome.Command.Key), false)
			}
			m.logRotations(outcome)
		case CmdReportAndClear:
			m.setStatus(fmt.Sprintf("Balance = %d. Tree cleared!", outcome.Balance), false)
		case CmdPrint:
			m.rotated = !m.rotated
		case CmdQuit:
			return m, tea.Quit
		}
	}

	m.refreshTree()
	return m, nil
}

func (m *tuiModel[K]) logRotations(outcome Outcome[K]) {
	for _, r := range outcome.Rotations {
		item := rotationItem{
			code:        fmt.Sprintf("%s %v", r.Kind, r.Key),
			description: fmt.Sprintf("%s rotation while inserting %v", r.Kind.Name(), outcome.Command.Key),
		}
		// newest first
		m.rotationLog.InsertItem(0, item)
	}
}

func (m *tuiModel[K]) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m tuiModel[K]) renderTree() string {
	if !m.rotated {
		return m.session.tree.String()
	}
	var sb strings.Builder
	if err := m.session.tree.Fprint(&sb, m.levelGap); err != nil {
		return err.Error()
	}
	return sb.String()
}

func (m *tuiModel[K]) refreshTree() {
	m.treeView.SetContent(m.renderTree())
}

func (m *tuiModel[K]) updateHelp() {
	width := m.helpView.Width
	helpTxt := GetOrRenderHelp(m.helpCache, "tui", width, func() (string, error) {
		source := tuiHelpMarkdown(m.session.parser.Sentinels())
		if m.glamourRenderer == nil {
			return source, nil
		}
		return m.glamourRenderer.Render(source)
	})
	m.helpView.SetContent(helpTxt)
}

func (m *tuiModel[K]) updateLayout() {
	inputHeight := 3
	bodyHeight := max(m.height-inputHeight-7, 1)
	leftWidth := max((m.width*6/10)-1, 6)
	rightWidth := max(m.width-leftWidth-3, 4)

	m.textInput.Width = leftWidth - 4
	m.treeView.Width = leftWidth - 2
	m.treeView.Height = bodyHeight
	m.helpView.Width = leftWidth - 2
	m.helpView.Height = bodyHeight
	m.rotationLog.SetSize(rightWidth-2, inputHeight+bodyHeight)
}

// View renders the UI
func (m tuiModel[K]) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, inputTitle := m.styles.BorderFocused, " 🌱 Insert (Active) "
	logStyle, logTitle := m.styles.BorderBlurred, " 🔄 Rotations "
	if m.focusOnLog {
		inputStyle, inputTitle = m.styles.BorderBlurred, " 🌱 Insert "
		logStyle, logTitle = m.styles.BorderFocused, " 🔄 Rotations (Active) "
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(inputTitle),
			m.textInput.View(),
		))

	bodyTitle, bodyContent := " 🌳 Tree ", m.treeView.View()
	if m.rotated {
		bodyTitle = " 🌳 Tree (rotated) "
	}
	if m.showHelp {
		bodyTitle, bodyContent = " 📖 Help ", m.helpView.View()
	}
	treeBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(bodyTitle),
			bodyContent,
		))

	logBox := logStyle.
		Width(rightWidth).
		Height(inputHeight + bodyHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(logTitle),
			m.rotationLog.View(),
		))

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox),
		logBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m tuiModel[K]) renderStatus() string {
	tree := m.session.tree
	stats := fmt.Sprintf("size %s  height %s  balance %s  rotations %s",
		m.styles.Stat.Render(fmt.Sprint(tree.Len())),
		m.styles.Stat.Render(fmt.Sprint(tree.Height())),
		m.styles.Stat.Render(fmt.Sprintf("%+d", tree.BalanceFactor())),
		m.styles.Stat.Render(fmt.Sprint(m.session.stats.TotalRotations())),
	)
	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(stats + "   " + status)
}

func (m tuiModel[K]) renderKeyHelp() string {
	sentinels := m.session.parser.Sentinels()
	keys := []string{"enter", sentinels.Clear, sentinels.Print, "tab", "ctrl+y", "f1", "esc"}
	descs := []string{"insert", "report & clear", "toggle layout", "switch focus", "copy tree", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runTUI starts the Bubble Tea application
func runTUI[K cmp.Ordered](s *session[K], kind KeyKind, levelGap int, hc *cache.Cache) error {
	p := tea.NewProgram(newTUIModel(s, kind, levelGap, hc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
