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

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/avlsh/avl"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// nodeLabel is the text of one row in the tree widget
type nodeLabel string

func (l nodeLabel) String() string { return string(l) }

// buildTreeNodes converts a snapshot into termui tree nodes. Children are
// listed left first and tagged L or R so a missing side stays visible.
func buildTreeNodes[K cmp.Ordered](snap *avl.Subtree[K]) []*widgets.TreeNode {
	if snap == nil {
		return []*widgets.TreeNode{}
	}
	return []*widgets.TreeNode{buildTreeNode(snap, "")}
}

func buildTreeNode[K cmp.Ordered](s *avl.Subtree[K], side string) *widgets.TreeNode {
	label := fmt.Sprintf("%v (h=%d, bf=%+d)", s.Key, s.Height, s.Balance())
	if side != "" {
		label = side + " " + label
	}
	n := &widgets.TreeNode{
		Value:    nodeLabel(label),
		Expanded: true,
		Nodes:    []*widgets.TreeNode{},
	}
	if s.Left != nil {
		n.Nodes = append(n.Nodes, buildTreeNode(s.Left, "L"))
	}
	if s.Right != nil {
		n.Nodes = append(n.Nodes, buildTreeNode(s.Right, "R"))
	}
	return n
}

// treeSummary is the text of the stats panel
func treeSummary[K cmp.Ordered](s *session[K]) string {
	tree := s.tree
	text := fmt.Sprintf("Keys:      %d\nHeight:    %d\nBalance:   %+d\nRotations: %d",
		tree.Len(), tree.Height(), tree.BalanceFactor(), s.stats.TotalRotations())
	if lo, ok := tree.Min(); ok {
		hi, _ := tree.Max()
		text += fmt.Sprintf("\nRange:     %v .. %v", lo, hi)
	}
	if s.stats.Duplicates > 0 {
		text += fmt.Sprintf("\nDuplicates ignored: %d", s.stats.Duplicates)
	}
	return text
}

// rotationRows lists the rotations of a session by kind
func rotationRows(stats Stats) []string {
	rows := []string{}
	for _, kind := range []avl.RotationKind{avl.RotateRight, avl.RotateLeft, avl.RotateLeftRight, avl.RotateRightLeft} {
		rows = append(rows, fmt.Sprintf("%s %-10s %d", kind, kind.Name(), stats.Rotations[kind]))
	}
	return rows
}

func layoutViewer(grid *ui.Grid, treeWidget *widgets.Tree, statsPara *widgets.Paragraph, rotationList *widgets.List, keysPara *widgets.Paragraph) {
	grid.Set(
		ui.NewCol(0.65, treeWidget),
		ui.NewCol(0.35,
			ui.NewRow(0.35, statsPara),
			ui.NewRow(0.3, rotationList),
			ui.NewRow(0.35, keysPara),
		),
	)
}

// runViewer opens a read-only browser of the session's tree and blocks
// until the user quits.
func runViewer[K cmp.Ordered](s *session[K]) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	colors := newColorScheme(detectTerminalMode())

	treeWidget := widgets.NewTree()
	treeWidget.Title = " 🌳 Tree "
	treeWidget.TextStyle = ui.NewStyle(colors.Text)
	treeWidget.SelectedRowStyle = ui.NewStyle(colors.OnSelected, colors.Selected)
	treeWidget.BorderStyle = ui.NewStyle(colors.BorderFocus)
	treeWidget.WrapText = false
	treeWidget.SetNodes(buildTreeNodes(s.tree.Snapshot()))

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Stats "
	statsPara.Text = treeSummary(s)
	statsPara.TextStyle = ui.NewStyle(colors.Text)
	statsPara.BorderStyle = ui.NewStyle(colors.Border)

	rotationList := widgets.NewList()
	rotationList.Title = " Rotations "
	rotationList.Rows = rotationRows(s.stats)
	rotationList.TextStyle = ui.NewStyle(colors.TextMuted)
	rotationList.BorderStyle = ui.NewStyle(colors.Border)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.Text = `[j/<down>](fg:green) -> Move down
[k/<up>](fg:green) -> Move up
[<enter>](fg:green) -> Expand or collapse
[E/C](fg:green) -> Expand or collapse all
[g/G](fg:green) -> Top or bottom
[q](fg:green) or [<esc>](fg:green) -> Quit`
	keysPara.BorderStyle = ui.NewStyle(colors.Border)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	layoutViewer(grid, treeWidget, statsPara, rotationList, keysPara)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			treeWidget.ScrollDown()
		case "k", "<Up>":
			treeWidget.ScrollUp()
		case "<Enter>":
			treeWidget.ToggleExpand()
		case "E":
			treeWidget.ExpandAll()
		case "C":
			treeWidget.CollapseAll()
		case "g", "<Home>":
			treeWidget.ScrollTop()
		case "G", "<End>":
			treeWidget.ScrollBottom()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			} else {
				termWidth, termHeight := ui.TerminalDimensions()
				grid.SetRect(0, 0, termWidth, termHeight)
			}
			ui.Clear()
		}
		ui.Render(grid)
	}
}
