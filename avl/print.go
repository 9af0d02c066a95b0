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

package avl

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strings"
)

// DefaultLevelGap is the indentation added per level by Fprint.
const DefaultLevelGap = 5

// EmptyMessage is printed by Fprint for a tree without nodes.
const EmptyMessage = "The tree is empty"

// Fprint writes the tree rotated 90° counter-clockwise: the right subtree
// comes first, the root sits at the left margin, and every level is
// indented by gap more spaces than its parent.
func (tree *Tree[K]) Fprint(w io.Writer, gap int) error {
	bw := bufio.NewWriter(w)
	if tree.root == nil {
		fmt.Fprintln(bw, EmptyMessage)
		return bw.Flush()
	}
	if gap < 0 {
		gap = DefaultLevelGap
	}
	printRotated(bw, tree.root, 0, gap)
	return bw.Flush()
}

func printRotated[K cmp.Ordered](w *bufio.Writer, p *node[K], indent int, gap int) {
	if p == nil {
		return
	}
	printRotated(w, p.right, indent+gap, gap)
	fmt.Fprintf(w, "\n%s%v\n", strings.Repeat(" ", indent), p.key)
	printRotated(w, p.left, indent+gap, gap)
}

// String draws the tree sideways with box drawing characters.
// Should not be used for large trees.
func (tree *Tree[K]) String() string {
	if tree == nil || tree.root == nil {
		return "────┤ empty"
	}
	var sb strings.Builder
	drawBranch(&sb, tree.root, "", false, true)
	return sb.String()
}

func drawBranch[K cmp.Ordered](sb *strings.Builder, p *node[K], prefix string, tail bool, isRoot bool) {
	if p.right != nil {
		drawBranch(sb, p.right, rightNodePrefix(prefix, tail), false, false)
	}
	fmt.Fprintf(sb, "%s %v\n", branchMarker(prefix, isRoot, tail), p.key)
	if p.left != nil {
		drawBranch(sb, p.left, leftNodePrefix(prefix, tail, isRoot), true, false)
	}
}

func branchMarker(prefix string, isRoot bool, tail bool) string {
	if isRoot {
		return prefix + "───"
	} else if tail {
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightNodePrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│   "
	}
	return prefix + "    "
}

func leftNodePrefix(prefix string, tail bool, isRoot bool) string {
	if tail || isRoot {
		return prefix + "    "
	}
	return prefix + "│   "
}

// Shape returns the structure of the tree in a compact pre-order form:
// a leaf is just its key, an inner node is key(left,right) and a missing
// child is written as "-". The empty tree has an empty shape.
func (tree *Tree[K]) Shape() string {
	if tree.root == nil {
		return ""
	}
	var sb strings.Builder
	writeShape(&sb, tree.root)
	return sb.String()
}

func writeShape[K cmp.Ordered](sb *strings.Builder, p *node[K]) {
	if p == nil {
		sb.WriteString("-")
		return
	}
	fmt.Fprint(sb, p.key)
	if p.left == nil && p.right == nil {
		return
	}
	sb.WriteString("(")
	writeShape(sb, p.left)
	sb.WriteString(",")
	writeShape(sb, p.right)
	sb.WriteString(")")
}
