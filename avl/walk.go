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
	"cmp"
	"iter"
)

// InOrder returns a sequence of every key in ascending order together
// with its depth (the root has depth 0).
//
// The sequence reads the tree each time it is ranged over. The tree must
// not be modified while a range loop over it is running.
func (tree *Tree[K]) InOrder() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		inOrder(tree.root, 0, yield)
	}
}

// PreOrder returns a sequence of (key, depth) pairs visiting each node
// before its left and then its right subtree.
func (tree *Tree[K]) PreOrder() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		preOrder(tree.root, 0, yield)
	}
}

// Keys returns the keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for k := range tree.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

func inOrder[K cmp.Ordered](p *node[K], depth int, yield func(K, int) bool) bool {
	if p == nil {
		return true
	}
	return inOrder(p.left, depth+1, yield) &&
		yield(p.key, depth) &&
		inOrder(p.right, depth+1, yield)
}

func preOrder[K cmp.Ordered](p *node[K], depth int, yield func(K, int) bool) bool {
	if p == nil {
		return true
	}
	return yield(p.key, depth) &&
		preOrder(p.left, depth+1, yield) &&
		preOrder(p.right, depth+1, yield)
}

// Subtree is a detached copy of part of a tree. Changing it has no effect
// on the tree it was taken from.
type Subtree[K cmp.Ordered] struct {
	Key    K
	Height int
	Left   *Subtree[K]
	Right  *Subtree[K]
}

// Balance returns height(Left) - height(Right).
func (s *Subtree[K]) Balance() int {
	return s.Left.height() - s.Right.height()
}

func (s *Subtree[K]) height() int {
	if s == nil {
		return 0
	}
	return s.Height
}

// Snapshot copies the shape of the tree, nil when the tree is empty.
func (tree *Tree[K]) Snapshot() *Subtree[K] {
	return snapshot(tree.root)
}

func snapshot[K cmp.Ordered](p *node[K]) *Subtree[K] {
	if p == nil {
		return nil
	}
	return &Subtree[K]{
		Key:    p.key,
		Height: p.height,
		Left:   snapshot(p.left),
		Right:  snapshot(p.right),
	}
}
