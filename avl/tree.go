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

import "cmp"

// Tree holds the root of an AVL tree. The zero value is an empty tree
// ready to use.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
	hook  func(Rotation[K])
}

// Option configures a Tree created by New.
type Option[K cmp.Ordered] func(*Tree[K])

// WithRotationHook registers fn to be called once for every rebalancing
// event during Insert. A double rotation is reported as a single event.
func WithRotationHook[K cmp.Ordered](fn func(Rotation[K])) Option[K] {
	return func(t *Tree[K]) {
		t.hook = fn
	}
}

// New creates an initially empty tree.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	t := &Tree[K]{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return tree.root.getHeight()
}

// BalanceFactor returns height(left) - height(right) at the root, 0 when
// the tree is empty.
func (tree *Tree[K]) BalanceFactor() int {
	return tree.root.balanceFactor()
}

// Root returns the key stored at the root.
func (tree *Tree[K]) Root() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.key, true
}

// Clear drops every node. Clearing an empty tree does nothing.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	p := tree.root
	for p != nil {
		switch cmp.Compare(key, p.key) {
		case -1:
			p = p.left
		case +1:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Min returns the lowest key.
func (tree *Tree[K]) Min() (K, bool) {
	p := tree.root
	if p == nil {
		var zero K
		return zero, false
	}
	for p.left != nil {
		p = p.left
	}
	return p.key, true
}

// Max returns the highest key.
func (tree *Tree[K]) Max() (K, bool) {
	p := tree.root
	if p == nil {
		var zero K
		return zero, false
	}
	for p.right != nil {
		p = p.right
	}
	return p.key, true
}
