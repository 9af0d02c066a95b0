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

// Insert adds key to the tree and rebalances it. Inserting a key that is
// already present leaves the tree untouched and returns false.
func (tree *Tree[K]) Insert(key K) bool {
	added := false
	tree.root, added = tree.insertRecursive(tree.root, key)
	if added {
		tree.count += 1
	}
	return added
}

// insertRecursive returns the possibly new root of the subtree
func (tree *Tree[K]) insertRecursive(p *node[K], key K) (*node[K], bool) {
	if p == nil {
		return &node[K]{key: key, height: 1}, true
	}

	added := false
	switch cmp.Compare(key, p.key) {
	case -1:
		p.left, added = tree.insertRecursive(p.left, key)
	case +1:
		p.right, added = tree.insertRecursive(p.right, key)
	default:
		return p, false
	}

	p.updateHeight()
	return tree.rebalance(p, key), added
}

// rebalance classifies the imbalance at p using the key that was just
// inserted below it.
func (tree *Tree[K]) rebalance(p *node[K], key K) *node[K] {
	balance := p.balanceFactor()

	switch {
	case balance > 1 && cmp.Less(key, p.left.key):
		tree.notify(RotateRight, p.key)
		return rotateRight(p)

	case balance < -1 && cmp.Less(p.right.key, key):
		tree.notify(RotateLeft, p.key)
		return rotateLeft(p)

	case balance > 1 && cmp.Less(p.left.key, key):
		tree.notify(RotateLeftRight, p.left.key)
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case balance < -1 && cmp.Less(key, p.right.key):
		tree.notify(RotateRightLeft, p.right.key)
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}

	return p
}

func (tree *Tree[K]) notify(kind RotationKind, key K) {
	if tree.hook != nil {
		tree.hook(Rotation[K]{Kind: kind, Key: key})
	}
}
