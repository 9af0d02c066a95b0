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

type node[K cmp.Ordered] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
}

// height of an absent subtree is 0
func (n *node[K]) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K]) updateHeight() {
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *node[K]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.getHeight() - n.right.getHeight()
}
