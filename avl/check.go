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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrBalance = errors.New("subtree out of balance")
	ErrHeight  = errors.New("cached height is wrong")
	ErrCount   = errors.New("node count mismatch")
)

// Check walks the whole tree and returns an error describing the first
// broken invariant, or nil.
func (tree *Tree[K]) Check() error {
	n, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d nodes, expected %d", ErrCount, n, tree.count)
	}
	return nil
}

// internal: lo and hi are the exclusive bounds inherited from ancestors
func check[K cmp.Ordered](p *node[K], lo *K, hi *K) (int, error) {
	if p == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(p.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v is not above %v", ErrOrder, p.key, *lo)
	}
	if hi != nil && cmp.Compare(p.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v is not below %v", ErrOrder, p.key, *hi)
	}

	nl, err := check(p.left, lo, &p.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(p.right, &p.key, hi)
	if err != nil {
		return 0, err
	}

	if h := max(p.left.getHeight(), p.right.getHeight()) + 1; h != p.height {
		return 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrHeight, p.key, p.height, h)
	}
	if b := p.balanceFactor(); b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %+d", ErrBalance, p.key, b)
	}
	return 1 + nl + nr, nil
}
