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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(k int) *node[int] {
	return &node[int]{key: k, height: 1}
}

func TestRotateLeftPrimitive(t *testing.T) {
	// z(a, y(b, c)) becomes y(z(a, b), c)
	a, b, c := leaf(1), leaf(3), leaf(5)
	y := &node[int]{key: 4, height: 2, left: b, right: c}
	z := &node[int]{key: 2, height: 3, left: a, right: y}

	root := rotateLeft(z)

	require.Same(t, y, root)
	assert.Same(t, z, root.left)
	assert.Same(t, c, root.right)
	assert.Same(t, a, z.left)
	assert.Same(t, b, z.right)
	assert.Equal(t, 2, z.height)
	assert.Equal(t, 3, y.height)
}

func TestRotateRightPrimitive(t *testing.T) {
	// z(y(a, b), c) becomes y(a, z(b, c))
	a, b, c := leaf(1), leaf(3), leaf(5)
	y := &node[int]{key: 2, height: 2, left: a, right: b}
	z := &node[int]{key: 4, height: 3, left: y, right: c}

	root := rotateRight(z)

	require.Same(t, y, root)
	assert.Same(t, a, root.left)
	assert.Same(t, z, root.right)
	assert.Same(t, b, z.left)
	assert.Same(t, c, z.right)
	assert.Equal(t, 2, z.height)
	assert.Equal(t, 3, y.height)
}

func TestCheckDetectsCorruption(t *testing.T) {
	testCases := []struct {
		name  string
		root  *node[int]
		count int
		err   error
	}{
		{
			name:  "order",
			root:  &node[int]{key: 2, height: 2, left: leaf(3), right: leaf(4)},
			count: 3,
			err:   ErrOrder,
		},
		{
			name:  "order across levels",
			root:  &node[int]{key: 10, height: 3, left: &node[int]{key: 5, height: 2, right: leaf(12)}, right: &node[int]{key: 20, height: 2, right: leaf(30)}},
			count: 5,
			err:   ErrOrder,
		},
		{
			name:  "height",
			root:  &node[int]{key: 2, height: 5, left: leaf(1), right: leaf(3)},
			count: 3,
			err:   ErrHeight,
		},
		{
			name:  "balance",
			root:  &node[int]{key: 1, height: 3, right: &node[int]{key: 2, height: 2, right: leaf(3)}},
			count: 3,
			err:   ErrBalance,
		},
		{
			name:  "count",
			root:  &node[int]{key: 2, height: 2, left: leaf(1), right: leaf(3)},
			count: 2,
			err:   ErrCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := &Tree[int]{root: tc.root, count: tc.count}
			require.ErrorIs(t, tree.Check(), tc.err)
		})
	}
}

func TestAbsentSubtreeHeight(t *testing.T) {
	var p *node[int]
	assert.Equal(t, 0, p.getHeight())
	assert.Equal(t, 0, p.balanceFactor())
}
