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

package avl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlsh/avl"
)

func TestFprint(t *testing.T) {
	testCases := []struct {
		name     string
		keys     []int
		gap      int
		expected string
	}{
		{
			name:     "empty",
			expected: "The tree is empty\n",
			gap:      avl.DefaultLevelGap,
		},
		{
			name:     "single",
			keys:     []int{7},
			gap:      avl.DefaultLevelGap,
			expected: "\n7\n",
		},
		{
			name:     "three nodes",
			keys:     []int{10, 20, 30},
			gap:      avl.DefaultLevelGap,
			expected: "\n     30\n\n20\n\n     10\n",
		},
		{
			name:     "custom gap",
			keys:     []int{2, 1, 3, 4},
			gap:      2,
			expected: "\n    4\n\n  3\n\n2\n\n  1\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, k := range tc.keys {
				tree.Insert(k)
			}
			var buf bytes.Buffer
			require.NoError(t, tree.Fprint(&buf, tc.gap))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestString(t *testing.T) {
	tree := avl.New[int]()
	assert.Equal(t, "────┤ empty", tree.String())

	for k := 1; k <= 7; k++ {
		tree.Insert(k)
	}
	expected := "" +
		"        ┌── 7\n" +
		"    ┌── 6\n" +
		"    │   └── 5\n" +
		"─── 4\n" +
		"    │   ┌── 3\n" +
		"    └── 2\n" +
		"        └── 1\n"
	assert.Equal(t, expected, tree.String())
}

func TestShape(t *testing.T) {
	tree := avl.New[string]()
	assert.Equal(t, "", tree.Shape())
	tree.Insert("m")
	assert.Equal(t, "m", tree.Shape())
	tree.Insert("x")
	assert.Equal(t, "m(-,x)", tree.Shape())
	tree.Insert("a")
	assert.Equal(t, "m(a,x)", tree.Shape())
}
