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

// RotationKind identifies which of the four rebalancing cases fired.
type RotationKind int

const (
	// RotateRight is the single rotation for the Left-Left case.
	RotateRight RotationKind = iota
	// RotateLeft is the single rotation for the Right-Right case.
	RotateLeft
	// RotateLeftRight is the double rotation for the Left-Right case.
	RotateLeftRight
	// RotateRightLeft is the double rotation for the Right-Left case.
	RotateRightLeft
)

// String returns the short trace code of the rotation: RSD, RSE, RDD or RDE.
func (k RotationKind) String() string {
	switch k {
	case RotateRight:
		return "RSD"
	case RotateLeft:
		return "RSE"
	case RotateLeftRight:
		return "RDD"
	case RotateRightLeft:
		return "RDE"
	}
	return "R??"
}

// Name returns a human readable name of the rotation.
func (k RotationKind) Name() string {
	switch k {
	case RotateRight:
		return "right"
	case RotateLeft:
		return "left"
	case RotateLeftRight:
		return "left-right"
	case RotateRightLeft:
		return "right-left"
	}
	return "unknown"
}

// Rotation describes one rebalancing event.
//
// For single rotations Key is the key of the unbalanced node. For double
// rotations Key is the key of the child that is rotated first.
type Rotation[K cmp.Ordered] struct {
	Kind RotationKind
	Key  K
}

// rotateLeft makes z.right the root of the subtree and returns it.
func rotateLeft[K cmp.Ordered](z *node[K]) *node[K] {
	pivot := z.right

	z.right = pivot.left
	pivot.left = z

	// z is now a child of pivot, so its height goes first
	z.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight makes z.left the root of the subtree and returns it.
func rotateRight[K cmp.Ordered](z *node[K]) *node[K] {
	pivot := z.left

	z.left = pivot.right
	pivot.right = z

	z.updateHeight()
	pivot.updateHeight()

	return pivot
}
