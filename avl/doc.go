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

// Package avl implements a height-balanced binary search tree over any
// ordered key type.
//
// Every node caches the height of the subtree rooted at it. After each
// insertion the heights are recomputed on the way back up and at most one
// single or double rotation restores the balance invariant.
//
// A Tree is not safe for concurrent use. Callers that share one tree
// between goroutines must serialize all access themselves.
package avl
