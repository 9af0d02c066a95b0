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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	return fmt.Sprintf(`
 **avlsh %s**

Grow a height-balanced binary search tree one key at a time and watch every rotation that keeps it balanced.

Built with Go %s

# 1. Shell
* Type one or more keys per line, separated by spaces. Quote string keys that contain spaces.
* **0** prints the balance factor of the root and clears the tree
* **-1** exits
* **-2** prints the tree rotated 90°, the root at the left margin
* Every rotation is traced: **RSD k** (right at k), **RSE k** (left at k), **RDD k** (left-right, k is the left child), **RDE k** (right-left, k is the right child)

# 2. Commands
* **avlsh shell**: the read loop (default)
* **avlsh tui**: full-screen interface with a live tree and a rotation log
* **avlsh view 5 3 8**: browse a tree built from the given keys
* Negative keys on the command line go after **--**, e.g. **avlsh view -- 5 -3**
* **avlsh replay FILE**: feed recorded input through the shell parser
* **avlsh settings**: show or create ~/%s

# 3. Key types
* int (default), float, string. Select with **--key-type** or **AVLSH_KEY_TYPE**.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), configFileName)
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

// tuiHelpMarkdown is shown in the help panel of the tui.
func tuiHelpMarkdown(sentinels SentinelConfig) string {
	return fmt.Sprintf(`# Keys

| key | action |
|-----|--------|
| enter | apply the typed value |
| %s | report balance and clear |
| %s | quit |
| %s | toggle the rotated layout |
| tab | focus the rotation log |
| ctrl+y | copy the tree to the clipboard |
| f1 | toggle this help |
| esc | quit |

# Rotations

* **RSD** single right rotation (left-left case)
* **RSE** single left rotation (right-right case)
* **RDD** left-right double rotation
* **RDE** right-left double rotation
`, sentinels.Clear, sentinels.Quit, sentinels.Print)
}
