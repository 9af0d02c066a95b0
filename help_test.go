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
	"strings"
	"testing"
)

func TestUsageMarkdown(t *testing.T) {
	md := usageMarkdown()
	for _, want := range []string{version, configFileName, "RSD", "replay"} {
		if !strings.Contains(md, want) {
			t.Errorf("usage is missing %q", want)
		}
	}
	if getHelpMessage() == "" {
		t.Error("rendered usage is empty")
	}
}

func TestTUIHelpMarkdownUsesSentinels(t *testing.T) {
	md := tuiHelpMarkdown(SentinelConfig{Clear: "c", Quit: "q", Print: "p"})
	for _, want := range []string{"| c |", "| q |", "| p |"} {
		if !strings.Contains(md, want) {
			t.Errorf("help page is missing %q", want)
		}
	}
}
