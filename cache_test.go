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
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewHelpCache(time.Minute)
	key := helpCacheKey("tui", 80)
	helpText := "This is help text for the tui"

	// Initially, GetHelpPage should return an empty string for a missing page.
	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", key, got)
	}

	CacheHelpPage(c, key, helpText)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiringPage"
	helpText := "This help text should expire soon."

	c.Set(key, helpText, 100*time.Millisecond)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", key, got)
	}
}

func TestGetOrRenderHelp(t *testing.T) {
	c := NewHelpCache(time.Minute)
	calls := 0
	render := func() (string, error) {
		calls++
		return "rendered", nil
	}

	for i := 0; i < 3; i++ {
		if got := GetOrRenderHelp(c, "tui", 80, render); got != "rendered" {
			t.Fatalf("GetOrRenderHelp() = %q; want %q", got, "rendered")
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times; want 1", calls)
	}

	// a different width is a different page
	GetOrRenderHelp(c, "tui", 120, render)
	if calls != 2 {
		t.Errorf("render called %d times after resize; want 2", calls)
	}
}

func TestGetOrRenderHelpErrorIsNotCached(t *testing.T) {
	c := NewHelpCache(time.Minute)
	failing := func() (string, error) { return "", errors.New("no renderer") }

	got := GetOrRenderHelp(c, "tui", 80, failing)
	if got == "" {
		t.Fatal("expected an error page")
	}
	if cached := GetHelpPage(c, helpCacheKey("tui", 80)); cached != "" {
		t.Errorf("error page was cached: %q", cached)
	}

	got = GetOrRenderHelp(c, "tui", 80, func() (string, error) { return "ok", nil })
	if got != "ok" {
		t.Errorf("GetOrRenderHelp() after failure = %q; want %q", got, "ok")
	}
}
