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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewHelpCache creates the cache that keeps rendered help pages. Rendering
// markdown is slow enough to notice on every resize.
func NewHelpCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, helpCacheCleanup)
}

func helpCacheKey(page string, width int) string {
	return fmt.Sprintf("%s@%d", page, width)
}

func CacheHelpPage(c *cache.Cache, key string, helpTxt string) {
	// Set rather than Add, a re-render replaces the old page
	c.Set(key, helpTxt, cache.DefaultExpiration)
}

func GetHelpPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRenderHelp returns the cached page or renders and caches it.
func GetOrRenderHelp(c *cache.Cache, page string, width int, render func() (string, error)) string {
	key := helpCacheKey(page, width)
	if txt := GetHelpPage(c, key); txt != "" {
		return txt
	}

	txt, err := render()
	if err != nil {
		// not cached, the next call retries
		return fmt.Sprintf("Could not render help.\n%s", err.Error())
	}
	CacheHelpPage(c, key, txt)
	return txt
}
