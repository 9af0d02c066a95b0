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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := []byte(`
shell:
  key_type: string
  trace: false
  sentinels:
    quit: "q"
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "string", cfg.Shell.KeyType)
	assert.False(t, cfg.Shell.Trace)
	assert.Equal(t, 5, cfg.Shell.LevelGap)
	assert.Equal(t, SentinelConfig{Clear: "0", Quit: "q", Print: "-2"}, cfg.Shell.Sentinels)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, 30, cfg.TUI.HelpCacheMinutes)
}

func TestLoadConfigFillsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := []byte("shell:\n  key_type: \"\"\n  level_gap: 0\ntui:\n  help_cache_minutes: -4\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "int", cfg.Shell.KeyType)
	assert.Equal(t, 5, cfg.Shell.LevelGap)
	assert.Equal(t, 30, cfg.TUI.HelpCacheMinutes)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("shell: [not, a, map"), 0644))

	cfg, err := loadConfigFrom(path)
	require.ErrorContains(t, err, "failed to parse config")
	require.NotNil(t, cfg)
	assert.Equal(t, defaultConfig, *cfg)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, defaultConfig, cfg)
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out))
	assert.Contains(t, out.String(), "(newly created)")
	assert.Contains(t, out.String(), "key_type: int")
	assert.Contains(t, out.String(), "AVLSH_KEY_TYPE")
	assert.FileExists(t, filepath.Join(home, configFileName))

	out.Reset()
	require.NoError(t, displaySettings(&out))
	assert.NotContains(t, out.String(), "(newly created)")
}
