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
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlsh.yaml"

type SentinelConfig struct {
	Clear string `yaml:"clear"`
	Quit  string `yaml:"quit"`
	Print string `yaml:"print"`
}

type ShellConfig struct {
	KeyType   string         `yaml:"key_type"`
	Trace     bool           `yaml:"trace"`
	Check     bool           `yaml:"check"`
	LevelGap  int            `yaml:"level_gap"`
	Sentinels SentinelConfig `yaml:"sentinels"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type TUIConfig struct {
	HelpCacheMinutes int `yaml:"help_cache_minutes"`
}

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Log   LogConfig   `yaml:"log"`
	TUI   TUIConfig   `yaml:"tui"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		KeyType:  string(KeyInt),
		Trace:    true,
		Check:    false,
		LevelGap: 5,
		Sentinels: SentinelConfig{
			Clear: "0",
			Quit:  "-1",
			Print: "-2",
		},
	},
	Log: LogConfig{
		Level:   "warn",
		Console: true,
	},
	TUI: TUIConfig{
		HelpCacheMinutes: 30,
	},
}

// LoadConfig reads ~/.avlsh.yaml. A missing or unreadable file yields the
// defaults; a file that does not parse is reported together with the
// defaults so the caller can warn and carry on.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// fields missing from the file keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	config.fillDefaults()

	return &config, nil
}

func (c *Config) fillDefaults() {
	if c.Shell.KeyType == "" {
		c.Shell.KeyType = defaultConfig.Shell.KeyType
	}
	if c.Shell.LevelGap <= 0 {
		c.Shell.LevelGap = defaultConfig.Shell.LevelGap
	}
	if c.Shell.Sentinels.Clear == "" {
		c.Shell.Sentinels.Clear = defaultConfig.Shell.Sentinels.Clear
	}
	if c.Shell.Sentinels.Quit == "" {
		c.Shell.Sentinels.Quit = defaultConfig.Shell.Sentinels.Quit
	}
	if c.Shell.Sentinels.Print == "" {
		c.Shell.Sentinels.Print = defaultConfig.Shell.Sentinels.Print
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultConfig.Log.Level
	}
	if c.TUI.HelpCacheMinutes <= 0 {
		c.TUI.HelpCacheMinutes = defaultConfig.TUI.HelpCacheMinutes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(w, "%s\n", data)
	fmt.Fprintf(w, "Every value can be overridden with an %s_ environment variable or a flag,\n", envPrefix)
	fmt.Fprintf(w, "e.g. %s_KEY_TYPE=string or --key-type string.\n", envPrefix)
	return nil
}
