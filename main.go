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
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const envPrefix = "AVLSH"

var version = "0.1.0"

// mode selects the front-end a command launches
type mode int

const (
	modeShell mode = iota
	modeTUI
	modeView
	modeReplay
)

// app is the state shared by all commands after flags and config are
// resolved.
type app struct {
	cfg   *Config
	log   zerolog.Logger
	quiet bool
}

// initializeConfig binds AVLSH_ environment variables to the command's
// flags. A flag given on the command line wins over the environment.
func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	// a flag like --level-gap binds to AVLSH_LEVEL_GAP
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags failed: %w", err)
	}
	return nil
}

// bindFlags applies each viper value to its cobra flag when the flag was
// not set explicitly.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %s: %w", f.Name, err)
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = fmt.Errorf("could not set flag %s: %w", f.Name, err)
				return
			}
		}
	})
	return bindFlagErr
}

// applyFlags copies every flag that was set, on the command line or
// through the environment, over the file configuration.
func applyFlags(flags *pflag.FlagSet, cfg *Config) error {
	var err error
	if flags.Changed("key-type") {
		if cfg.Shell.KeyType, err = flags.GetString("key-type"); err != nil {
			return err
		}
	}
	if flags.Changed("trace") {
		if cfg.Shell.Trace, err = flags.GetBool("trace"); err != nil {
			return err
		}
	}
	if flags.Changed("check") {
		if cfg.Shell.Check, err = flags.GetBool("check"); err != nil {
			return err
		}
	}
	if flags.Changed("level-gap") {
		if cfg.Shell.LevelGap, err = flags.GetInt("level-gap"); err != nil {
			return err
		}
		if cfg.Shell.LevelGap < 0 {
			return fmt.Errorf("level gap must not be negative, got %d", cfg.Shell.LevelGap)
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	return nil
}

// setup loads the config file, then layers environment and flags on top.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, cfgErr := LoadConfig()

	if err := initializeConfig(cmd); err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		a.quiet = quiet
	}

	a.cfg = cfg
	a.log = newLogger(cfg.Log, os.Stderr)
	if cfgErr != nil {
		a.log.Warn().Err(cfgErr).Msg("using default settings")
	}
	return nil
}

// launchForKind instantiates the front-end for the configured key type.
func (a *app) launchForKind(m mode, args []string) error {
	kind, err := ParseKeyKind(a.cfg.Shell.KeyType)
	if err != nil {
		return err
	}

	switch kind {
	case KeyFloat:
		return launch(a, kind, parseFloatKey, m, args)
	case KeyString:
		return launch(a, kind, parseStringKey, m, args)
	default:
		return launch(a, kind, parseIntKey, m, args)
	}
}

func launch[K cmp.Ordered](a *app, kind KeyKind, parse func(string) (K, error), m mode, args []string) error {
	parser, err := NewParser(parse, a.cfg.Shell.Sentinels)
	if err != nil {
		return fmt.Errorf("invalid sentinels: %w", err)
	}
	shellCfg := a.cfg.Shell
	a.log.Debug().Str("key_type", string(kind)).Bool("trace", shellCfg.Trace).Bool("check", shellCfg.Check).Msg("starting")

	switch m {
	case modeTUI:
		// the alternate screen owns the terminal, so the session stays silent
		s := newSession(parser, shellCfg.Check, zerolog.Nop())
		hc := NewHelpCache(time.Duration(a.cfg.TUI.HelpCacheMinutes) * time.Minute)
		return runTUI(s, kind, shellCfg.LevelGap, hc)

	case modeView:
		s := newSession(parser, shellCfg.Check, a.log)
		if err := seedSession(s, args); err != nil {
			return err
		}
		return runViewer(s)

	case modeReplay:
		result, err := replayFile(args[0], parser, ReplayOptions{
			Quiet:    a.quiet,
			Check:    shellCfg.Check,
			Trace:    shellCfg.Trace,
			LevelGap: shellCfg.LevelGap,
		}, os.Stdout, a.log)
		if err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}
		if !a.quiet {
			printReplaySummary(os.Stdout, result)
		}
		return nil

	default:
		sh := NewShell(kind, parser, ShellOptions{
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			Trace:       shellCfg.Trace,
			Check:       shellCfg.Check,
			LevelGap:    shellCfg.LevelGap,
		}, os.Stdin, os.Stdout, os.Stderr, a.log)
		if err := sh.Run(); err != nil {
			return err
		}
		stats := sh.Stats()
		a.log.Info().
			Int("inserted", stats.Inserted).
			Int("duplicates", stats.Duplicates).
			Int("rotations", stats.TotalRotations()).
			Msg("session ended")
		return nil
	}
}

// seedSession applies command line keys to a session. Sentinels work as
// they do in the shell; the quit sentinel stops seeding.
func seedSession[K cmp.Ordered](s *session[K], args []string) error {
	for _, arg := range args {
		tokens, err := splitTokens(arg)
		if err != nil {
			return err
		}
		for _, token := range tokens {
			outcome, err := s.applyToken(token)
			if errors.Is(err, ErrMalformedInput) {
				return fmt.Errorf("cannot use %q as a key: %w", token, err)
			}
			if err != nil {
				return err
			}
			if outcome.Command.Kind == CmdQuit {
				return nil
			}
		}
	}
	return nil
}

// addTreeFlags registers the flags shared by every command. Defaults
// mirror defaultConfig; only flags that were set override the file.
func addTreeFlags(fs *pflag.FlagSet) {
	fs.String("key-type", defaultConfig.Shell.KeyType, "key type of the tree: int, float or string")
	fs.Bool("trace", defaultConfig.Shell.Trace, "print a line for every rotation")
	fs.Bool("check", defaultConfig.Shell.Check, "verify the tree invariants after every insert")
	fs.Int("level-gap", defaultConfig.Shell.LevelGap, "indentation per level of the printed tree")
	fs.String("log-level", defaultConfig.Log.Level, "log level: debug, info, warn or error")
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███████╗██╗  ██╗
██╔══██╗██║   ██║██║     ██╔════╝██║  ██║
███████║██║   ██║██║     ███████╗███████║
██╔══██║╚██╗ ██╔╝██║     ╚════██║██╔══██║
██║  ██║ ╚████╔╝ ███████╗███████║██║  ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚══════╝╚═╝  ╚═╝
Grow a height-balanced binary search tree and watch it rotate [Version: %s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(version))

	a := &app{}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Read keys from standard input and insert them into the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell reads keys line by line, prints every rotation and handles the 0, -1 and -2 sentinels"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.launchForKind(modeShell, args)
		},
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Launch the full-screen tree editor",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "TUI shows the live tree, a rotation log and the tree statistics"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.launchForKind(modeTUI, args)
		},
	}

	var cmdView = &cobra.Command{
		Use:   "view [keys...]",
		Short: "Browse a tree built from the given keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "View builds a tree from the arguments and opens a read-only browser"),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.launchForKind(modeView, args)
		},
	}

	var cmdReplay = &cobra.Command{
		Use:   "replay FILE",
		Short: "Feed a file of recorded input through the shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Replay reads keys and sentinels from FILE and prints a summary"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.launchForKind(modeReplay, args)
		},
	}
	cmdReplay.Flags().Bool("quiet", false, "no progress bar and no summary")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlsh usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlsh usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints ~/"+configFileName+", creating it with the defaults when missing"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(os.Stdout)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlsh version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlsh",
		Version:       version,
		Long:          asciiLogo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the shell when no subcommand is provided
			return a.launchForKind(modeShell, args)
		},
	}
	addTreeFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(cmdShell, cmdTUI, cmdView, cmdReplay, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
