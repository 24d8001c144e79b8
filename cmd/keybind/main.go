// Package main is the entry point for the keybind CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/app"
	"github.com/dshills/keybind/internal/config"
	"github.com/dshills/keybind/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath      string
	platform        string
	keybindingsPath string
	logLevel        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "keybind",
		Short: "Resolve, inspect and edit keybindings",
		Long: `keybind resolves key presses to commands using a built-in default
keymap and a user override file, reports overridden defaults, and edits the
override file.

Examples:
  keybind defaults > keybindings.json     # Dump the default keymap
  keybind resolve ctrl+k ctrl+s           # Show what a chord runs
  keybind resolve escape --when findWidgetVisible
  keybind lookup workbench.action.quickOpen
  keybind bind ctrl+p myCustomOpen        # Add an override
  keybind check                           # List overridden defaults
  keybind listen                          # Try keys interactively`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "",
		"Path to the config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.platform, "platform", "",
		"Keyboard platform: auto, linux, windows or mac")
	flags.StringVarP(&opts.keybindingsPath, "keybindings", "k", "",
		"Path to the keybindings override file")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"Log level: debug, info, warn or error")

	rootCmd.AddCommand(defaultsCmd(opts))
	rootCmd.AddCommand(resolveCmd(opts))
	rootCmd.AddCommand(lookupCmd(opts))
	rootCmd.AddCommand(checkCmd(opts))
	rootCmd.AddCommand(bindCmd(opts))
	rootCmd.AddCommand(listenCmd(opts))

	return rootCmd
}

// loadConfig reads the config file and environment, then applies flags.
func (o *rootOptions) loadConfig() (config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if o.platform != "" {
		cfg.Platform = o.platform
	}
	if o.keybindingsPath != "" {
		cfg.KeybindingsPath = o.keybindingsPath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, err
	}
	log.SetLevel(level)
	return cfg, nil
}

// newService loads the config and builds the keybinding service.
func (o *rootOptions) newService() (*app.Service, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}
