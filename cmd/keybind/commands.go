package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/dispatch"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
)

// defaultsCmd prints the default keymap in override file format.
func defaultsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default keybindings",
		Long: `Print every default keybinding in the override file format, including
defaults that the current override file shadows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), svc.Table().DefaultKeybindings())
			return err
		},
	}
}

// resolveCmd feeds key presses through a dispatcher.
func resolveCmd(opts *rootOptions) *cobra.Command {
	var whenFlags []string

	cmd := &cobra.Command{
		Use:   "resolve <key>...",
		Short: "Show the command a sequence of key presses runs",
		Long: `Feed key presses through the resolver in order and print the outcome of
each. A chord may be given as one argument ("ctrl+k ctrl+s") or two.

Context keys are set with --when: a bare name is true, name=value sets a
string, and name=true or name=false sets a boolean.`,
		Example: `  keybind resolve ctrl+k ctrl+s
  keybind resolve escape --when suggestWidgetVisible
  keybind resolve escape --when findWidgetVisible=true`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			ctx := parseContext(whenFlags)
			p := svc.Platform()

			var presses []key.Chord
			for _, arg := range args {
				for _, text := range strings.Fields(arg) {
					press := key.Read(text, p)
					if press == key.None {
						return fmt.Errorf("cannot parse key %q", text)
					}
					presses = append(presses, press)
				}
			}

			d := svc.Dispatcher()
			out := cmd.OutOrStdout()
			for _, press := range presses {
				fmt.Fprintln(out, formatOutcome(d.Press(ctx, press), p))
			}
			if d.Pending() != key.None {
				fmt.Fprintf(out, "(waiting for the second key of %s)\n", key.Write(d.Pending(), p))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&whenFlags, "when", "w", nil,
		"Context key, as name or name=value (repeatable)")
	return cmd
}

// parseContext builds a context from name or name=value entries.
func parseContext(entries []string) when.Context {
	ctx := when.Context{}
	for _, entry := range entries {
		name, value, hasValue := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch {
		case !hasValue:
			ctx.Set(name, true)
		case value == "true":
			ctx.Set(name, true)
		case value == "false":
			ctx.Set(name, false)
		default:
			ctx.Set(name, value)
		}
	}
	return ctx
}

// formatOutcome renders one dispatcher outcome as a tab-separated line.
func formatOutcome(out dispatch.Outcome, p key.Platform) string {
	text := key.Write(out.Keybinding, p)
	if out.Kind == dispatch.Matched {
		return fmt.Sprintf("%s\t%s\t%s", text, out.Kind, out.Command)
	}
	return fmt.Sprintf("%s\t%s", text, out.Kind)
}

// lookupCmd prints the keybindings of a command.
func lookupCmd(opts *rootOptions) *cobra.Command {
	var showShadowed bool

	cmd := &cobra.Command{
		Use:   "lookup <command>",
		Short: "Print the keybindings that run a command",
		Long: `Print the reachable keybindings of a command, most recently registered
first. With --shadowed, also print bindings later entries made unreachable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			table := svc.Table()
			out := cmd.OutOrStdout()

			for _, text := range table.LookupText(args[0]) {
				fmt.Fprintln(out, text)
			}
			if showShadowed {
				for _, kb := range table.Shadowed(args[0]) {
					fmt.Fprintf(out, "%s\t(shadowed)\n", key.Write(kb, table.Platform()))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showShadowed, "shadowed", false, "Also print shadowed keybindings")
	return cmd
}

// checkCmd reports overridden defaults and dropped entries.
func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report default keybindings hidden by overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			table := svc.Table()
			out := cmd.OutOrStdout()

			diags := table.Diagnostics()
			for _, d := range diags {
				fmt.Fprintln(out, d.Format(table.Platform()))
			}
			if n := table.Dropped(); n > 0 {
				fmt.Fprintf(out, "%d keybinding(s) ignored: unparseable key or empty command\n", n)
			}
			fmt.Fprintf(out, "%d command(s), %d overridden default(s)\n", len(table.Commands()), len(diags))
			return nil
		},
	}
}

// bindCmd appends an entry to the override file.
func bindCmd(opts *rootOptions) *cobra.Command {
	var whenExpr, macKey string

	cmd := &cobra.Command{
		Use:   "bind <key> <command>",
		Short: "Add a keybinding to the override file",
		Example: `  keybind bind ctrl+p myCustomOpen
  keybind bind "ctrl+k ctrl+x" editor.action.trimWhitespace --when editorTextFocus
  keybind bind ctrl+shift+o outline --mac cmd+shift+o`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}

			src := keymap.Source{
				Key:     key.Normalize(args[0], svc.Platform()),
				Mac:     key.Normalize(macKey, key.Mac),
				Command: args[1],
				When:    when.Format(when.Parse(whenExpr)),
			}
			if src.Key == "" {
				return fmt.Errorf("cannot parse key %q", args[0])
			}
			if macKey != "" && src.Mac == "" {
				return fmt.Errorf("cannot parse mac key %q", macKey)
			}

			if err := svc.Bind(src); err != nil {
				return err
			}
			for _, d := range svc.Table().Diagnostics() {
				if d.By == src.Command {
					fmt.Fprintln(cmd.OutOrStdout(), d.Format(svc.Platform()))
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bound %s to %s in %s\n",
				src.Key, src.Command, svc.Config().KeybindingsPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&whenExpr, "when", "w", "", "Context expression, e.g. \"editorTextFocus && !inSearch\"")
	cmd.Flags().StringVar(&macKey, "mac", "", "Keybinding to use on mac instead")
	return cmd
}
