package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/app"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/termkey"
	"github.com/dshills/keybind/internal/input/when"
	"github.com/dshills/keybind/internal/log"
)

// historySize is the number of outcomes kept on screen.
const historySize = 200

// listenCmd reads keys from the terminal and shows what each resolves to.
func listenCmd(opts *rootOptions) *cobra.Command {
	var whenFlags []string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Press keys and see which commands they run",
		Long: `Take over the terminal and resolve every key press against the current
keymap. Press Ctrl+C twice in a row to quit.

When watch is enabled in the config, edits to the override file are picked
up while listening.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if svc.Config().Watch {
				go func() {
					if err := svc.Watch(ctx); err != nil {
						log.Error("watch stopped", "err", err)
					}
				}()
			}

			l := newListener(svc, screen)
			l.ctx = parseContext(whenFlags)
			return l.run(ctx)
		},
	}

	cmd.Flags().StringArrayVarP(&whenFlags, "when", "w", nil,
		"Context key, as name or name=value (repeatable)")
	return cmd
}

// listener draws dispatcher outcomes for terminal key events.
type listener struct {
	svc      *app.Service
	screen   tcell.Screen
	ctx      when.Context
	history  []string
	sawCtrlC bool
}

func newListener(svc *app.Service, screen tcell.Screen) *listener {
	return &listener{svc: svc, screen: screen}
}

// run polls events until ctx is done or the user quits.
func (l *listener) run(ctx context.Context) error {
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			// Wake PollEvent so the loop can observe cancellation.
			_ = l.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stopped:
		}
	}()

	l.draw()
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventKey:
			if l.handleKey(ev) {
				return nil
			}
		}
		l.draw()
	}
}

// handleKey dispatches one key event and reports whether to quit.
func (l *listener) handleKey(ev *tcell.EventKey) bool {
	quit := ev.Key() == tcell.KeyCtrlC
	if quit && l.sawCtrlC {
		return true
	}
	l.sawCtrlC = quit

	p := l.svc.Platform()
	press := termkey.FromEvent(ev, p)
	if press == key.None {
		l.record(fmt.Sprintf("%s\tunrecognized", ev.Name()))
		return false
	}
	out := l.svc.Dispatcher().Press(l.ctx, press)
	l.record(formatOutcome(out, p))
	return false
}

func (l *listener) record(line string) {
	l.history = append(l.history, line)
	if len(l.history) > historySize {
		l.history = l.history[len(l.history)-historySize:]
	}
}

// draw renders a status line followed by the newest outcomes.
func (l *listener) draw() {
	l.screen.Clear()
	width, height := l.screen.Size()

	status := fmt.Sprintf("keybind %s | %s | Ctrl+C twice to quit",
		l.svc.Platform(), l.svc.Config().KeybindingsPath)
	if pending := l.svc.Dispatcher().Pending(); pending != key.None {
		status = fmt.Sprintf("(%s) was pressed. Waiting for second key of chord...",
			key.Write(pending, l.svc.Platform()))
	}
	drawText(l.screen, 0, 0, width, status, tcell.StyleDefault.Reverse(true))

	rows := height - 2
	start := max(len(l.history)-rows, 0)
	for i, line := range l.history[start:] {
		drawText(l.screen, 0, i+2, width, line, tcell.StyleDefault)
	}
	l.screen.Show()
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		if r == '\t' {
			r = ' '
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
