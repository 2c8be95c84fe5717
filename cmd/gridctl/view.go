package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/bonnth80/html-grid/internal/config/watcher"
	"github.com/bonnth80/html-grid/internal/grid"
	"github.com/bonnth80/html-grid/internal/surface"
	"github.com/bonnth80/html-grid/internal/surface/terminal"
)

// viewer owns the terminal session. Everything that touches the renderer
// runs on the loop goroutine.
type viewer struct {
	common   commonFlags
	logger   *slog.Logger
	surface  *terminal.Surface
	renderer *grid.Renderer
	filled   map[[2]int]bool
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	v := &viewer{filled: make(map[[2]int]bool)}
	v.common.register(fs)
	logFile := fs.String("log-file", "", "Write logs to this file (the terminal is in use)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	s, err := v.common.load()
	if err != nil {
		return err
	}

	logOut := io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	v.logger = s.Logging.NewLogger(logOut)

	v.surface, err = terminal.New()
	if err != nil {
		return err
	}
	if err := v.surface.Init(); err != nil {
		return err
	}
	defer v.surface.Shutdown()
	v.surface.Screen().EnableMouse()

	v.renderer, err = newRenderer(s, v.surface, v.logger)
	if err != nil {
		return err
	}

	var changes <-chan watcher.Event
	if v.common.configPath != "" {
		w, err := watcher.New(v.common.configPath, watcher.DefaultDelay)
		if err != nil {
			v.logger.Warn("settings file not watched", "path", v.common.configPath, "error", err)
		} else {
			defer w.Close()
			changes = w.Events()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return v.loop(ctx, changes)
}

// pollEvents forwards poll results until poll returns nil or ctx is done,
// then closes the channel.
func pollEvents(ctx context.Context, poll func() tcell.Event) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

func (v *viewer) loop(ctx context.Context, changes <-chan watcher.Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := pollEvents(ctx, v.surface.PollEvent)

	v.redraw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			v.reload(change)

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := v.handle(ev); quit {
				return nil
			}
		}
	}
}

// handle processes one terminal event and reports whether to quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == 'm':
			v.renderer.SetDrawMajorLines(!v.renderer.DrawMajorLinesEnabled())
			v.redraw()
		case ev.Rune() == 'c':
			clear(v.filled)
			v.redraw()
		}

	case *tcell.EventResize:
		v.surface.Sync()
		v.redraw()

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		col, row, ok := v.renderer.CellAt(float64(x)+0.5, float64(y)+0.5)
		if !ok {
			return false
		}
		cell := [2]int{col, row}
		if v.filled[cell] {
			delete(v.filled, cell)
			_ = v.renderer.ClearCell(col, row)
		} else {
			v.filled[cell] = true
			_ = v.renderer.FillCell(col, row, "", nil)
		}
		v.flush()
	}
	return false
}

// reload re-reads settings after the file changed. Invalid settings are
// logged and the current ones kept.
func (v *viewer) reload(change watcher.Event) {
	if change.Op.Has(watcher.OpRemove) || change.Op.Has(watcher.OpRename) {
		v.logger.Warn("settings file moved away; keeping current settings", "path", change.Path)
		return
	}

	s, err := v.common.load()
	if err != nil {
		v.logger.Error("reloading settings", "path", change.Path, "error", err)
		return
	}
	if err := s.Apply(v.renderer); err != nil {
		v.logger.Error("applying settings", "path", change.Path, "error", err)
	}
	v.logger.Info("settings reloaded", "path", change.Path)
	v.redraw()
}

// redraw paints the grid and replays filled cells still inside it.
func (v *viewer) redraw() {
	v.renderer.DrawGrid()
	for cell := range v.filled {
		if err := v.renderer.FillCell(cell[0], cell[1], "", nil); errors.Is(err, grid.ErrOutOfBounds) {
			delete(v.filled, cell)
		}
	}
	v.flush()
}

func (v *viewer) flush() {
	if err := surface.Flush(v.surface); err != nil {
		v.logger.Error("flushing terminal", "error", err)
	}
}
