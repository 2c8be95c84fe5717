package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/bonnth80/html-grid/internal/grid"
)

// DefaultTimeout bounds a single Run when the caller's context has no deadline.
const DefaultTimeout = 5 * time.Second

// Engine runs Lua scripts against one renderer.
//
// gopher-lua states are not goroutine-safe; Engine serializes Run calls.
type Engine struct {
	L *lua.LState

	mu       sync.Mutex
	renderer *grid.Renderer
	logger   grid.Logger
	out      io.Writer
	timeout  time.Duration
	closed   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for run diagnostics.
func WithLogger(l grid.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithOutput redirects the Lua print function. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

// WithTimeout sets the per-run time budget. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// New creates an engine bound to r.
func New(r *grid.Renderer, opts ...Option) *Engine {
	e := &Engine{
		renderer: r,
		logger:   grid.NopLogger,
		out:      os.Stdout,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	e.L = L

	e.installPrint()
	e.registerErrorType()
	e.registerGridModule()

	return e
}

// openSafeLibraries opens the libraries scripts may use and strips the
// base functions that load code from disk or strings.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installPrint replaces print so output goes to the engine's writer.
func (e *Engine) installPrint() {
	e.L.SetGlobal("print", e.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(e.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// Run executes code under name. The run stops when ctx is done or the
// engine's timeout elapses, whichever is first.
func (e *Engine) Run(ctx context.Context, name, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		e.logger.Error("script failed to compile", "chunk", name, "error", err)
		return &Error{Chunk: name, Err: err}
	}

	start := time.Now()
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		serr := &Error{Chunk: name, Err: e.cause(ctx, err)}
		e.logger.Error("script failed", "chunk", name, "error", serr.Err)
		return serr
	}

	e.logger.Debug("script finished", "chunk", name, "elapsed", time.Since(start))
	return nil
}

// RunFile reads and runs the script at path.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	return e.Run(ctx, path, string(code))
}

// cause digs the most useful error out of a failed protected call.
func (e *Engine) cause(ctx context.Context, err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if ud, ok := apiErr.Object.(*lua.LUserData); ok {
			if gerr, ok := ud.Value.(error); ok {
				return gerr
			}
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// Close releases the Lua state. It is safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
