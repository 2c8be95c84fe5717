//go:build js && wasm

// Package main exposes the grid renderer to a web page as the global
// JavaScript object grid.
//
//	grid.attach("myCanvas")
//	grid.setLineCounts(20, 20)
//	grid.setDrawMajorLines(true)
//	grid.drawGrid()
//	grid.fillCell(3, 4, "rgb(255,0,0)")
//
// Functions that can fail return null on success and an error message
// otherwise.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/bonnth80/html-grid/internal/grid"
	"github.com/bonnth80/html-grid/internal/surface/htmlcanvas"
)

// defaultCanvasID is attached at startup when the page has such an element.
const defaultCanvasID = "gridCanvas"

var errNotAttached = errors.New("grid is not attached to a canvas; call grid.attach(id)")

type bridge struct {
	logger   *slog.Logger
	renderer *grid.Renderer
}

func main() {
	b := &bridge{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
	if err := b.attach(defaultCanvasID); err != nil {
		b.logger.Debug("no default canvas", "id", defaultCanvasID, "error", err)
	}

	api := map[string]any{
		"version":              grid.Version,
		"attach":               b.fn(b.jsAttach),
		"drawGrid":             b.fn(b.jsDrawGrid),
		"clearSurface":         b.fn(b.jsClearSurface),
		"fillCell":             b.fn(b.jsFillCell),
		"clearCell":            b.fn(b.jsClearCell),
		"setColorMajor":        b.fn(b.jsSetColorMajor),
		"setColorMinor":        b.fn(b.jsSetColorMinor),
		"setBackgroundColor":   b.fn(b.jsSetBackgroundColor),
		"setFillColor":         b.fn(b.jsSetFillColor),
		"setLineCounts":        b.fn(b.jsSetLineCounts),
		"setDrawMajorLines":    b.fn(b.jsSetDrawMajorLines),
		"setMajorLineInterval": b.fn(b.jsSetMajorLineInterval),
		"getSettings":          b.fn(b.jsGetSettings),
	}
	js.Global().Set("grid", js.ValueOf(api))

	select {}
}

func (b *bridge) attach(id string) error {
	s, err := htmlcanvas.New(id)
	if err != nil {
		return err
	}
	b.renderer = grid.New(s, grid.WithLogger(b.logger))
	return nil
}

// fn wraps a handler so it needs an attached renderer and reports errors
// to JavaScript as strings.
func (b *bridge) fn(h func(args []js.Value) (any, error)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		v, err := h(args)
		if err != nil {
			return err.Error()
		}
		return v
	})
}

func (b *bridge) need() error {
	if b.renderer == nil {
		return errNotAttached
	}
	return nil
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

func intArg(args []js.Value, i int) (int, error) {
	v := arg(args, i)
	if v.Type() != js.TypeNumber {
		return 0, fmt.Errorf("argument %d: want number, got %s", i+1, v.Type())
	}
	return v.Int(), nil
}

func stringArg(args []js.Value, i int) (string, error) {
	v := arg(args, i)
	if v.Type() != js.TypeString {
		return "", fmt.Errorf("argument %d: want string, got %s", i+1, v.Type())
	}
	return v.String(), nil
}

// optString returns "" for a missing or undefined argument.
func optString(args []js.Value, i int) (string, error) {
	v := arg(args, i)
	if v.IsUndefined() || v.IsNull() {
		return "", nil
	}
	return stringArg(args, i)
}

func (b *bridge) jsAttach(args []js.Value) (any, error) {
	id, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	return nil, b.attach(id)
}

func (b *bridge) jsDrawGrid(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	b.renderer.DrawGrid()
	return nil, nil
}

func (b *bridge) jsClearSurface(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	b.renderer.ClearSurface()
	return nil, nil
}

func (b *bridge) jsFillCell(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	col, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	row, err := intArg(args, 1)
	if err != nil {
		return nil, err
	}
	color, err := optString(args, 2)
	if err != nil {
		return nil, err
	}
	return nil, b.renderer.FillCell(col, row, color, nil)
}

func (b *bridge) jsClearCell(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	col, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	row, err := intArg(args, 1)
	if err != nil {
		return nil, err
	}
	return nil, b.renderer.ClearCell(col, row)
}

// colorSetter adapts a (color, redraw) setter; redraw defaults to false.
func (b *bridge) colorSetter(args []js.Value, set func(string, bool) error) (any, error) {
	color, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	return nil, set(color, arg(args, 1).Truthy())
}

func (b *bridge) jsSetColorMajor(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	return b.colorSetter(args, b.renderer.SetColorMajor)
}

func (b *bridge) jsSetColorMinor(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	return b.colorSetter(args, b.renderer.SetColorMinor)
}

func (b *bridge) jsSetBackgroundColor(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	return b.colorSetter(args, b.renderer.SetBackgroundColor)
}

func (b *bridge) jsSetFillColor(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	color, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	return nil, b.renderer.SetFillColor(color)
}

func (b *bridge) jsSetLineCounts(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	v, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	h, err := intArg(args, 1)
	if err != nil {
		return nil, err
	}
	return nil, b.renderer.SetLineCounts(v, h)
}

func (b *bridge) jsSetDrawMajorLines(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	b.renderer.SetDrawMajorLines(arg(args, 0).Truthy())
	return nil, nil
}

func (b *bridge) jsSetMajorLineInterval(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	n, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	return nil, b.renderer.SetMajorLineInterval(n)
}

// jsGetSettings returns the settings document as a JavaScript object.
func (b *bridge) jsGetSettings(args []js.Value) (any, error) {
	if err := b.need(); err != nil {
		return nil, err
	}
	doc, err := b.renderer.SettingsJSON()
	if err != nil {
		return nil, err
	}
	return js.Global().Get("JSON").Call("parse", string(doc)), nil
}
