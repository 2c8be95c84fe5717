package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/bonnth80/html-grid/internal/grid"
)

const errorTypeName = "grid.error"

// registerErrorType installs the metatable for raised renderer errors so
// tostring on a caught error yields its message.
func (e *Engine) registerErrorType() {
	mt := e.L.NewTypeMetatable(errorTypeName)
	e.L.SetField(mt, "__tostring", e.L.NewFunction(func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		if err, ok := ud.Value.(error); ok {
			L.Push(lua.LString(err.Error()))
		} else {
			L.Push(lua.LString(errorTypeName))
		}
		return 1
	}))
}

// raise throws err into Lua, keeping the Go error for Run to return.
func (e *Engine) raise(L *lua.LState, err error) int {
	ud := L.NewUserData()
	ud.Value = err
	L.SetMetatable(ud, L.GetTypeMetatable(errorTypeName))
	L.Error(ud, 1)
	return 0
}

// check raises err if it is non-nil.
func (e *Engine) check(L *lua.LState, err error) int {
	if err != nil {
		return e.raise(L, err)
	}
	return 0
}

// registerGridModule exposes the renderer as the global table grid.
func (e *Engine) registerGridModule() {
	mod := e.L.NewTable()

	funcs := map[string]lua.LGFunction{
		"draw":            e.draw,
		"clear":           e.clear,
		"fill":            e.fill,
		"clear_cell":      e.clearCell,
		"set_lines":       e.setLines,
		"set_major":       e.setMajor,
		"set_minor":       e.setMinor,
		"set_background":  e.setBackground,
		"set_fill":        e.setFill,
		"set_major_lines": e.setMajorLines,
		"set_interval":    e.setInterval,
		"cell_size":       e.cellSize,
		"lines":           e.lines,
		"size":            e.size,
		"cell_at":         e.cellAt,
	}
	for name, fn := range funcs {
		e.L.SetField(mod, name, e.L.NewFunction(fn))
	}
	e.L.SetField(mod, "version", lua.LString(grid.Version))

	e.L.SetGlobal("grid", mod)
}

// draw() redraws the whole grid.
func (e *Engine) draw(L *lua.LState) int {
	e.renderer.DrawGrid()
	return 0
}

// clear() wipes the surface.
func (e *Engine) clear(L *lua.LState) int {
	e.renderer.ClearSurface()
	return 0
}

// fill(col, row [, color]) paints one cell.
func (e *Engine) fill(L *lua.LState) int {
	col := L.CheckInt(1)
	row := L.CheckInt(2)
	color := L.OptString(3, "")
	return e.check(L, e.renderer.FillCell(col, row, color, nil))
}

// clear_cell(col, row) paints one cell with the background colour.
func (e *Engine) clearCell(L *lua.LState) int {
	return e.check(L, e.renderer.ClearCell(L.CheckInt(1), L.CheckInt(2)))
}

// set_lines(vertical, horizontal)
// Counts above the surface size are rejected: every draw costs one Go-side
// segment per line and the run deadline is only checked between Lua
// instructions.
func (e *Engine) setLines(L *lua.LState) int {
	v, h := L.CheckInt(1), L.CheckInt(2)
	w, ht := e.renderer.Surface().Size()
	if v > max(w, 1) {
		return e.raise(L, fmt.Errorf("%w: %d vertical lines on a surface %d units wide", grid.ErrInvalidArgument, v, w))
	}
	if h > max(ht, 1) {
		return e.raise(L, fmt.Errorf("%w: %d horizontal lines on a surface %d units high", grid.ErrInvalidArgument, h, ht))
	}
	return e.check(L, e.renderer.SetLineCounts(v, h))
}

// set_major(color [, redraw])
func (e *Engine) setMajor(L *lua.LState) int {
	return e.check(L, e.renderer.SetColorMajor(L.CheckString(1), L.OptBool(2, false)))
}

// set_minor(color [, redraw])
func (e *Engine) setMinor(L *lua.LState) int {
	return e.check(L, e.renderer.SetColorMinor(L.CheckString(1), L.OptBool(2, false)))
}

// set_background(color [, redraw])
func (e *Engine) setBackground(L *lua.LState) int {
	return e.check(L, e.renderer.SetBackgroundColor(L.CheckString(1), L.OptBool(2, false)))
}

// set_fill(color)
func (e *Engine) setFill(L *lua.LState) int {
	return e.check(L, e.renderer.SetFillColor(L.CheckString(1)))
}

// set_major_lines(enabled)
func (e *Engine) setMajorLines(L *lua.LState) int {
	e.renderer.SetDrawMajorLines(L.CheckBool(1))
	return 0
}

// set_interval(n)
func (e *Engine) setInterval(L *lua.LState) int {
	return e.check(L, e.renderer.SetMajorLineInterval(L.CheckInt(1)))
}

// cell_size() -> width, height
func (e *Engine) cellSize(L *lua.LState) int {
	L.Push(lua.LNumber(e.renderer.CellWidth()))
	L.Push(lua.LNumber(e.renderer.CellHeight()))
	return 2
}

// lines() -> vertical, horizontal
func (e *Engine) lines(L *lua.LState) int {
	v, h := e.renderer.LineCounts()
	L.Push(lua.LNumber(v))
	L.Push(lua.LNumber(h))
	return 2
}

// size() -> width, height of the surface
func (e *Engine) size(L *lua.LState) int {
	w, h := e.renderer.Surface().Size()
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

// cell_at(x, y) -> col, row or nil
func (e *Engine) cellAt(L *lua.LState) int {
	col, row, ok := e.renderer.CellAt(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(col))
	L.Push(lua.LNumber(row))
	return 2
}
