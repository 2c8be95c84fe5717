// Package script drives a grid renderer from Lua.
//
// An Engine owns a sandboxed gopher-lua state with the base, table,
// string and math libraries. File loading functions and the package
// library are not available. The renderer is exposed as a global table
// named grid:
//
//	grid.set_lines(20, 10)
//	grid.set_major_lines(true)
//	grid.set_interval(5)
//	grid.draw()
//	for col = 0, 19 do
//	    grid.fill(col, col % 10, "rgb(200,0,0)")
//	end
//
// Renderer errors are raised as Lua errors. A script may catch them with
// pcall; uncaught ones are returned from Run with the original Go error
// available to errors.Is.
package script
