// Package config loads grid settings for the command-line tools.
//
// Settings are layered, lowest priority first:
//
//  1. built-in defaults (Defaults)
//  2. a TOML or YAML file, chosen by extension
//  3. GRID_-prefixed environment variables
//
// Layers are plain map[string]any trees merged with DeepMerge and then
// decoded into a typed Settings value. Example file:
//
//	[surface]
//	width = 800
//	height = 600
//
//	[grid]
//	vertical = 40
//	horizontal = 30
//
//	[major]
//	enabled = true
//	interval = 5
//
//	[colors]
//	major = "#CCCCCC"
//	minor = "#EEEEEE"
//
// The same keys are reachable from the environment as GRID_<SECTION>_<KEY>,
// e.g. GRID_GRID_VERTICAL=20 or GRID_COLORS_MAJOR="#888".
package config
