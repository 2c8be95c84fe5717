package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix prefixes every environment variable the loader reads.
const DefaultEnvPrefix = "GRID_"

// EnvLoader builds a settings layer from environment variables.
//
// GRID_<SECTION>_<KEY> sets section.key; further words are camel-cased, so
// GRID_MAJOR_LINE_INTERVAL sets major.lineInterval. A few shorthands such
// as GRID_LOG_LEVEL are mapped explicitly.
type EnvLoader struct {
	prefix  string
	aliases map[string]string // variable name -> settings path
	environ func() []string
}

// NewEnvLoader reads the process environment. The prefix includes its
// trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		aliases: map[string]string{
			prefix + "LOG_LEVEL": "logging.level",
			prefix + "WIDTH":     "surface.width",
			prefix + "HEIGHT":    "surface.height",
		},
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom reads a fixed KEY=value list instead of the process
// environment.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return environ }
	return l
}

// AddMapping routes envVar to configPath, overriding the naming scheme.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.aliases[envVar] = configPath
}

// Load collects every prefixed variable that names a section key. An empty
// value is kept as the empty string rather than treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	layer := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, ok := l.aliases[name]
		if !ok {
			path = l.envToPath(name)
		}
		// Every setting lives in a section; a bare GRID_GRID would
		// replace the whole section with a scalar.
		if !strings.Contains(path, ".") {
			continue
		}
		setByPath(layer, strings.Split(path, "."), l.parseValue(value))
	}
	return layer, nil
}

// envToPath maps GRID_MAJOR_LINE_INTERVAL to major.lineInterval.
func (l *EnvLoader) envToPath(name string) string {
	words := strings.Split(strings.ToLower(strings.TrimPrefix(name, l.prefix)), "_")
	if len(words) == 1 {
		return words[0]
	}
	var key strings.Builder
	key.WriteString(words[1])
	for _, w := range words[2:] {
		if w != "" {
			key.WriteString(strings.ToUpper(w[:1]) + w[1:])
		}
	}
	return words[0] + "." + key.String()
}

// parseValue types a raw value: booleans by name, then integers, then the
// string itself. "1" and "0" stay integers since line counts and intervals
// are numeric.
func (l *EnvLoader) parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath stores value under the nested keys, creating maps as needed.
func setByPath(tree map[string]any, keys []string, value any) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, ok := tree[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[k] = next
		}
		tree = next
	}
	tree[keys[last]] = value
}
