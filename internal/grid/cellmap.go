package grid

import "fmt"

// CellMap holds per-cell values, indexed [row][col]. A flat map is a single row.
type CellMap [][]string

// FillMode selects which cells a map fill repaints.
type FillMode int

const (
	// FillChangesOnly repaints cells whose value differs from the previous map.
	FillChangesOnly FillMode = iota
	// FillFull repaints every cell.
	FillFull
)

// String returns the mode name.
func (m FillMode) String() string {
	switch m {
	case FillChangesOnly:
		return "changes-only"
	case FillFull:
		return "full"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// MapCheckType selects the shape check IsValidMap applies.
type MapCheckType int

const (
	MapExactDimensions MapCheckType = iota
	MapFillsSpace
	MapMatchesHeight
	MapMatchesWidth
	MapFlat
	Map2D
)

var mapCheckNames = [...]string{
	MapExactDimensions: "exact-dimensions",
	MapFillsSpace:      "fills-space",
	MapMatchesHeight:   "matches-height",
	MapMatchesWidth:    "matches-width",
	MapFlat:            "flat",
	Map2D:              "2d",
}

// String returns the check name.
func (c MapCheckType) String() string {
	if c >= 0 && int(c) < len(mapCheckNames) {
		return mapCheckNames[c]
	}
	return fmt.Sprintf("MapCheckType(%d)", int(c))
}

// MapFill will paint m's values across the grid. It has no contract yet and
// always returns an error wrapping ErrNotSupported without drawing.
func (r *Renderer) MapFill(m CellMap, mode FillMode) error {
	r.logger.Warn("map fill requested", "id", r.id, "mode", mode.String(), "rows", len(m))
	return fmt.Errorf("map fill (%s): %w", mode, ErrNotSupported)
}

// IsValidMap will check m's shape against the grid. It has no contract yet
// and always returns false with an error wrapping ErrNotSupported.
func (r *Renderer) IsValidMap(m CellMap, check MapCheckType) (bool, error) {
	r.logger.Warn("map validation requested", "id", r.id, "check", check.String(), "rows", len(m))
	return false, fmt.Errorf("map check (%s): %w", check, ErrNotSupported)
}
