package grid

// Version is reported in the settings document.
const Version = "1.00.0001"

// PixelOffset shifts every line half a unit so one-unit strokes land on a
// single pixel row or column.
const PixelOffset = 0.5

// Defaults for a new renderer.
const (
	DefaultLineCount         = 40
	DefaultMajorLineInterval = 5
	DefaultColorMajor        = "#CCCCCC"
	DefaultColorMinor        = "#EEEEEE"
	DefaultBackgroundColor   = "#FFFFFF"
	DefaultFillColor         = "#000000"
)

// Config is a snapshot of a renderer's grid settings.
// Changing a Config has no effect on the renderer it came from.
type Config struct {
	// LineCountVertical is the number of vertical lines, i.e. columns.
	LineCountVertical int
	// LineCountHorizontal is the number of horizontal lines, i.e. rows.
	LineCountHorizontal int

	// CellWidth and CellHeight are derived from the surface size at the
	// time of the snapshot.
	CellWidth  float64
	CellHeight float64

	DrawMajorLines    bool
	MajorLineInterval int

	ColorMajor      string
	ColorMinor      string
	BackgroundColor string
	// FillColor is used by FillCell when no colour is given.
	FillColor string

	// CellData is reserved for map fills and is never populated yet.
	CellData CellMap
}

// DefaultConfig returns the settings of a freshly constructed renderer,
// without derived cell dimensions.
func DefaultConfig() Config {
	return Config{
		LineCountVertical:   DefaultLineCount,
		LineCountHorizontal: DefaultLineCount,
		DrawMajorLines:      false,
		MajorLineInterval:   DefaultMajorLineInterval,
		ColorMajor:          DefaultColorMajor,
		ColorMinor:          DefaultColorMinor,
		BackgroundColor:     DefaultBackgroundColor,
		FillColor:           DefaultFillColor,
	}
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	if c.CellData != nil {
		data := make(CellMap, len(c.CellData))
		for i, row := range c.CellData {
			data[i] = append([]string(nil), row...)
		}
		c.CellData = data
	}
	return c
}
