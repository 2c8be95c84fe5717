package grid

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// SettingsJSON returns the current settings as a nested JSON document:
//
//	{
//	  "MetaData":       {"version": ..., "id": ...},
//	  "DocumentData":   {"surface": {"width": ..., "height": ...}},
//	  "ObjectSettings": {"lineCountVertical": ..., ...}
//	}
func (r *Renderer) SettingsJSON() ([]byte, error) {
	cfg := r.Config()
	w, h := r.surface.Size()

	fields := []struct {
		path  string
		value any
	}{
		{"MetaData.version", Version},
		{"MetaData.id", r.id},
		{"DocumentData.surface.width", w},
		{"DocumentData.surface.height", h},
		{"DocumentData.surface.type", fmt.Sprintf("%T", r.surface)},
		{"ObjectSettings.lineCountVertical", cfg.LineCountVertical},
		{"ObjectSettings.lineCountHorizontal", cfg.LineCountHorizontal},
		{"ObjectSettings.cellWidth", cfg.CellWidth},
		{"ObjectSettings.cellHeight", cfg.CellHeight},
		{"ObjectSettings.drawMajorLines", cfg.DrawMajorLines},
		{"ObjectSettings.majorLineInterval", cfg.MajorLineInterval},
		{"ObjectSettings.colorMajor", cfg.ColorMajor},
		{"ObjectSettings.colorMinor", cfg.ColorMinor},
		{"ObjectSettings.backgroundColor", cfg.BackgroundColor},
		{"ObjectSettings.fillColor", cfg.FillColor},
	}

	doc := []byte(`{}`)
	var err error
	for _, f := range fields {
		doc, err = sjson.SetBytes(doc, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("settings %s: %w", f.path, err)
		}
	}
	return doc, nil
}
