package grid

import (
	"errors"
	"testing"

	"github.com/bonnth80/html-grid/internal/surface"
)

// Map fills and map validation are pending features: these tests pin the
// current "not supported" behaviour, not a functional contract.

func TestMapFillNotSupported(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	r := New(rec)

	for _, mode := range []FillMode{FillChangesOnly, FillFull} {
		err := r.MapFill(CellMap{{"#000", "#FFF"}}, mode)
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("MapFill(%s): expected ErrNotSupported, got %v", mode, err)
		}
	}
	if len(rec.Ops()) != 0 {
		t.Error("MapFill must not draw")
	}
}

func TestIsValidMapNotSupported(t *testing.T) {
	r := New(surface.NewRecorder(100, 100))
	checks := []MapCheckType{MapExactDimensions, MapFillsSpace, MapMatchesHeight, MapMatchesWidth, MapFlat, Map2D}
	for _, check := range checks {
		ok, err := r.IsValidMap(nil, check)
		if ok || !errors.Is(err, ErrNotSupported) {
			t.Errorf("IsValidMap(%s) = %v, %v; want false, ErrNotSupported", check, ok, err)
		}
	}
}

func TestModeNames(t *testing.T) {
	if FillFull.String() != "full" || FillChangesOnly.String() != "changes-only" {
		t.Error("unexpected fill mode names")
	}
	if FillMode(9).String() != "FillMode(9)" {
		t.Errorf("unexpected unknown mode name %q", FillMode(9).String())
	}
	if Map2D.String() != "2d" || MapCheckType(-1).String() != "MapCheckType(-1)" {
		t.Error("unexpected map check names")
	}
}
