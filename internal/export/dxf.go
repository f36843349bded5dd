package export

import (
	"fmt"

	"github.com/piwi3910/MasterPack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// ExportDXF writes a top-down CAD drawing of the pallet layer layouts:
// the deck outline on one layer and each pallet layer's container grid on
// its own drawing layer. Warehouse teams load these into their racking
// and slotting tools.
func ExportDXF(path string, spec model.ContainerSpec, pallet model.PalletConfig, layout model.PalletLayout) error {
	if layout.Layer.PerLayer == 0 {
		return fmt.Errorf("no containers in layer plan to draw")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("DECK", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add deck layer: %w", err)
	}
	drawRect(d, 0, 0, pallet.FootprintX, pallet.FootprintY)

	if _, err := d.AddLayer("LAYER-ODD", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add odd layer: %w", err)
	}
	drawLayerGrid(d, spec.External, layout.Layer)

	if layout.AltLayer != nil {
		if _, err := d.AddLayer("LAYER-EVEN", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add even layer: %w", err)
		}
		drawLayerGrid(d, spec.External, *layout.AltLayer)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// drawLayerGrid draws one rectangle per container position in the plan.
func drawLayerGrid(d *drawing.Drawing, external model.Dimensions3D, plan model.LayerPlan) {
	dx, dy := external.Length, external.Width
	if plan.Rotated {
		dx, dy = dy, dx
	}
	for ix := 0; ix < plan.CountX; ix++ {
		for iy := 0; iy < plan.CountY; iy++ {
			drawRect(d, float64(ix)*dx, float64(iy)*dy, dx, dy)
		}
	}
}

// drawRect draws an axis-aligned rectangle as four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
