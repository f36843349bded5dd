package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/MasterPack/internal/model"
)

// planOrientation computes a single-orientation layer plan by floor
// division along each footprint axis. rotated swaps the container's
// length and width on the deck.
func planOrientation(external model.Dimensions3D, pallet model.PalletConfig, rotated bool) model.LayerPlan {
	dx, dy := external.Length, external.Width
	if rotated {
		dx, dy = dy, dx
	}

	cx := int(math.Floor(pallet.FootprintX / dx))
	cy := int(math.Floor(pallet.FootprintY / dy))

	plan := model.LayerPlan{
		Rotated:  rotated,
		CountX:   cx,
		CountY:   cy,
		PerLayer: cx * cy,
	}
	if cx > 0 {
		plan.OverhangX = pallet.FootprintX - float64(cx)*dx
	} else {
		plan.OverhangX = pallet.FootprintX
	}
	if cy > 0 {
		plan.OverhangY = pallet.FootprintY - float64(cy)*dy
	} else {
		plan.OverhangY = pallet.FootprintY
	}
	if plan.PerLayer > 0 {
		used := float64(cx) * dx * float64(cy) * dy
		plan.Coverage = used / (pallet.FootprintX * pallet.FootprintY)
	}
	plan.ExceedsOverhang = plan.OverhangX > pallet.MaxOverhang || plan.OverhangY > pallet.MaxOverhang
	return plan
}

// PlanLayer picks the better of the two practical container orientations
// on the pallet footprint. Among orientations within the overhang limit
// the higher container count wins; when neither orientation is within the
// limit, the higher-count plan is still returned with ExceedsOverhang set.
// A degraded plan is usable data, never a failure.
func PlanLayer(external model.Dimensions3D, pallet model.PalletConfig) (model.LayerPlan, error) {
	if !external.Positive() {
		return model.LayerPlan{}, fmt.Errorf("container external %+v: %w", external, ErrInvalidGeometry)
	}
	if !pallet.Valid() {
		return model.LayerPlan{}, fmt.Errorf("pallet %+v: %w", pallet, ErrInvalidGeometry)
	}

	normal := planOrientation(external, pallet, false)
	turned := planOrientation(external, pallet, true)

	switch {
	case !normal.ExceedsOverhang && !turned.ExceedsOverhang:
		if turned.PerLayer > normal.PerLayer {
			return turned, nil
		}
		return normal, nil
	case !normal.ExceedsOverhang:
		return normal, nil
	case !turned.ExceedsOverhang:
		return turned, nil
	default:
		// Degraded: keep the higher count and let the caller decide.
		if turned.PerLayer > normal.PerLayer {
			return turned, nil
		}
		return normal, nil
	}
}

// CheckInterlock plans the unrotated (odd layers) and rotated (even
// layers) orientations independently. Interlocking is feasible only when
// both put at least one container on the deck; the averaged coverage is
// what an alternating stack realizes.
func CheckInterlock(external model.Dimensions3D, pallet model.PalletConfig) (model.InterlockFit, error) {
	if !external.Positive() {
		return model.InterlockFit{}, fmt.Errorf("container external %+v: %w", external, ErrInvalidGeometry)
	}
	if !pallet.Valid() {
		return model.InterlockFit{}, fmt.Errorf("pallet %+v: %w", pallet, ErrInvalidGeometry)
	}

	fit := model.InterlockFit{
		Layer1: planOrientation(external, pallet, false),
		Layer2: planOrientation(external, pallet, true),
	}
	fit.Feasible = fit.Layer1.PerLayer >= 1 && fit.Layer2.PerLayer >= 1
	if fit.Feasible {
		fit.AvgCoverage = (fit.Layer1.Coverage + fit.Layer2.Coverage) / 2
	}
	return fit, nil
}

// StackPallet builds the full pallet stack for one container size under
// the given layer pattern. Patterns without a real algorithm fall back to
// the column pattern with FallbackApplied set.
func StackPallet(external model.Dimensions3D, pallet model.PalletConfig, pattern model.LayerPattern) (model.PalletLayout, error) {
	if !external.Positive() {
		return model.PalletLayout{}, fmt.Errorf("container external %+v: %w", external, ErrInvalidGeometry)
	}
	if !pallet.Valid() {
		return model.PalletLayout{}, fmt.Errorf("pallet %+v: %w", pallet, ErrInvalidGeometry)
	}

	layout := model.PalletLayout{Pattern: pattern}
	if !pattern.Supported() {
		layout.Pattern = model.PatternColumn
		layout.FallbackApplied = true
	}

	available := pallet.TargetHeight - pallet.BaseHeight
	layers := int(math.Floor(available / external.Height))
	if layers < 0 {
		layers = 0
	}
	layout.Layers = layers
	layout.StackHeight = pallet.BaseHeight + float64(layers)*external.Height

	if layout.Pattern == model.PatternInterlock {
		fit, err := CheckInterlock(external, pallet)
		if err != nil {
			return model.PalletLayout{}, err
		}
		if !fit.Feasible {
			// One orientation never fits; a same-orientation stack is the
			// honest answer.
			layout.Pattern = model.PatternColumn
			layout.FallbackApplied = true
		} else {
			layout.Layer = fit.Layer1
			alt := fit.Layer2
			layout.AltLayer = &alt
			odd := (layers + 1) / 2
			even := layers / 2
			layout.TotalContainers = odd*fit.Layer1.PerLayer + even*fit.Layer2.PerLayer
			layout.Coverage = fit.AvgCoverage
			layout.ExceedsOverhang = fit.Layer1.ExceedsOverhang || fit.Layer2.ExceedsOverhang
			return layout, nil
		}
	}

	plan, err := PlanLayer(external, pallet)
	if err != nil {
		return model.PalletLayout{}, err
	}
	layout.Layer = plan
	layout.TotalContainers = layers * plan.PerLayer
	layout.Coverage = plan.Coverage
	layout.ExceedsOverhang = plan.ExceedsOverhang
	return layout, nil
}

// BestLayout evaluates every allowed pattern and keeps the one stacking
// the most containers, breaking ties on coverage. An empty allowed list
// means the column pattern only.
func BestLayout(external model.Dimensions3D, pallet model.PalletConfig) (model.PalletLayout, error) {
	patterns := pallet.Patterns
	if len(patterns) == 0 {
		patterns = []model.LayerPattern{model.PatternColumn}
	}

	var best model.PalletLayout
	found := false
	for _, p := range patterns {
		layout, err := StackPallet(external, pallet, p)
		if err != nil {
			return model.PalletLayout{}, err
		}
		if !found ||
			layout.TotalContainers > best.TotalContainers ||
			(layout.TotalContainers == best.TotalContainers && layout.Coverage > best.Coverage) {
			best = layout
			found = true
		}
	}
	return best, nil
}
