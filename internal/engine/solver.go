// Package engine implements the masterpack packing core: the unit
// arrangement solver, the pallet layer stacker and the container
// dimension search. Everything here is a pure function over immutable
// inputs; results are plain data with no formatting or persistence.
package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/MasterPack/internal/model"
)

// SolveArrangement finds the best axis-aligned rotation and grid for one
// product unit inside a container interior. Rotations are enumerated in
// the fixed model.AllRotations order and score ties keep the earlier
// rotation, so output is reproducible. A unit that fits in no rotation
// comes back with Fits == false and the too-small internal axes listed;
// that is a normal result, not an error.
func SolveArrangement(unit, internal model.Dimensions3D, comp model.CompressionAllowance, settings model.SolveSettings) (model.Arrangement, error) {
	if !unit.Positive() {
		return model.Arrangement{}, fmt.Errorf("unit %+v: %w", unit, ErrInvalidGeometry)
	}
	if !internal.Positive() {
		return model.Arrangement{}, fmt.Errorf("container interior %+v: %w", internal, ErrInvalidGeometry)
	}
	if !comp.Valid() {
		return model.Arrangement{}, fmt.Errorf("compression %+v: %w", comp, ErrInvalidGeometry)
	}

	best := model.Arrangement{Fits: false}
	found := false

	for _, rot := range model.AllRotations {
		adjusted := comp.Apply(rot.Apply(unit))

		nl := int(math.Floor(internal.Length / adjusted.Length))
		nw := int(math.Floor(internal.Width / adjusted.Width))
		nh := int(math.Floor(internal.Height / adjusted.Height))
		if nl < 1 || nw < 1 || nh < 1 {
			continue
		}

		total := nl * nw * nh
		utilization := float64(total) * adjusted.Volume() / internal.Volume()
		score := multipleCredit(total, settings.PreferredMultiples)*settings.Solve.MultipleBonus +
			utilization*settings.Solve.Utilization -
			float64(nh)*settings.Solve.LayerPenalty

		if !found || score > best.Score {
			best = model.Arrangement{
				Rotation:    rot,
				CountLength: nl,
				CountWidth:  nw,
				CountHeight: nh,
				TotalCount:  total,
				Utilization: utilization,
				Score:       score,
				Fits:        true,
			}
			found = true
		}
	}

	if !found {
		return noFitResult(unit, internal), nil
	}
	best.LowDensity = settings.MinUtilization > 0 && best.Utilization < settings.MinUtilization
	return best, nil
}

// SolveProduct runs SolveArrangement for a catalog product against a
// container spec, filling in the weight-derived fields.
func SolveProduct(p model.ProductUnit, spec model.ContainerSpec, settings model.SolveSettings) (model.Arrangement, error) {
	if !spec.Valid() {
		return model.Arrangement{}, fmt.Errorf("container %+v: %w", spec, ErrInvalidGeometry)
	}
	arr, err := SolveArrangement(p.Unit, spec.Internal(), settings.Compression, settings)
	if err != nil || !arr.Fits {
		return arr, err
	}
	arr.GrossWeight = float64(arr.TotalCount)*p.Weight + spec.TareWeight
	arr.Overweight = settings.MaxGrossWeight > 0 && arr.GrossWeight > settings.MaxGrossWeight
	return arr, nil
}

// multipleCredit scores how well total lines up with the caller's
// preferred case multiples: 1.0 when total is an exact multiple of any
// preferred value, otherwise partial credit decaying linearly with the
// distance to the nearest multiple.
func multipleCredit(total int, preferred []int) float64 {
	best := 0.0
	for _, m := range preferred {
		if m <= 0 {
			continue
		}
		if total%m == 0 {
			return 1.0
		}
		dist := float64(total % m)
		if up := float64(m) - dist; up < dist {
			dist = up
		}
		if credit := 1.0 - dist/float64(m); credit > best {
			best = credit
		}
	}
	return best
}

// noFitResult reports which internal axes are smaller than the unit's
// smallest extent. In the worst case all three are listed, meaning the
// unit cannot enter the container in any orientation.
func noFitResult(unit, internal model.Dimensions3D) model.Arrangement {
	smallest := unit.MinExtent()
	var failing []model.Axis
	for _, a := range []model.Axis{model.AxisLength, model.AxisWidth, model.AxisHeight} {
		if internal.Extent(a) < smallest {
			failing = append(failing, a)
		}
	}
	return model.Arrangement{Fits: false, FailingAxes: failing}
}
