package engine

import (
	"fmt"

	"github.com/piwi3910/MasterPack/internal/model"
)

// ComparisonScenario defines a named settings variant to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.SolveSettings
	Pallet   model.PalletConfig
}

// ComparisonResult holds the search outcome and headline statistics for
// a single scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Result         model.SearchResult
	Err            error
	BestRank       float64
	BestVolume     float64
	AvgUtilization float64
	Interlocks     bool
}

// CompareScenarios runs the dimension search once per scenario and
// returns results in scenario order, enabling side-by-side what-if
// comparison of wall thickness, compression, overhang policy and scoring
// weights. A scenario that errors is reported in place; it never aborts
// the batch.
func CompareScenarios(scenarios []ComparisonScenario, catalog []model.ProductUnit, rng BoundingRange) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, sc := range scenarios {
		res, err := Search(catalog, sc.Pallet, rng, sc.Settings)
		cr := ComparisonResult{Scenario: sc, Result: res, Err: err}
		if err == nil && res.Feasible {
			cr.BestRank = res.Best.Rank
			cr.BestVolume = res.Best.Container.External.Volume()
			cr.AvgUtilization = res.Best.AvgUtilization
			cr.Interlocks = res.Best.Interlock.Feasible
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates what-if variants of the given baseline:
// no compression, a thicker double-wall board, and a strict zero-overhang
// pallet.
func BuildDefaultScenarios(settings model.SolveSettings, pallet model.PalletConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: settings, Pallet: pallet},
	}

	if settings.Compression != (model.CompressionAllowance{}) {
		noComp := settings
		noComp.Compression = model.CompressionAllowance{}
		scenarios = append(scenarios, ComparisonScenario{
			Name: "No Compression", Settings: noComp, Pallet: pallet,
		})
	}

	doubleWall := settings
	doubleWall.WallThickness = settings.WallThickness * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Double Wall (%.3fin)", doubleWall.WallThickness),
		Settings: doubleWall,
		Pallet:   pallet,
	})

	if pallet.MaxOverhang > 0 {
		strict := pallet
		strict.MaxOverhang = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name: "Zero Overhang", Settings: settings, Pallet: strict,
		})
	}

	return scenarios
}
