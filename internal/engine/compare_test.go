package engine

import (
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	settings := searchTestSettings()
	settings.Compression = model.CompressionAllowance{Height: 0.05}
	pallet := searchTestPallet()

	scenarios := BuildDefaultScenarios(settings, pallet)

	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Current Settings")
	assert.Contains(t, names, "No Compression")
	assert.Contains(t, names, "Zero Overhang")
	// The double-wall variant always appears.
	assert.Len(t, scenarios, 4)
}

func TestCompareScenarios_RunsAllVariants(t *testing.T) {
	catalog := []model.ProductUnit{
		model.NewProductUnit("A", 6, 4, 3, 0.5),
	}
	settings := searchTestSettings()
	pallet := searchTestPallet()

	scenarios := BuildDefaultScenarios(settings, pallet)
	results := CompareScenarios(scenarios, catalog, BoundingRange{Min: 14, Max: 18, Step: 2})

	require.Len(t, results, len(scenarios))
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		require.NoError(t, r.Err)
		if r.Result.Feasible {
			assert.Greater(t, r.AvgUtilization, 0.0)
		}
	}
}

func TestCompareScenarios_BadScenarioDoesNotAbortBatch(t *testing.T) {
	catalog := []model.ProductUnit{model.NewProductUnit("A", 4, 4, 4, 0.5)}
	settings := searchTestSettings()
	pallet := searchTestPallet()

	broken := settings
	broken.WallThickness = 100 // no candidate keeps an interior

	results := CompareScenarios([]ComparisonScenario{
		{Name: "Broken", Settings: broken, Pallet: pallet},
		{Name: "Fine", Settings: settings, Pallet: pallet},
	}, catalog, BoundingRange{Min: 14, Max: 16, Step: 1})

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.True(t, results[1].Result.Feasible)
}
