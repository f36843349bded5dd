package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotation_CoversAllSixPermutations(t *testing.T) {
	d := Dimensions3D{Length: 1, Width: 2, Height: 3}

	seen := map[Dimensions3D]bool{}
	for _, r := range AllRotations {
		p := r.Apply(d)
		assert.False(t, seen[p], "rotation %s duplicates another permutation", r)
		seen[p] = true
		// Permutation preserves volume.
		assert.InDelta(t, d.Volume(), p.Volume(), 1e-12)
	}
	assert.Len(t, seen, 6)
}

func TestRotation_ApplyIsTotal(t *testing.T) {
	d := Dimensions3D{Length: 1, Width: 2, Height: 3}
	// Out-of-range values behave as the identity rotation.
	assert.Equal(t, d, Rotation(99).Apply(d))
	assert.Equal(t, "LWH", Rotation(99).String())
}

func TestDimensions3D_Extents(t *testing.T) {
	d := Dimensions3D{Length: 7, Width: 2, Height: 5}
	assert.Equal(t, 2.0, d.MinExtent())
	assert.Equal(t, 7.0, d.MaxExtent())
	assert.Equal(t, 70.0, d.Volume())
	assert.True(t, d.Positive())
	assert.False(t, Dimensions3D{Length: 7, Width: 0, Height: 5}.Positive())

	assert.Equal(t, 7.0, d.Extent(AxisLength))
	assert.Equal(t, 2.0, d.Extent(AxisWidth))
	assert.Equal(t, 5.0, d.Extent(AxisHeight))
}

func TestCompressionAllowance(t *testing.T) {
	assert.True(t, CompressionAllowance{}.Valid())
	assert.True(t, CompressionAllowance{Length: 0.15, Height: 0.9}.Valid())
	assert.False(t, CompressionAllowance{Width: 1.0}.Valid())
	assert.False(t, CompressionAllowance{Height: -0.1}.Valid())

	c := CompressionAllowance{Length: 0.1, Width: 0.2}
	got := c.Apply(Dimensions3D{Length: 10, Width: 10, Height: 10})
	assert.InDelta(t, 9.0, got.Length, 1e-9)
	assert.InDelta(t, 8.0, got.Width, 1e-9)
	assert.InDelta(t, 10.0, got.Height, 1e-9)
}

func TestContainerSpec_Internal(t *testing.T) {
	spec := ContainerSpec{
		External:      Dimensions3D{Length: 20, Width: 15, Height: 14},
		WallThickness: 0.5,
	}
	internal := spec.Internal()
	assert.Equal(t, Dimensions3D{Length: 19, Width: 14, Height: 13}, internal)
	assert.True(t, spec.Valid())
}

func TestContainerSpec_InvalidWhenWallsConsumeInterior(t *testing.T) {
	spec := ContainerSpec{
		External:      Dimensions3D{Length: 4, Width: 4, Height: 4},
		WallThickness: 2,
	}
	assert.False(t, spec.Valid())

	spec.WallThickness = -0.1
	assert.False(t, spec.Valid())
}

func TestLayerPattern_Supported(t *testing.T) {
	assert.True(t, PatternColumn.Supported())
	assert.True(t, PatternInterlock.Supported())
	assert.False(t, PatternBrick.Supported())
	assert.False(t, PatternPinwheel.Supported())
	assert.False(t, PatternSplitRow.Supported())
	assert.False(t, LayerPattern("diagonal").Supported())
}

func TestNewProductUnit(t *testing.T) {
	p := NewProductUnit("SKU-1", 6, 4, 3, 0.9)
	assert.Len(t, p.ID, 8)
	assert.Equal(t, "SKU-1", p.SKU)
	assert.Equal(t, Dimensions3D{Length: 6, Width: 4, Height: 3}, p.Unit)
	assert.False(t, p.HasBaseline())

	p.Baseline = 24
	assert.True(t, p.HasBaseline())
}

func TestCatalog_AddRemoveFind(t *testing.T) {
	var c Catalog
	a := NewProductUnit("A", 1, 1, 1, 0.1)
	b := NewProductUnit("B", 2, 2, 2, 0.2)
	c.Add(a)
	c.Add(b)

	found, ok := c.FindBySKU("B")
	require.True(t, ok)
	assert.Equal(t, b.ID, found.ID)

	assert.True(t, c.Remove(a.ID))
	assert.False(t, c.Remove(a.ID))
	assert.Len(t, c.Products, 1)

	_, ok = c.FindBySKU("A")
	assert.False(t, ok)
}

func TestSampleCatalog_IsFreshPerCall(t *testing.T) {
	first := SampleCatalog()
	first.Products[0].SKU = "MUTATED"

	second := SampleCatalog()
	assert.NotEqual(t, "MUTATED", second.Products[0].SKU)
	assert.NotEmpty(t, second.Products)
	for _, p := range second.Products {
		assert.True(t, p.Unit.Positive())
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Compression.Valid())
	assert.NotEmpty(t, s.PreferredMultiples)
	assert.Equal(t, 5, s.TopN)
	assert.Equal(t, 500.0, s.Rank.Utilization)
	assert.Equal(t, 0.1, s.Rank.Volume)
	assert.Equal(t, 300.0, s.Rank.BaselineRatio)
	assert.Equal(t, 200.0, s.Rank.InterlockBonus)
	assert.Equal(t, 300.0, s.Rank.CoverageBonus)

	p := DefaultPalletConfig()
	assert.True(t, p.Valid())
	assert.Equal(t, 48.0, p.FootprintX)
	assert.Equal(t, 40.0, p.FootprintY)
}
