package model

import "github.com/google/uuid"

// ProductUnit represents one catalog product to be packed into masterpack
// containers. It is read-only input: the solver never mutates it.
type ProductUnit struct {
	ID       string       `json:"id"`
	SKU      string       `json:"sku"`
	Unit     Dimensions3D `json:"unit"`     // Raw unit size (in)
	Weight   float64      `json:"weight"`   // Unit weight (lb)
	Baseline int          `json:"baseline"` // Observed legacy units per container, 0 = none
	Observed Dimensions3D `json:"observed"` // Observed legacy container size, zero value = none
	Notes    string       `json:"notes,omitempty"`
}

// NewProductUnit creates a ProductUnit with a generated short ID.
func NewProductUnit(sku string, l, w, h, weight float64) ProductUnit {
	return ProductUnit{
		ID:     uuid.New().String()[:8],
		SKU:    sku,
		Unit:   Dimensions3D{Length: l, Width: w, Height: h},
		Weight: weight,
	}
}

// HasBaseline reports whether a legacy per-container count was recorded.
func (p ProductUnit) HasBaseline() bool {
	return p.Baseline > 0
}

// ContainerSpec describes a masterpack container.
type ContainerSpec struct {
	External      Dimensions3D `json:"external"`       // Outside dimensions (in)
	WallThickness float64      `json:"wall_thickness"` // Per-wall board thickness (in)
	TareWeight    float64      `json:"tare_weight"`    // Empty container weight (lb)
}

// Internal returns the usable interior dimensions: external minus two wall
// thicknesses per axis. The result may be non-positive for a degenerate
// spec; callers must check Valid before solving.
func (c ContainerSpec) Internal() Dimensions3D {
	t := 2 * c.WallThickness
	return Dimensions3D{
		Length: c.External.Length - t,
		Width:  c.External.Width - t,
		Height: c.External.Height - t,
	}
}

// Valid reports whether the spec yields strictly positive interior space.
func (c ContainerSpec) Valid() bool {
	return c.WallThickness >= 0 && c.External.Positive() && c.Internal().Positive()
}

// Arrangement is the result of fitting one product into one container.
// A non-fitting result is the Fits == false variant of the same type;
// it is normal data, not an error.
type Arrangement struct {
	Rotation    Rotation `json:"rotation"`
	CountLength int      `json:"count_length"` // Units along the container length
	CountWidth  int      `json:"count_width"`  // Units along the container width
	CountHeight int      `json:"count_height"` // Vertical layers of units
	TotalCount  int      `json:"total_count"`
	Utilization float64  `json:"utilization"`  // Occupied volume / internal volume, (0,1]
	GrossWeight float64  `json:"gross_weight"` // Units plus tare (lb)
	Score       float64  `json:"score"`

	Fits        bool   `json:"fits"`
	LowDensity  bool   `json:"low_density"`
	Overweight  bool   `json:"overweight"`
	FailingAxes []Axis `json:"failing_axes,omitempty"` // Internal axes too small for the unit when !Fits
}

// LayerPattern names how successive pallet layers are arranged.
type LayerPattern string

const (
	PatternColumn    LayerPattern = "column"    // Same orientation every layer
	PatternInterlock LayerPattern = "interlock" // Alternate 90-degree rotation per layer
	PatternBrick     LayerPattern = "brick"     // Offset rows (unsupported, falls back to column)
	PatternPinwheel  LayerPattern = "pinwheel"  // Rotational blocks (unsupported, falls back to column)
	PatternSplitRow  LayerPattern = "split-row" // Height-alternating rows (unsupported, falls back to column)
)

// AllPatterns lists every named pattern in a fixed order.
var AllPatterns = []LayerPattern{
	PatternColumn, PatternInterlock, PatternBrick, PatternPinwheel, PatternSplitRow,
}

// Supported reports whether the pattern has a real layout algorithm.
// Unsupported patterns fall back to the column pattern, and the resulting
// PalletLayout carries FallbackApplied so callers never mistake the
// fallback for the pattern they asked for.
func (p LayerPattern) Supported() bool {
	switch p {
	case PatternColumn, PatternInterlock:
		return true
	default:
		return false
	}
}

// LayerPlan describes one pallet layer of containers.
type LayerPlan struct {
	Rotated         bool    `json:"rotated"` // Container turned 90 degrees on the footprint
	CountX          int     `json:"count_x"` // Containers along the footprint X axis
	CountY          int     `json:"count_y"` // Containers along the footprint Y axis
	PerLayer        int     `json:"per_layer"`
	OverhangX       float64 `json:"overhang_x"` // Unused footprint remainder (in)
	OverhangY       float64 `json:"overhang_y"`
	Coverage        float64 `json:"coverage"` // Used footprint area ratio
	ExceedsOverhang bool    `json:"exceeds_overhang"`
}

// InterlockFit is the result of the alternating-orientation feasibility
// check used by the container dimension search.
type InterlockFit struct {
	Feasible    bool      `json:"feasible"`
	Layer1      LayerPlan `json:"layer1"` // Odd layers, unrotated
	Layer2      LayerPlan `json:"layer2"` // Even layers, rotated 90 degrees
	AvgCoverage float64   `json:"avg_coverage"`
}

// PalletLayout describes a full pallet stack of one container size.
type PalletLayout struct {
	Pattern         LayerPattern `json:"pattern"`
	FallbackApplied bool         `json:"fallback_applied"`    // Requested pattern was unsupported
	Layer           LayerPlan    `json:"layer"`               // Odd layers
	AltLayer        *LayerPlan   `json:"alt_layer,omitempty"` // Even layers for interlock, nil otherwise
	Layers          int          `json:"layers"`
	TotalContainers int          `json:"total_containers"`
	StackHeight     float64      `json:"stack_height"` // Pallet base plus all layers (in)
	Coverage        float64      `json:"coverage"`     // Mean footprint coverage across layers
	ExceedsOverhang bool         `json:"exceeds_overhang"`
}

// PalletConfig describes the pallet a container size is stacked on.
type PalletConfig struct {
	FootprintX   float64        `json:"footprint_x"`   // Pallet deck length (in)
	FootprintY   float64        `json:"footprint_y"`   // Pallet deck width (in)
	BaseHeight   float64        `json:"base_height"`   // Deck height (in)
	TargetHeight float64        `json:"target_height"` // Max total stack height (in)
	MaxOverhang  float64        `json:"max_overhang"`  // Allowed unused remainder per axis (in)
	Patterns     []LayerPattern `json:"patterns"`      // Allowed layer patterns
}

// Valid reports whether the footprint and height budget are usable.
func (p PalletConfig) Valid() bool {
	return p.FootprintX > 0 && p.FootprintY > 0 &&
		p.BaseHeight >= 0 && p.TargetHeight > p.BaseHeight && p.MaxOverhang >= 0
}

// ProductFit pairs a catalog product with its arrangement in one candidate.
type ProductFit struct {
	ProductID   string      `json:"product_id"`
	SKU         string      `json:"sku"`
	Arrangement Arrangement `json:"arrangement"`
}

// CandidateScore is one evaluated container size from the dimension search.
type CandidateScore struct {
	Container        ContainerSpec `json:"container"`
	AllFit           bool          `json:"all_fit"`
	Fits             []ProductFit  `json:"fits"`
	AvgUtilization   float64       `json:"avg_utilization"`
	AvgBaselineRatio float64       `json:"avg_baseline_ratio"`
	Interlock        InterlockFit  `json:"interlock"`
	Rank             float64       `json:"rank"`
}

// SearchResult holds the outcome of a container dimension search.
// Feasible == false means no candidate in the swept range fit every
// product, which is distinct from a feasible-but-low-scoring result.
type SearchResult struct {
	Feasible  bool             `json:"feasible"`
	Best      *CandidateScore  `json:"best,omitempty"`
	TopN      []CandidateScore `json:"top_n,omitempty"`
	Evaluated int              `json:"evaluated"` // Candidates surviving the aspect prune
}

// Project ties everything together for save/load.
type Project struct {
	Name     string        `json:"name"`
	Catalog  []ProductUnit `json:"catalog"`
	Pallet   PalletConfig  `json:"pallet"`
	Settings SolveSettings `json:"settings"`
	Result   *SearchResult `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Catalog:  []ProductUnit{},
		Pallet:   DefaultPalletConfig(),
		Settings: DefaultSettings(),
	}
}
