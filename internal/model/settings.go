package model

// SolveWeights are the scoring knobs for the unit arrangement solver.
// The defaults are tuned values carried over from production use, not
// derived quantities; treat them as replaceable policy.
type SolveWeights struct {
	MultipleBonus float64 `json:"multiple_bonus"` // Full credit when the count hits a preferred multiple
	Utilization   float64 `json:"utilization"`    // Reward per unit of volumetric utilization
	LayerPenalty  float64 `json:"layer_penalty"`  // Penalty per vertical layer inside the container
}

// RankWeights are the scoring knobs for the container dimension search.
type RankWeights struct {
	Utilization    float64 `json:"utilization"`     // Per unit of average utilization
	Volume         float64 `json:"volume"`          // Penalty per cubic inch of candidate volume
	BaselineRatio  float64 `json:"baseline_ratio"`  // Per unit of average achieved/baseline ratio
	InterlockBonus float64 `json:"interlock_bonus"` // Flat bonus when interlocking is feasible
	CoverageBonus  float64 `json:"coverage_bonus"`  // Per unit of average interlock coverage
}

// DefaultSolveWeights returns the production-tuned solver weights.
func DefaultSolveWeights() SolveWeights {
	return SolveWeights{
		MultipleBonus: 50,
		Utilization:   100,
		LayerPenalty:  0.5,
	}
}

// DefaultRankWeights returns the production-tuned search weights.
func DefaultRankWeights() RankWeights {
	return RankWeights{
		Utilization:    500,
		Volume:         0.1,
		BaselineRatio:  300,
		InterlockBonus: 200,
		CoverageBonus:  300,
	}
}

// SolveSettings holds everything the engine needs beyond the catalog and
// pallet: container construction, scoring policy and fit thresholds.
type SolveSettings struct {
	WallThickness      float64              `json:"wall_thickness"` // Container board thickness (in)
	TareWeight         float64              `json:"tare_weight"`    // Empty container weight (lb)
	PreferredMultiples []int                `json:"preferred_multiples"`
	Compression        CompressionAllowance `json:"compression"`
	Solve              SolveWeights         `json:"solve_weights"`
	Rank               RankWeights          `json:"rank_weights"`
	MaxGrossWeight     float64              `json:"max_gross_weight"` // 0 = no limit (lb)
	MinUtilization     float64              `json:"min_utilization"`  // Below this an arrangement is flagged low-density
	TopN               int                  `json:"top_n"`            // Candidates returned by the search
	Workers            int                  `json:"workers"`          // 0 = one per CPU
}

// DefaultSettings returns settings for a standard corrugated masterpack
// program on a GMA pallet.
func DefaultSettings() SolveSettings {
	return SolveSettings{
		WallThickness:      0.1875, // C-flute single wall
		TareWeight:         1.2,
		PreferredMultiples: []int{24, 12, 6},
		Compression:        CompressionAllowance{},
		Solve:              DefaultSolveWeights(),
		Rank:               DefaultRankWeights(),
		MaxGrossWeight:     50,
		MinUtilization:     0.6,
		TopN:               5,
		Workers:            0,
	}
}

// DefaultPalletConfig returns a 48x40 GMA pallet with a 60in stack target.
func DefaultPalletConfig() PalletConfig {
	return PalletConfig{
		FootprintX:   48,
		FootprintY:   40,
		BaseHeight:   5.5,
		TargetHeight: 60,
		MaxOverhang:  2,
		Patterns:     []LayerPattern{PatternColumn, PatternInterlock},
	}
}
