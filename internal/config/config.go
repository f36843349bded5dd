package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/MasterPack/internal/model"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Solve  model.SolveSettings
	Pallet model.PalletConfig
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	WallThickness      float64   `yaml:"wall_thickness"`
	TareWeight         float64   `yaml:"tare_weight"`
	PreferredMultiples []int     `yaml:"preferred_multiples"`
	MaxGrossWeight     float64   `yaml:"max_gross_weight"`
	MinUtilization     float64   `yaml:"min_utilization"`
	TopN               int       `yaml:"top_n"`
	Workers            int       `yaml:"workers"`
	Compression        yamlComp  `yaml:"compression"`
	Pallet             yamlDeck  `yaml:"pallet"`
	Weights            yamlScore `yaml:"weights"`
}

// yamlComp represents the per-axis compression section in YAML.
type yamlComp struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// yamlDeck represents the pallet section in YAML.
type yamlDeck struct {
	FootprintX   float64  `yaml:"footprint_x"`
	FootprintY   float64  `yaml:"footprint_y"`
	BaseHeight   float64  `yaml:"base_height"`
	TargetHeight float64  `yaml:"target_height"`
	MaxOverhang  float64  `yaml:"max_overhang"`
	Patterns     []string `yaml:"patterns"`
}

// yamlScore represents the scoring weight section in YAML. Zero values
// mean "keep the default" so a partial section only tunes what it names.
type yamlScore struct {
	MultipleBonus  float64 `yaml:"multiple_bonus"`
	Utilization    float64 `yaml:"utilization"`
	LayerPenalty   float64 `yaml:"layer_penalty"`
	RankUtil       float64 `yaml:"rank_utilization"`
	RankVolume     float64 `yaml:"rank_volume"`
	RankBaseline   float64 `yaml:"rank_baseline_ratio"`
	InterlockBonus float64 `yaml:"rank_interlock_bonus"`
	CoverageBonus  float64 `yaml:"rank_coverage_bonus"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile    string
	WallThickness *float64
	TareWeight    *float64
	MultiplesStr  *string
	MaxGross      *float64
	TopN          *int
	Workers       *int
	TargetHeight  *float64
	MaxOverhang   *float64
	PatternsStr   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Solve:  model.DefaultSettings(),
		Pallet: model.DefaultPalletConfig(),
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.WallThickness > 0 {
		cfg.Solve.WallThickness = yamlCfg.WallThickness
	}
	if yamlCfg.TareWeight > 0 {
		cfg.Solve.TareWeight = yamlCfg.TareWeight
	}
	if len(yamlCfg.PreferredMultiples) > 0 {
		cfg.Solve.PreferredMultiples = yamlCfg.PreferredMultiples
	}
	if yamlCfg.MaxGrossWeight > 0 {
		cfg.Solve.MaxGrossWeight = yamlCfg.MaxGrossWeight
	}
	if yamlCfg.MinUtilization > 0 {
		cfg.Solve.MinUtilization = yamlCfg.MinUtilization
	}
	if yamlCfg.TopN > 0 {
		cfg.Solve.TopN = yamlCfg.TopN
	}
	if yamlCfg.Workers > 0 {
		cfg.Solve.Workers = yamlCfg.Workers
	}

	if yamlCfg.Compression.Length > 0 {
		cfg.Solve.Compression.Length = yamlCfg.Compression.Length
	}
	if yamlCfg.Compression.Width > 0 {
		cfg.Solve.Compression.Width = yamlCfg.Compression.Width
	}
	if yamlCfg.Compression.Height > 0 {
		cfg.Solve.Compression.Height = yamlCfg.Compression.Height
	}

	if yamlCfg.Pallet.FootprintX > 0 {
		cfg.Pallet.FootprintX = yamlCfg.Pallet.FootprintX
	}
	if yamlCfg.Pallet.FootprintY > 0 {
		cfg.Pallet.FootprintY = yamlCfg.Pallet.FootprintY
	}
	if yamlCfg.Pallet.BaseHeight > 0 {
		cfg.Pallet.BaseHeight = yamlCfg.Pallet.BaseHeight
	}
	if yamlCfg.Pallet.TargetHeight > 0 {
		cfg.Pallet.TargetHeight = yamlCfg.Pallet.TargetHeight
	}
	if yamlCfg.Pallet.MaxOverhang > 0 {
		cfg.Pallet.MaxOverhang = yamlCfg.Pallet.MaxOverhang
	}
	if len(yamlCfg.Pallet.Patterns) > 0 {
		cfg.Pallet.Patterns = parsePatterns(yamlCfg.Pallet.Patterns)
	}

	applyWeights(cfg, yamlCfg.Weights)
}

// applyWeights copies nonzero scoring weights from the YAML section.
func applyWeights(cfg *Config, w yamlScore) {
	if w.MultipleBonus > 0 {
		cfg.Solve.Solve.MultipleBonus = w.MultipleBonus
	}
	if w.Utilization > 0 {
		cfg.Solve.Solve.Utilization = w.Utilization
	}
	if w.LayerPenalty > 0 {
		cfg.Solve.Solve.LayerPenalty = w.LayerPenalty
	}
	if w.RankUtil > 0 {
		cfg.Solve.Rank.Utilization = w.RankUtil
	}
	if w.RankVolume > 0 {
		cfg.Solve.Rank.Volume = w.RankVolume
	}
	if w.RankBaseline > 0 {
		cfg.Solve.Rank.BaselineRatio = w.RankBaseline
	}
	if w.InterlockBonus > 0 {
		cfg.Solve.Rank.InterlockBonus = w.InterlockBonus
	}
	if w.CoverageBonus > 0 {
		cfg.Solve.Rank.CoverageBonus = w.CoverageBonus
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if wall := strings.TrimSpace(os.Getenv("MASTERPACK_WALL_THICKNESS")); wall != "" {
		if value, err := strconv.ParseFloat(wall, 64); err == nil && value > 0 {
			cfg.Solve.WallThickness = value
		}
	}

	if tare := strings.TrimSpace(os.Getenv("MASTERPACK_TARE_WEIGHT")); tare != "" {
		if value, err := strconv.ParseFloat(tare, 64); err == nil && value > 0 {
			cfg.Solve.TareWeight = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("MASTERPACK_MULTIPLES")); raw != "" {
		multiples, err := parseMultiples(raw)
		if err == nil && len(multiples) > 0 {
			cfg.Solve.PreferredMultiples = multiples
		}
	}

	if gross := strings.TrimSpace(os.Getenv("MASTERPACK_MAX_GROSS")); gross != "" {
		if value, err := strconv.ParseFloat(gross, 64); err == nil && value > 0 {
			cfg.Solve.MaxGrossWeight = value
		}
	}

	if workers := strings.TrimSpace(os.Getenv("MASTERPACK_WORKERS")); workers != "" {
		if value, err := strconv.Atoi(workers); err == nil && value >= 0 {
			cfg.Solve.Workers = value
		}
	}

	if target := strings.TrimSpace(os.Getenv("MASTERPACK_TARGET_HEIGHT")); target != "" {
		if value, err := strconv.ParseFloat(target, 64); err == nil && value > 0 {
			cfg.Pallet.TargetHeight = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.WallThickness != nil && *overrides.WallThickness > 0 {
		cfg.Solve.WallThickness = *overrides.WallThickness
	}

	if overrides.TareWeight != nil && *overrides.TareWeight > 0 {
		cfg.Solve.TareWeight = *overrides.TareWeight
	}

	if overrides.MultiplesStr != nil && *overrides.MultiplesStr != "" {
		multiples, err := parseMultiples(*overrides.MultiplesStr)
		if err != nil {
			return fmt.Errorf("parse preferred multiples: %w", err)
		}
		cfg.Solve.PreferredMultiples = multiples
	}

	if overrides.MaxGross != nil && *overrides.MaxGross > 0 {
		cfg.Solve.MaxGrossWeight = *overrides.MaxGross
	}

	if overrides.TopN != nil && *overrides.TopN > 0 {
		cfg.Solve.TopN = *overrides.TopN
	}

	if overrides.Workers != nil && *overrides.Workers >= 0 {
		cfg.Solve.Workers = *overrides.Workers
	}

	if overrides.TargetHeight != nil && *overrides.TargetHeight > 0 {
		cfg.Pallet.TargetHeight = *overrides.TargetHeight
	}

	if overrides.MaxOverhang != nil && *overrides.MaxOverhang >= 0 {
		cfg.Pallet.MaxOverhang = *overrides.MaxOverhang
	}

	if overrides.PatternsStr != nil && *overrides.PatternsStr != "" {
		cfg.Pallet.Patterns = parsePatterns(strings.Split(*overrides.PatternsStr, ","))
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Solve.WallThickness < 0 {
		return fmt.Errorf("wall thickness must be >= 0")
	}
	if !cfg.Solve.Compression.Valid() {
		return fmt.Errorf("compression allowances must be in [0, 1)")
	}
	if !cfg.Pallet.Valid() {
		return fmt.Errorf("pallet footprint and heights must be positive")
	}
	if cfg.Solve.TopN <= 0 {
		return fmt.Errorf("top_n must be positive")
	}
	return nil
}

// parseMultiples parses a comma-separated string of preferred carton
// multiples into a slice of positive integers.
func parseMultiples(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	multiples := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		if value <= 0 {
			return nil, fmt.Errorf("multiple must be positive, got %d", value)
		}
		multiples = append(multiples, value)
	}
	if len(multiples) == 0 {
		return nil, fmt.Errorf("no multiples provided")
	}
	return multiples, nil
}

// parsePatterns converts pattern names to LayerPattern values, keeping
// unknown names so the planner can report them as unsupported.
func parsePatterns(names []string) []model.LayerPattern {
	patterns := make([]model.LayerPattern, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		patterns = append(patterns, model.LayerPattern(name))
	}
	return patterns
}
