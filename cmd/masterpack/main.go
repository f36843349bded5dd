// Masterpack - container sizing and pallet layout calculator.
//
// Given a catalog of retail units, masterpack finds how many fit in a
// corrugated container, how containers stack on a pallet, and which
// container dimensions best serve the whole catalog.
//
// Build:
//
//	go build -o masterpack ./cmd/masterpack
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/piwi3910/MasterPack/internal/config"
	"github.com/piwi3910/MasterPack/internal/engine"
	"github.com/piwi3910/MasterPack/internal/export"
	"github.com/piwi3910/MasterPack/internal/importer"
	"github.com/piwi3910/MasterPack/internal/logging"
	"github.com/piwi3910/MasterPack/internal/model"
	"github.com/piwi3910/MasterPack/internal/project"
)

func main() {
	app := kingpin.New("masterpack", "Masterpack container sizing and pallet layout calculator")

	configFile := app.Flag("config", "Path to YAML configuration file").String()
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()
	catalogPath := app.Flag("catalog", "Path to catalog JSON (default ~/.masterpack/catalog.json)").String()
	profileName := app.Flag("profile", "Named pallet profile to use").String()

	wallFlag := app.Flag("wall", "Container wall thickness in inches").Default("-1").Float64()
	tareFlag := app.Flag("tare", "Empty container weight in pounds").Default("-1").Float64()
	multiplesFlag := app.Flag("multiples", "Comma-separated preferred carton multiples").String()
	maxGrossFlag := app.Flag("max-gross", "Maximum gross container weight in pounds").Default("-1").Float64()
	topNFlag := app.Flag("top-n", "Number of ranked candidates to report").Default("-1").Int()
	workersFlag := app.Flag("workers", "Parallel search workers (0 = one per CPU)").Default("-1").Int()
	targetHeightFlag := app.Flag("target-height", "Pallet stack height target in inches").Default("-1").Float64()
	maxOverhangFlag := app.Flag("max-overhang", "Allowed unused deck remainder in inches").Default("-1").Float64()
	patternsFlag := app.Flag("patterns", "Comma-separated layer patterns to allow").String()

	solveCmd := app.Command("solve", "Fit every catalog product into a fixed container size")
	solveLength := solveCmd.Flag("length", "External container length in inches").Required().Float64()
	solveWidth := solveCmd.Flag("width", "External container width in inches").Required().Float64()
	solveHeight := solveCmd.Flag("height", "External container height in inches").Required().Float64()

	palletCmd := app.Command("pallet", "Plan pallet layers for a container size")
	palletLength := palletCmd.Flag("length", "External container length in inches").Required().Float64()
	palletWidth := palletCmd.Flag("width", "External container width in inches").Required().Float64()
	palletHeight := palletCmd.Flag("height", "External container height in inches").Required().Float64()
	palletPattern := palletCmd.Flag("pattern", "Layer pattern (column, interlock); omit for best").String()

	searchCmd := app.Command("search", "Sweep container dimensions for the best catalog-wide fit")
	searchMin := searchCmd.Flag("min", "Minimum external dimension in inches").Required().Float64()
	searchMax := searchCmd.Flag("max", "Maximum external dimension in inches").Required().Float64()
	searchStep := searchCmd.Flag("step", "Sweep step in inches").Default("1").Float64()
	searchSave := searchCmd.Flag("save", "Save the search as a project file").String()

	importCmd := app.Command("import", "Import a product catalog from CSV or Excel")
	importFile := importCmd.Arg("file", "CSV or XLSX file to import").Required().String()
	importMerge := importCmd.Flag("merge", "Merge into the existing catalog instead of replacing it").Bool()

	reportCmd := app.Command("report", "Run a dimension search and export documents")
	reportMin := reportCmd.Flag("min", "Minimum external dimension in inches").Required().Float64()
	reportMax := reportCmd.Flag("max", "Maximum external dimension in inches").Required().Float64()
	reportStep := reportCmd.Flag("step", "Sweep step in inches").Default("1").Float64()
	reportPDF := reportCmd.Flag("pdf", "Write the ranking and layer diagrams to this PDF").String()
	reportDXF := reportCmd.Flag("dxf", "Write the pallet layer CAD drawing to this DXF").String()
	reportLabels := reportCmd.Flag("labels", "Write QR carton labels to this PDF").String()
	labelCount := reportCmd.Flag("label-count", "Labels per product").Default("1").Int()

	compareCmd := app.Command("compare", "Compare what-if settings scenarios over a search range")
	compareMin := compareCmd.Flag("min", "Minimum external dimension in inches").Required().Float64()
	compareMax := compareCmd.Flag("max", "Maximum external dimension in inches").Required().Float64()
	compareStep := compareCmd.Flag("step", "Sweep step in inches").Default("1").Float64()

	estimateCmd := app.Command("estimate", "Estimate containers, pallets and cost for an order quantity")
	estimateQty := estimateCmd.Flag("qty", "Order quantity in units").Required().Int()
	estimatePerContainer := estimateCmd.Flag("per-container", "Units per container").Required().Int()
	estimatePerPallet := estimateCmd.Flag("per-pallet", "Containers per pallet").Required().Int()
	estimateCost := estimateCmd.Flag("pallet-cost", "Shipping cost per pallet").Default("0").Float64()

	catalogCmd := app.Command("catalog", "Manage the product catalog")
	catalogExportCmd := catalogCmd.Command("export", "Export the catalog to a JSON file")
	catalogExportFile := catalogExportCmd.Arg("file", "Destination JSON file").Required().String()

	profileCmd := app.Command("pallet-profile", "Manage named pallet profiles")
	profileListCmd := profileCmd.Command("list", "List built-in and custom pallet profiles")
	profileSaveCmd := profileCmd.Command("save", "Save the effective pallet settings as a custom profile")
	profileSaveName := profileSaveCmd.Arg("name", "Profile name").Required().String()
	profileExportCmd := profileCmd.Command("export", "Export a pallet profile to a JSON file")
	profileExportName := profileExportCmd.Arg("name", "Profile name").Required().String()
	profileExportFile := profileExportCmd.Arg("file", "Destination JSON file").Required().String()
	profileImportCmd := profileCmd.Command("import", "Import a pallet profile from a JSON file")
	profileImportFile := profileImportCmd.Arg("file", "JSON file to import").Required().String()

	backupCmd := app.Command("backup", "Export or restore all application data")
	backupExportCmd := backupCmd.Command("export", "Write the catalog and custom profiles to a backup file")
	backupExportFile := backupExportCmd.Arg("file", "Destination backup JSON file").Required().String()
	backupImportCmd := backupCmd.Command("import", "Restore the catalog and custom profiles from a backup file")
	backupImportFile := backupImportCmd.Arg("file", "Backup JSON file to restore").Required().String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{ConfigFile: *configFile}
	if *wallFlag >= 0 {
		overrides.WallThickness = wallFlag
	}
	if *tareFlag >= 0 {
		overrides.TareWeight = tareFlag
	}
	if *multiplesFlag != "" {
		overrides.MultiplesStr = multiplesFlag
	}
	if *maxGrossFlag >= 0 {
		overrides.MaxGross = maxGrossFlag
	}
	if *topNFlag > 0 {
		overrides.TopN = topNFlag
	}
	if *workersFlag >= 0 {
		overrides.Workers = workersFlag
	}
	if *targetHeightFlag > 0 {
		overrides.TargetHeight = targetHeightFlag
	}
	if *maxOverhangFlag >= 0 {
		overrides.MaxOverhang = maxOverhangFlag
	}
	if *patternsFlag != "" {
		overrides.PatternsStr = patternsFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *profileName != "" {
		custom, err := project.LoadCustomProfilesFromDefault()
		if err != nil {
			logger.Warn("failed to load custom pallet profiles", zap.Error(err))
		}
		profile, ok := model.FindPalletProfile(*profileName, custom)
		if !ok {
			logger.Fatal("unknown pallet profile", zap.String("name", *profileName))
		}
		cfg.Pallet = profile.Pallet
	}

	switch command {
	case solveCmd.FullCommand():
		runSolve(logger, cfg, *catalogPath, *solveLength, *solveWidth, *solveHeight)
	case palletCmd.FullCommand():
		runPallet(logger, cfg, *palletLength, *palletWidth, *palletHeight, *palletPattern)
	case searchCmd.FullCommand():
		runSearch(logger, cfg, *catalogPath, *searchMin, *searchMax, *searchStep, *searchSave)
	case importCmd.FullCommand():
		runImport(logger, *catalogPath, *importFile, *importMerge)
	case reportCmd.FullCommand():
		runReport(logger, cfg, *catalogPath, *reportMin, *reportMax, *reportStep,
			*reportPDF, *reportDXF, *reportLabels, *labelCount)
	case compareCmd.FullCommand():
		runCompare(logger, cfg, *catalogPath, *compareMin, *compareMax, *compareStep)
	case estimateCmd.FullCommand():
		runEstimate(*estimateQty, *estimatePerContainer, *estimatePerPallet, *estimateCost)
	case catalogExportCmd.FullCommand():
		runCatalogExport(logger, *catalogPath, *catalogExportFile)
	case profileListCmd.FullCommand():
		runProfileList(logger)
	case profileSaveCmd.FullCommand():
		runProfileSave(logger, cfg, *profileSaveName)
	case profileExportCmd.FullCommand():
		runProfileExport(logger, *profileExportName, *profileExportFile)
	case profileImportCmd.FullCommand():
		runProfileImport(logger, *profileImportFile)
	case backupExportCmd.FullCommand():
		runBackupExport(logger, *catalogPath, *backupExportFile)
	case backupImportCmd.FullCommand():
		runBackupImport(logger, *catalogPath, *backupImportFile)
	}
}

// loadCatalog reads the catalog from the given path, falling back to the
// default location (creating the sample catalog on first run).
func loadCatalog(logger *zap.Logger, path string) model.Catalog {
	var (
		cat model.Catalog
		err error
	)
	if path != "" {
		cat, err = project.LoadCatalog(path)
	} else {
		cat, path, err = project.LoadOrCreateCatalog()
	}
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", path), zap.Error(err))
	}
	if len(cat.Products) == 0 {
		logger.Fatal("catalog is empty", zap.String("path", path))
	}
	logger.Debug("catalog loaded", zap.String("path", path), zap.Int("products", len(cat.Products)))
	return cat
}

// printJSON writes the result to stdout as indented JSON.
func printJSON(logger *zap.Logger, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Fatal("failed to encode result", zap.Error(err))
	}
}

func containerSpec(cfg config.Config, l, w, h float64) model.ContainerSpec {
	return model.ContainerSpec{
		External:      model.Dimensions3D{Length: l, Width: w, Height: h},
		WallThickness: cfg.Solve.WallThickness,
		TareWeight:    cfg.Solve.TareWeight,
	}
}

func runSolve(logger *zap.Logger, cfg config.Config, catalogPath string, l, w, h float64) {
	cat := loadCatalog(logger, catalogPath)
	spec := containerSpec(cfg, l, w, h)

	fits := make([]model.ProductFit, 0, len(cat.Products))
	for _, p := range cat.Products {
		arr, err := engine.SolveProduct(p, spec, cfg.Solve)
		if err != nil {
			logger.Fatal("solve failed", zap.String("sku", p.SKU), zap.Error(err))
		}
		fits = append(fits, model.ProductFit{ProductID: p.ID, SKU: p.SKU, Arrangement: arr})
	}
	printJSON(logger, fits)
}

func runPallet(logger *zap.Logger, cfg config.Config, l, w, h float64, pattern string) {
	external := model.Dimensions3D{Length: l, Width: w, Height: h}

	var (
		layout model.PalletLayout
		err    error
	)
	if pattern != "" {
		layout, err = engine.StackPallet(external, cfg.Pallet, model.LayerPattern(strings.ToLower(pattern)))
	} else {
		layout, err = engine.BestLayout(external, cfg.Pallet)
	}
	if err != nil {
		logger.Fatal("pallet planning failed", zap.Error(err))
	}
	printJSON(logger, layout)
}

func runSearch(logger *zap.Logger, cfg config.Config, catalogPath string, min, max, step float64, savePath string) {
	cat := loadCatalog(logger, catalogPath)
	rng := engine.BoundingRange{Min: min, Max: max, Step: step}

	result, err := engine.Search(cat.Products, cfg.Pallet, rng, cfg.Solve)
	if err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}
	logger.Info("search complete",
		zap.Int("evaluated", result.Evaluated),
		zap.Bool("feasible", result.Feasible))

	if savePath != "" {
		proj := model.Project{
			Name:     strings.TrimSuffix(filepath.Base(savePath), filepath.Ext(savePath)),
			Catalog:  cat.Products,
			Pallet:   cfg.Pallet,
			Settings: cfg.Solve,
			Result:   &result,
		}
		if err := project.SaveProject(savePath, proj); err != nil {
			logger.Fatal("failed to save project", zap.String("path", savePath), zap.Error(err))
		}
		logger.Info("project saved", zap.String("path", savePath))
	}

	printJSON(logger, result)
}

func runImport(logger *zap.Logger, catalogPath, file string, merge bool) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(file)
	default:
		result = importer.ImportCSV(file)
	}

	for _, warning := range result.Warnings {
		logger.Warn("import warning", zap.String("detail", warning))
	}
	for _, rowErr := range result.Errors {
		logger.Error("import row error", zap.String("detail", rowErr))
	}
	if len(result.Products) == 0 {
		logger.Fatal("no products imported", zap.String("file", file))
	}

	path := catalogPath
	var err error
	if path == "" {
		path, err = project.DefaultCatalogPath()
		if err != nil {
			logger.Fatal("failed to resolve catalog path", zap.Error(err))
		}
	}

	cat := model.Catalog{Products: result.Products}
	if merge {
		existing, loadErr := project.LoadCatalog(path)
		if loadErr != nil {
			logger.Fatal("failed to load existing catalog", zap.Error(loadErr))
		}
		seen := make(map[string]bool, len(existing.Products))
		for _, p := range existing.Products {
			seen[p.SKU] = true
		}
		for _, p := range result.Products {
			if !seen[p.SKU] {
				existing.Products = append(existing.Products, p)
				seen[p.SKU] = true
			}
		}
		cat = existing
	}

	if err := project.SaveCatalog(path, cat); err != nil {
		logger.Fatal("failed to save catalog", zap.String("path", path), zap.Error(err))
	}
	logger.Info("catalog saved",
		zap.String("path", path),
		zap.Int("imported", len(result.Products)),
		zap.Int("total", len(cat.Products)))
}

func runReport(logger *zap.Logger, cfg config.Config, catalogPath string, min, max, step float64,
	pdfPath, dxfPath, labelsPath string, labelCount int) {
	if pdfPath == "" && dxfPath == "" && labelsPath == "" {
		logger.Fatal("report needs at least one of --pdf, --dxf or --labels")
	}

	cat := loadCatalog(logger, catalogPath)
	rng := engine.BoundingRange{Min: min, Max: max, Step: step}

	result, err := engine.Search(cat.Products, cfg.Pallet, rng, cfg.Solve)
	if err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}
	if !result.Feasible {
		logger.Fatal("no container in the range fits every product")
	}

	layout, err := engine.BestLayout(result.Best.Container.External, cfg.Pallet)
	if err != nil {
		logger.Fatal("pallet planning failed", zap.Error(err))
	}

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, result, cfg.Pallet, layout); err != nil {
			logger.Fatal("PDF export failed", zap.Error(err))
		}
		logger.Info("PDF written", zap.String("path", pdfPath))
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, result.Best.Container, cfg.Pallet, layout); err != nil {
			logger.Fatal("DXF export failed", zap.Error(err))
		}
		logger.Info("DXF written", zap.String("path", dxfPath))
	}
	if labelsPath != "" {
		if err := export.ExportLabels(labelsPath, *result.Best, labelCount); err != nil {
			logger.Fatal("label export failed", zap.Error(err))
		}
		logger.Info("labels written", zap.String("path", labelsPath))
	}
}

func runCompare(logger *zap.Logger, cfg config.Config, catalogPath string, min, max, step float64) {
	cat := loadCatalog(logger, catalogPath)
	rng := engine.BoundingRange{Min: min, Max: max, Step: step}

	scenarios := engine.BuildDefaultScenarios(cfg.Solve, cfg.Pallet)
	results := engine.CompareScenarios(scenarios, cat.Products, rng)

	type scenarioRow struct {
		Name           string  `json:"name"`
		Feasible       bool    `json:"feasible"`
		BestRank       float64 `json:"best_rank"`
		BestVolume     float64 `json:"best_volume"`
		AvgUtilization float64 `json:"avg_utilization"`
		Interlocks     bool    `json:"interlocks"`
		Error          string  `json:"error,omitempty"`
	}

	rows := make([]scenarioRow, 0, len(results))
	for _, r := range results {
		row := scenarioRow{
			Name:           r.Scenario.Name,
			Feasible:       r.Result.Feasible,
			BestRank:       r.BestRank,
			BestVolume:     r.BestVolume,
			AvgUtilization: r.AvgUtilization,
			Interlocks:     r.Interlocks,
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}
	printJSON(logger, rows)
}

func runEstimate(qty, perContainer, perPallet int, palletCost float64) {
	estimate := model.CalculateShipmentEstimate(qty, perContainer, perPallet, palletCost)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(estimate)
}

func runCatalogExport(logger *zap.Logger, catalogPath, file string) {
	cat := loadCatalog(logger, catalogPath)
	if err := project.ExportCatalog(file, cat); err != nil {
		logger.Fatal("catalog export failed", zap.String("path", file), zap.Error(err))
	}
	logger.Info("catalog exported", zap.String("path", file), zap.Int("products", len(cat.Products)))
}

func runProfileList(logger *zap.Logger) {
	custom, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		logger.Fatal("failed to load custom pallet profiles", zap.Error(err))
	}
	printJSON(logger, append(model.BuiltInPalletProfiles(), custom...))
}

// addCustomProfile appends a profile to the custom set, rejecting names
// that collide with a built-in or an existing custom profile.
func addCustomProfile(existing []model.PalletProfile, p model.PalletProfile) ([]model.PalletProfile, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("profile needs a name")
	}
	if !p.Pallet.Valid() {
		return nil, fmt.Errorf("profile %q has an invalid pallet", p.Name)
	}
	if _, ok := model.FindPalletProfile(p.Name, existing); ok {
		return nil, fmt.Errorf("profile %q already exists", p.Name)
	}
	p.IsBuiltIn = false
	return append(existing, p), nil
}

func runProfileSave(logger *zap.Logger, cfg config.Config, name string) {
	path, err := project.DefaultProfilesPath()
	if err != nil {
		logger.Fatal("failed to resolve profiles path", zap.Error(err))
	}
	custom, err := project.LoadCustomProfiles(path)
	if err != nil {
		logger.Fatal("failed to load custom pallet profiles", zap.Error(err))
	}
	updated, err := addCustomProfile(custom, model.PalletProfile{Name: name, Pallet: cfg.Pallet})
	if err != nil {
		logger.Fatal("cannot save profile", zap.Error(err))
	}
	if err := project.SaveCustomProfiles(path, updated); err != nil {
		logger.Fatal("failed to save custom pallet profiles", zap.Error(err))
	}
	logger.Info("profile saved", zap.String("name", name), zap.String("path", path))
}

func runProfileExport(logger *zap.Logger, name, file string) {
	custom, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		logger.Fatal("failed to load custom pallet profiles", zap.Error(err))
	}
	profile, ok := model.FindPalletProfile(name, custom)
	if !ok {
		logger.Fatal("unknown pallet profile", zap.String("name", name))
	}
	if err := project.ExportProfile(file, profile); err != nil {
		logger.Fatal("profile export failed", zap.String("path", file), zap.Error(err))
	}
	logger.Info("profile exported", zap.String("name", name), zap.String("path", file))
}

func runProfileImport(logger *zap.Logger, file string) {
	profile, err := project.ImportProfile(file)
	if err != nil {
		logger.Fatal("profile import failed", zap.String("path", file), zap.Error(err))
	}
	path, err := project.DefaultProfilesPath()
	if err != nil {
		logger.Fatal("failed to resolve profiles path", zap.Error(err))
	}
	custom, err := project.LoadCustomProfiles(path)
	if err != nil {
		logger.Fatal("failed to load custom pallet profiles", zap.Error(err))
	}
	updated, err := addCustomProfile(custom, profile)
	if err != nil {
		logger.Fatal("cannot import profile", zap.Error(err))
	}
	if err := project.SaveCustomProfiles(path, updated); err != nil {
		logger.Fatal("failed to save custom pallet profiles", zap.Error(err))
	}
	logger.Info("profile imported", zap.String("name", profile.Name), zap.String("path", path))
}

func runBackupExport(logger *zap.Logger, catalogPath, file string) {
	cat := loadCatalog(logger, catalogPath)
	custom, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		logger.Fatal("failed to load custom pallet profiles", zap.Error(err))
	}
	if err := project.ExportAllData(file, cat, custom); err != nil {
		logger.Fatal("backup export failed", zap.String("path", file), zap.Error(err))
	}
	logger.Info("backup written",
		zap.String("path", file),
		zap.Int("products", len(cat.Products)),
		zap.Int("profiles", len(custom)))
}

// restoreBackup writes a backup's catalog and custom profiles to their
// stores. Loaded profiles are never treated as built-in.
func restoreBackup(backup project.BackupData, catalogPath, profilesPath string) error {
	if len(backup.Catalog.Products) == 0 {
		return fmt.Errorf("backup contains no products")
	}
	if err := project.SaveCatalog(catalogPath, backup.Catalog); err != nil {
		return fmt.Errorf("restore catalog: %w", err)
	}
	for i := range backup.Profiles {
		backup.Profiles[i].IsBuiltIn = false
	}
	if err := project.SaveCustomProfiles(profilesPath, backup.Profiles); err != nil {
		return fmt.Errorf("restore profiles: %w", err)
	}
	return nil
}

func runBackupImport(logger *zap.Logger, catalogPath, file string) {
	backup, err := project.ImportAllData(file)
	if err != nil {
		logger.Fatal("backup import failed", zap.String("path", file), zap.Error(err))
	}

	if catalogPath == "" {
		catalogPath, err = project.DefaultCatalogPath()
		if err != nil {
			logger.Fatal("failed to resolve catalog path", zap.Error(err))
		}
	}
	profilesPath, err := project.DefaultProfilesPath()
	if err != nil {
		logger.Fatal("failed to resolve profiles path", zap.Error(err))
	}

	if err := restoreBackup(backup, catalogPath, profilesPath); err != nil {
		logger.Fatal("backup restore failed", zap.Error(err))
	}
	logger.Info("backup restored",
		zap.String("catalog", catalogPath),
		zap.Int("products", len(backup.Catalog.Products)),
		zap.Int("profiles", len(backup.Profiles)))
}
