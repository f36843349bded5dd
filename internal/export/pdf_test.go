package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
)

// buildTestCandidate creates a realistic search winner for testing.
func buildTestCandidate() model.CandidateScore {
	return model.CandidateScore{
		Container: model.ContainerSpec{
			External:      model.Dimensions3D{Length: 20, Width: 15, Height: 14},
			WallThickness: 0.25,
			TareWeight:    1.2,
		},
		AllFit: true,
		Fits: []model.ProductFit{
			{
				ProductID: "p1",
				SKU:       "MUG-11OZ",
				Arrangement: model.Arrangement{
					Rotation:    model.RotationLWH,
					CountLength: 4, CountWidth: 4, CountHeight: 3,
					TotalCount:  48,
					Utilization: 0.92,
					GrossWeight: 44.4,
					Fits:        true,
				},
			},
			{
				ProductID: "p2",
				SKU:       "TUM-20OZ",
				Arrangement: model.Arrangement{
					Rotation:    model.RotationWHL,
					CountLength: 6, CountWidth: 2, CountHeight: 4,
					TotalCount:  48,
					Utilization: 0.81,
					GrossWeight: 37.2,
					Fits:        true,
				},
			},
		},
		AvgUtilization:   0.865,
		AvgBaselineRatio: 1.4,
		Interlock: model.InterlockFit{
			Feasible: true,
			Layer1: model.LayerPlan{
				CountX: 2, CountY: 2, PerLayer: 4,
				OverhangX: 8, OverhangY: 10, Coverage: 0.625,
			},
			Layer2: model.LayerPlan{
				Rotated: true, CountX: 3, CountY: 2, PerLayer: 6,
				OverhangX: 3, Coverage: 0.9375,
			},
			AvgCoverage: 0.78125,
		},
		Rank: 812.4,
	}
}

func buildTestSearchResult() model.SearchResult {
	cand := buildTestCandidate()
	return model.SearchResult{
		Feasible:  true,
		Best:      &cand,
		TopN:      []model.CandidateScore{cand},
		Evaluated: 125,
	}
}

func buildTestLayout() model.PalletLayout {
	cand := buildTestCandidate()
	alt := cand.Interlock.Layer2
	return model.PalletLayout{
		Pattern:         model.PatternInterlock,
		Layer:           cand.Interlock.Layer1,
		AltLayer:        &alt,
		Layers:          4,
		TotalContainers: 20,
		StackHeight:     61.5,
		Coverage:        0.78125,
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	err := ExportPDF(path, buildTestSearchResult(), model.DefaultPalletConfig(), buildTestLayout())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (ranking + 2 layer diagrams) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_ColumnLayoutSinglePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "column.pdf")

	layout := buildTestLayout()
	layout.Pattern = model.PatternColumn
	layout.AltLayer = nil

	err := ExportPDF(path, buildTestSearchResult(), model.DefaultPalletConfig(), layout)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_InfeasibleResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "none.pdf")

	err := ExportPDF(path, model.SearchResult{}, model.DefaultPalletConfig(), model.PalletLayout{})
	if err == nil {
		t.Fatal("expected error for infeasible result, got nil")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written for an infeasible result")
	}
}
