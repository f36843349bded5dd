// Package export provides functionality for exporting packing results
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/MasterPack/internal/model"
)

// layerColor represents an RGB color for a placed container.
type layerColor struct {
	R, G, B int
}

// layerColors alternates between odd and even pallet layers.
var layerColors = []layerColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a container dimension search:
// a ranking page for the top candidates, then one page per pallet layer
// diagram of the best candidate.
func ExportPDF(path string, result model.SearchResult, pallet model.PalletConfig, layout model.PalletLayout) error {
	if !result.Feasible || result.Best == nil {
		return fmt.Errorf("no feasible candidate to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderRankingPage(pdf, result)

	pdf.AddPage()
	renderLayerPage(pdf, result.Best.Container, pallet, layout.Layer, 1, layout)
	if layout.AltLayer != nil {
		pdf.AddPage()
		renderLayerPage(pdf, result.Best.Container, pallet, *layout.AltLayer, 2, layout)
	}

	return pdf.OutputFileAndClose(path)
}

// renderRankingPage lists the top candidates with their scores.
func renderRankingPage(pdf *fpdf.Fpdf, result model.SearchResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		"Masterpack Container Search", "", 0, "L", false, 0, "")

	best := result.Best
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	summary := fmt.Sprintf("Best: %.1f x %.1f x %.1f in | Avg utilization: %.1f%% | Candidates evaluated: %d",
		best.Container.External.Length, best.Container.External.Width, best.Container.External.Height,
		best.AvgUtilization*100, result.Evaluated)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, summary, "", 0, "L", false, 0, "")

	// Candidate table
	headers := []string{"#", "External (in)", "Rank", "Avg Util", "Baseline Ratio", "Interlock", "Coverage"}
	widths := []float64{10, 55, 30, 30, 35, 25, 25}

	y := drawAreaTop + 5
	pdf.SetFont("Helvetica", "B", 9)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
		x += widths[i]
	}

	pdf.SetFont("Helvetica", "", 9)
	for i, cand := range result.TopN {
		y += 6
		ext := cand.Container.External
		interlock := "no"
		if cand.Interlock.Feasible {
			interlock = "yes"
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f x %.1f x %.1f", ext.Length, ext.Width, ext.Height),
			fmt.Sprintf("%.1f", cand.Rank),
			fmt.Sprintf("%.1f%%", cand.AvgUtilization*100),
			fmt.Sprintf("%.2f", cand.AvgBaselineRatio),
			interlock,
			fmt.Sprintf("%.1f%%", cand.Interlock.AvgCoverage*100),
		}
		x = marginLeft
		for j, c := range cells {
			pdf.SetXY(x, y)
			pdf.CellFormat(widths[j], 6, c, "1", 0, "C", false, 0, "")
			x += widths[j]
		}
	}

	// Per-product detail for the best candidate
	y += 12
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 6, "Best candidate by product", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, fit := range best.Fits {
		y += 6
		arr := fit.Arrangement
		line := fmt.Sprintf("%s: %d units (%dx%dx%d, rotation %s, %.1f%% utilization)",
			fit.SKU, arr.TotalCount, arr.CountLength, arr.CountWidth, arr.CountHeight,
			arr.Rotation, arr.Utilization*100)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")
	}
}

// renderLayerPage draws a top-down diagram of one pallet layer.
func renderLayerPage(pdf *fpdf.Fpdf, spec model.ContainerSpec, pallet model.PalletConfig, plan model.LayerPlan, layerNum int, layout model.PalletLayout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Pallet Layer %d - %s pattern (%.0f x %.0f in deck)",
		layerNum, layout.Pattern, pallet.FootprintX, pallet.FootprintY)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Containers: %d per layer | %d layers | %d total | Stack height: %.1f in | Coverage: %.1f%%",
		plan.PerLayer, layout.Layers, layout.TotalContainers, layout.StackHeight, plan.Coverage*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scaleX := drawWidth / pallet.FootprintX
	scaleY := drawHeight / pallet.FootprintY
	scale := math.Min(scaleX, scaleY)

	canvasW := pallet.FootprintX * scale
	canvasH := pallet.FootprintY * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Pallet deck background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Containers
	dx, dy := spec.External.Length, spec.External.Width
	if plan.Rotated {
		dx, dy = dy, dx
	}
	col := layerColors[(layerNum-1)%len(layerColors)]
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	for ix := 0; ix < plan.CountX; ix++ {
		for iy := 0; iy < plan.CountY; iy++ {
			px := offsetX + float64(ix)*dx*scale
			py := offsetY + float64(iy)*dy*scale
			pdf.Rect(px, py, dx*scale, dy*scale, "FD")
		}
	}

	// Overhang note
	if plan.ExceedsOverhang {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(180, 0, 0)
		note := fmt.Sprintf("Unused deck remainder %.1f x %.1f in exceeds the configured limit", plan.OverhangX, plan.OverhangY)
		pdf.SetXY(marginLeft, offsetY+canvasH+3)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, note, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}
