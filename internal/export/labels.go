// Package export provides functionality for exporting packing results
// to various file formats including QR-coded carton labels.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/MasterPack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each carton label's QR code.
type LabelInfo struct {
	SKU         string  `json:"sku"`
	Units       int     `json:"units"`
	Length      float64 `json:"length_in"`
	Width       float64 `json:"width_in"`
	Height      float64 `json:"height_in"`
	GrossWeight float64 `json:"gross_lb"`
	Rotation    string  `json:"rotation"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page). Each label cell is approximately 66.7mm x 25.4mm
// on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded carton labels, one per packed
// container of each product in the candidate. Each label carries the SKU,
// per-container unit count and container dimensions, with the same data
// encoded as JSON in the QR code. count caps how many labels print per
// product (0 = one each).
func ExportLabels(path string, cand model.CandidateScore, count int) error {
	if len(cand.Fits) == 0 {
		return fmt.Errorf("no packed products to generate labels for")
	}
	if count <= 0 {
		count = 1
	}

	var labels []LabelInfo
	for _, fit := range cand.Fits {
		if !fit.Arrangement.Fits {
			continue
		}
		info := LabelInfo{
			SKU:         fit.SKU,
			Units:       fit.Arrangement.TotalCount,
			Length:      cand.Container.External.Length,
			Width:       cand.Container.External.Width,
			Height:      cand.Container.External.Height,
			GrossWeight: fit.Arrangement.GrossWeight,
			Rotation:    fit.Arrangement.Rotation.String(),
		}
		for i := 0; i < count; i++ {
			labels = append(labels, info)
		}
	}

	if len(labels) == 0 {
		return fmt.Errorf("no fitting products to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.SKU, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode label payload: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr-%s-%d-%d", info.SKU, int(x), int(y))
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding + qrSize + labelPadding
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(textX, y+labelPadding+2)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4, info.SKU, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(textX, y+labelPadding+7)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4,
		fmt.Sprintf("%d units", info.Units), "", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4,
		fmt.Sprintf("%.1f x %.1f x %.1f in", info.Length, info.Width, info.Height), "", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+15)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4,
		fmt.Sprintf("%.1f lb gross", info.GrossWeight), "", 0, "L", false, 0, "")

	return nil
}
