// Package report assembles the two-page blast-plan PDF from charts already
// rendered by the front-end.
package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"
)

const DefaultTitle = "Relatório Técnico - Plano de Fogo"

type Input struct {
	Title   string   `json:"title"`
	Project string   `json:"project"`
	Author  string   `json:"author"`
	Summary []string `json:"summary"`
	// Chart images as base64-encoded PNG, rendered by the caller.
	GridChartPNG  string `json:"grid_chart_png"`
	CurveChartPNG string `json:"curve_chart_png"`
}

// ExportError reports a failure while assembling or encoding the PDF.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return "report export failed: " + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

// Generate builds the document: page 1 carries the title, the plan metadata
// and the hole-grid chart; page 2 the fragmentation curves. Chart bytes pass
// through temp files for embedding; the files are removed before returning,
// on success and on failure alike.
func Generate(in Input, buildDate time.Time) ([]byte, error) {
	if in.Title == "" {
		in.Title = DefaultTitle
	}
	if in.GridChartPNG == "" || in.CurveChartPNG == "" {
		return nil, fmt.Errorf("both chart images are required")
	}

	gridPath, err := chartTempFile(in.GridChartPNG)
	if err != nil {
		return nil, fmt.Errorf("invalid grid chart: %w", err)
	}
	defer os.Remove(gridPath)

	curvePath, err := chartTempFile(in.CurveChartPNG)
	if err != nil {
		return nil, fmt.Errorf("invalid curve chart: %w", err)
	}
	defer os.Remove(curvePath)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(in.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Projeto: %s", in.Project)), "", 1, "L", false, 0, "")
	}
	if in.Author != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Responsável: %s", in.Author)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Data: %s", buildDate.Format("2006-01-02"))), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	for _, line := range in.Summary {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.Image(gridPath, 10, pdf.GetY(), 180, 0, false, "", 0, "")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, tr("Distribuição Granulométrica (Rosin-Rammler):"), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.Image(curvePath, 10, pdf.GetY(), 180, 0, false, "", 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ExportError{Err: err}
	}
	return buf.Bytes(), nil
}

func chartTempFile(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "fogo-chart-*.png")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
