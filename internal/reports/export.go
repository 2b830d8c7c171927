package reports

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
	FormatPDF   Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Table is a rendered-agnostic report: a title, a header row and string cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatExcel, "excel":
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FileName builds "<name>_<yyyy-mm-dd>.<ext>".
func (f Format) FileName(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, now.Format(time.DateOnly), f)
}

// Write renders t in format f.
func Write(w io.Writer, f Format, t *Table, now time.Time) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatExcel:
		return WriteExcel(w, t)
	case FormatPDF:
		return WritePDF(w, t, now)
	}
	return ErrUnknownFormat
}

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func WriteExcel(w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(t.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	for r, row := range t.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// sheetName trims the title to Excel's 31 character limit and drops the
// characters Excel rejects.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return -1
		}
		return r
	}, title)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if name == "" {
		name = "Relatorio"
	}
	return name
}

func WritePDF(w io.Writer, t *Table, now time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	marginX := 10.0
	pdf.SetMargins(marginX, 12, marginX)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, tr(t.Title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, tr("Gerado em: "+FormatDate(now)))
	pdf.Ln(10)

	if len(t.Headers) == 0 {
		return pdf.Output(w)
	}
	pageWidth, _ := pdf.GetPageSize()
	colWidth := (pageWidth - 2*marginX) / float64(len(t.Headers))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for _, h := range t.Headers {
		pdf.CellFormat(colWidth, 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range t.Rows {
		for i := range t.Headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			pdf.CellFormat(colWidth, 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// Render is Write into a buffer.
func Render(f Format, t *Table, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
