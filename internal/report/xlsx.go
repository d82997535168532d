package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Table is a report laid out as a header row followed by value rows
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

var letterHeaders = []string{
	"Historial",
	"Garantía",
	"Objeto",
	"CUI",
	"Tipo de carta",
	"Contratista",
	"RUC",
	"Estado",
	"Número de carta",
	"Entidad financiera",
	"Fecha de emisión",
	"Inicio de vigencia",
	"Fin de vigencia",
	"Moneda",
	"Monto",
}

func letterCells(l Letter) []any {
	return []any{
		l.MaxWarrantyHistory,
		l.WarrantyID,
		l.WarrantyObjectDescription,
		text(l.CUI),
		l.LetterTypeDescription,
		l.ContractorBusinessName,
		l.ContractorRUC,
		l.WarrantyStatusDescription,
		text(l.LetterNumber),
		text(l.FinancialEntityDescription),
		text(l.IssueDate),
		text(l.ValidityStart),
		text(l.ValidityEnd),
		text(l.CurrencyCode),
		amount(l.Amount),
	}
}

// ExpiredTable lays out the expired report
func ExpiredTable(rows []ExpiredLetter) Table {
	t := Table{Sheet: "Vencidas", Headers: append(append([]string{}, letterHeaders...), "Días vencida", "Tiempo vencida")}
	for _, r := range rows {
		t.Rows = append(t.Rows, append(letterCells(r.Letter), r.Expired.TotalDays, r.Expired.Phrase))
	}
	return t
}

// ExpiringTable lays out the expiring report
func ExpiringTable(rows []ExpiringLetter) Table {
	t := Table{Sheet: "Por vencer", Headers: append(append([]string{}, letterHeaders...), "Días restantes", "Tiempo restante")}
	for _, r := range rows {
		t.Rows = append(t.Rows, append(letterCells(r.Letter), r.Remaining.TotalDays, r.Remaining.Phrase))
	}
	return t
}

// ValidTable lays out the valid-at report
func ValidTable(rows []ValidLetter) Table {
	t := Table{Sheet: "Vigentes", Headers: append(append([]string{}, letterHeaders...), "Días restantes", "Tiempo restante")}
	for _, r := range rows {
		t.Rows = append(t.Rows, append(letterCells(r.Letter), r.Remaining.TotalDays, r.Remaining.Phrase))
	}
	return t
}

// ClosedTable lays out the returned or executed in period report
func ClosedTable(sheet string, rows []ClosedLetter) Table {
	headers := append(append([]string{}, letterHeaders...),
		"Documento de referencia",
		"Número de carta original",
		"Inicio de vigencia original",
		"Fin de vigencia original",
		"Moneda original",
		"Monto original",
		"Entidad financiera original",
	)
	t := Table{Sheet: sheet, Headers: headers}
	for _, r := range rows {
		t.Rows = append(t.Rows, append(letterCells(r.Letter),
			text(r.ReferenceDocument),
			text(r.OriginalLetterNumber),
			text(r.OriginalValidityStart),
			text(r.OriginalValidityEnd),
			text(r.OriginalCurrencyCode),
			amount(r.OriginalAmount),
			text(r.OriginalFinancialEntityDescription),
		))
	}
	return t
}

// LettersTable lays out a classified letter report
func LettersTable(rows []ClassifiedLetter) Table {
	t := Table{Sheet: "Cartas", Headers: append(append([]string{}, letterHeaders...), "Situación", "Días", "Tiempo")}
	for _, r := range rows {
		days, phrase := any(""), ""
		if r.Span != nil {
			days, phrase = r.Span.TotalDays, r.Span.Phrase
		}
		t.Rows = append(t.Rows, append(letterCells(r.Letter), string(r.Classification), days, phrase))
	}
	return t
}

// WriteXLSX renders the table as a single sheet workbook
func (t Table) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", t.Sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if len(t.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(t.Sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(t.Sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(t.Sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	return f.Write(w)
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func amount(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	v, _ := d.Decimal.Float64()
	return v
}
