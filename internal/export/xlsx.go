package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"squote/internal/domain"
)

const (
	xlsxSheetName = "Quotation"
	xlsxLastCol   = "F"
)

// XLSX renders q as a single-sheet workbook: header, client and event
// details, the grouped item table and the pricing summary.
func XLSX(q domain.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, xlsxSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := xlsxSheetName

	columns := []string{"A", "B", "C", "D", "E", "F"}
	widths := []float64{34, 42, 8, 18, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#EEEEEE"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	if err := f.MergeCell(sheet, "A1", xlsxLastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", "EVENT QUOTATION")
	f.SetCellStyle(sheet, "A1", xlsxLastCol+"1", titleStyle)

	event := q.Event
	details := [][2]string{
		{"Quote Number", q.QuoteNumber()},
		{"Date", FormatLongDate(q.CreatedDate)},
		{"Valid Until", FormatLongDate(q.ValidUntil)},
		{"Status", q.Status.String()},
		{"Client", event.ClientName},
		{"Email", event.ClientEmail},
		{"Phone", event.ClientPhone},
		{"Event", event.EventName},
		{"Type", event.EventType.String()},
		{"Event Date", FormatLongDate(event.EventDate)},
		{"Venue", event.Venue},
		{"Guests", fmt.Sprintf("%d", event.GuestCount)},
		{"Duration", FormatHours(event.Duration) + " hours"},
	}
	if event.SpecialRequirements != "" {
		details = append(details, [2]string{"Special Requirements", event.SpecialRequirements})
	}

	row := 3
	for _, d := range details {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, d[0])
		f.SetCellStyle(sheet, cell, cell, sectionStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sanitizeExcelCell(d[1]))
		row++
	}
	row++

	headers := []string{"Item", "Description", "Qty", "Unit", "Unit Price", "Line Total"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", columns[i], row), h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", xlsxLastCol, row), headerStyle)
	row++

	for _, group := range GroupSelected(q) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), group.Category.String())
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", xlsxLastCol, row), categoryStyle)
		row++

		for _, item := range group.Items {
			rowStr := fmt.Sprintf("%d", row)
			f.SetCellValue(sheet, "A"+rowStr, sanitizeExcelCell(item.Name))
			f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(item.Description))
			f.SetCellValue(sheet, "C"+rowStr, item.Quantity)
			f.SetCellValue(sheet, "D"+rowStr, sanitizeExcelCell(item.Unit))
			f.SetCellValue(sheet, "E"+rowStr, FormatCurrency(item.UnitPrice))
			f.SetCellValue(sheet, "F"+rowStr, FormatCurrency(item.LineTotal()))
			f.SetCellStyle(sheet, "A"+rowStr, xlsxLastCol+rowStr, itemStyle)
			row++
		}
	}
	row++

	for _, line := range summaryLines(q) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "E"+rowStr, line.Label)
		f.SetCellStyle(sheet, "E"+rowStr, "E"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheet, "F"+rowStr, line.Value)
		row++
	}

	if q.Notes != "" {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Notes")
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), sectionStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sanitizeExcelCell(q.Notes))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type summaryLine struct {
	Label string
	Value string
}

// summaryLines follows the same inclusion rules as the text export.
func summaryLines(q domain.Quote) []summaryLine {
	pricing := q.Pricing()
	lines := []summaryLine{{"Subtotal", FormatCurrency(pricing.Subtotal)}}
	if q.DiscountPercentage.IsPositive() {
		lines = append(lines, summaryLine{
			fmt.Sprintf("Discount (%s%%)", FormatPercent(q.DiscountPercentage)),
			"-" + FormatCurrency(pricing.DiscountAmount),
		})
	}
	if q.AdditionalFees.IsPositive() {
		lines = append(lines, summaryLine{"Additional Fees", FormatCurrency(q.AdditionalFees)})
	}
	lines = append(lines,
		summaryLine{fmt.Sprintf("Tax (%s%%)", FormatPercent(q.TaxPercentage)), FormatCurrency(pricing.TaxAmount)},
		summaryLine{"TOTAL", FormatCurrency(pricing.TotalAmount)},
	)
	return lines
}

// sanitizeExcelCell prefixes values that Excel would otherwise evaluate as
// formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
