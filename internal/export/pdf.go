package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"squote/internal/domain"
)

var (
	pdfMuted     = &props.Color{Red: 80, Green: 80, Blue: 80}
	pdfHeaderBg  = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfGroupBg   = &props.Color{Red: 240, Green: 240, Blue: 240}
	pdfWhiteText = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// PDF renders q as an A4 portrait document with the same sections as the
// text export.
func PDF(q domain.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, q)
	addDetails(m, "CLIENT INFORMATION", [][2]string{
		{"Name", q.Event.ClientName},
		{"Email", q.Event.ClientEmail},
		{"Phone", q.Event.ClientPhone},
	})
	addDetails(m, "EVENT DETAILS", eventDetails(q.Event))
	addItemTable(m, q)
	addPricingSummary(m, q)
	if q.Notes != "" {
		addDetails(m, "NOTES", [][2]string{{"", q.Notes}})
	}
	m.AddRows(row.New(6))
	m.AddRows(text.NewRow(8, closingLine, props.Text{Size: 9, Style: fontstyle.Italic, Align: align.Center}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, q domain.Quote) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("EVENT QUOTATION", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{Size: 9, Color: pdfMuted}
	metaRight := meta
	metaRight.Align = align.Right
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Quote Number: "+q.QuoteNumber(), meta)),
			col.New(6).Add(text.New("Date: "+FormatLongDate(q.CreatedDate), metaRight)),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Status: "+q.Status.String(), meta)),
			col.New(6).Add(text.New("Valid Until: "+FormatLongDate(q.ValidUntil), metaRight)),
		),
	)
	m.AddRows(row.New(4))
}

func eventDetails(event domain.Event) [][2]string {
	details := [][2]string{
		{"Event", event.EventName},
		{"Type", event.EventType.String()},
		{"Date", FormatLongDate(event.EventDate)},
		{"Venue", event.Venue},
		{"Guests", fmt.Sprintf("%d", event.GuestCount)},
		{"Duration", FormatHours(event.Duration) + " hours"},
	}
	if event.SpecialRequirements != "" {
		details = append(details, [2]string{"Special Requirements", event.SpecialRequirements})
	}
	return details
}

func addDetails(m core.Maroto, title string, details [][2]string) {
	m.AddRows(text.NewRow(7, title, props.Text{Size: 10, Style: fontstyle.Bold}))
	for _, d := range details {
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(d[0], props.Text{Size: 8, Style: fontstyle.Bold})),
				col.New(9).Add(text.New(d[1], props.Text{Size: 8})),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addItemTable(m core.Maroto, q domain.Quote) {
	m.AddRows(text.NewRow(7, "QUOTATION BREAKDOWN", props.Text{Size: 10, Style: fontstyle.Bold}))

	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: pdfWhiteText,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: pdfHeaderBg}

	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New("Item", headerTextLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(headerCell),
		),
	)

	groupCell := &props.Cell{BackgroundColor: pdfGroupBg}
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	for _, group := range GroupSelected(q) {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(group.Category.String(), props.Text{Size: 8, Style: fontstyle.Bold})).WithStyle(groupCell),
			),
		)
		for _, item := range group.Items {
			m.AddRows(
				row.New(6).Add(
					col.New(5).Add(text.New(item.Name, left)),
					col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), base)),
					col.New(2).Add(text.New(item.Unit, base)),
					col.New(2).Add(text.New(FormatCurrency(item.UnitPrice), right)),
					col.New(2).Add(text.New(FormatCurrency(item.LineTotal()), right)),
				),
			)
			if item.Description != "" {
				m.AddRows(text.NewRow(5, "  "+item.Description, props.Text{Size: 7, Color: pdfMuted}))
			}
		}
	}
	m.AddRows(row.New(4))
}

func addPricingSummary(m core.Maroto, q domain.Quote) {
	summaryCell := &props.Cell{BackgroundColor: pdfGroupBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	lines := summaryLines(q)
	for i, line := range lines {
		value := valueStyle
		if i == len(lines)-1 {
			value.Style = fontstyle.Bold
		}
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(line.Label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(line.Value, value)).WithStyle(summaryCell),
			),
		)
	}
	m.AddRows(row.New(4))
}
