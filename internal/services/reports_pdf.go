package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"reservoria/internal/domain/models"
	"reservoria/internal/events"
	"reservoria/internal/utils"
)

// ExportPDF renders the reports page as an A4 document.
func (s ReportsService) ExportPDF(ctx context.Context, search string) ([]byte, string, error) {
	reports, err := s.Build(ctx, search)
	if err != nil {
		return nil, "", err
	}
	pdf, err := buildReportsPDF(reports, s.currency(), s.today())
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("REPORTS_%s.pdf", utils.SafeFilenamePart(s.today().String()))

	utils.LogEvent(s.RequestID, "reports", "export_pdf", fmt.Sprintf("file=%s bytes=%d", filename, len(pdf)))
	events.Emit(ctx, s.Events, s.RequestID, events.ReportExportedKey, events.ReportExported{
		UserID:     s.UserID,
		Filename:   filename,
		Search:     search,
		Bytes:      len(pdf),
		OccurredAt: utils.NowUTC(),
	})
	return pdf, filename, nil
}

func (s ReportsService) currency() string {
	if s.Currency == "" {
		return "TRY"
	}
	return s.Currency
}

func buildReportsPDF(r models.Reports, currency string, generated models.Date) ([]byte, error) {
	money := func(v float64) string { return utils.FormatCurrency(v, currency) }

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reservoria Reports", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REPORTS")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+generated.String())
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(s string) {
		pdf.Cell(0, 6, tr(s))
		pdf.Ln(6)
	}

	section("Reservation reports")
	if len(r.ReservationReports) == 0 {
		line("-")
	}
	for _, rep := range r.ReservationReports {
		line(fmt.Sprintf("%s | %d reservations | %s | %s", rep.Title, rep.TotalReservations, money(rep.TotalRevenue), rep.Status))
	}
	pdf.Ln(4)

	section("Financial reports")
	if len(r.FinancialReports) == 0 {
		line("-")
	}
	for _, rep := range r.FinancialReports {
		line(fmt.Sprintf("%s | revenue %s | commission %s | hotels %s | %s",
			rep.Title, money(rep.TotalRevenue), money(rep.Commission), money(rep.HotelPayments), rep.Status))
	}
	pdf.Ln(4)

	section("Facility reports")
	if len(r.FacilityReports) == 0 {
		line("-")
	}
	for _, rep := range r.FacilityReports {
		line(fmt.Sprintf("%s %s | %d reservations | %s | occupancy %.2f%% | avg stay %.2f nights",
			rep.FacilityName, rep.Period, rep.TotalReservations, money(rep.TotalRevenue), rep.OccupancyRate, rep.AverageStay))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
