package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetSummary  = "Summary"
	sheetDebts    = "Debts"
	sheetPayments = "Payments"
)

var (
	debtHeader    = []any{"Debt ID", "Debt #", "Order ID", "Status", "Initial", "Remaining", "Due date", "Due status", "Days until due"}
	paymentHeader = []any{"Payment ID", "Debt ID", "Date", "Method", "Amount", "Bs. amount", "Exchange rate", "Reference", "Sender", "Verified", "Shared", "Deleted", "Delete reason"}
)

// ProviderReportXLSX renders provider reports as three-sheet workbooks.
type ProviderReportXLSX struct {
	Now func() time.Time
}

func NewProviderReportXLSX(loc *time.Location) *ProviderReportXLSX {
	if loc == nil {
		loc = time.Local
	}
	return &ProviderReportXLSX{Now: func() time.Time { return time.Now().In(loc) }}
}

func (x *ProviderReportXLSX) Render(report entities.ProviderReport, payments []entities.Payment) (entities.ExportFile, error) {
	now := time.Now()
	if x.Now != nil {
		now = x.Now()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return entities.ExportFile{}, err
	}
	for _, name := range []string{sheetDebts, sheetPayments} {
		if _, err := f.NewSheet(name); err != nil {
			return entities.ExportFile{}, err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return entities.ExportFile{}, err
	}

	if err := writeSummary(f, report, now, bold); err != nil {
		return entities.ExportFile{}, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeDebts(f, report.Debts, now, bold); err != nil {
		return entities.ExportFile{}, fmt.Errorf("debts sheet: %w", err)
	}
	if err := writePayments(f, payments, bold); err != nil {
		return entities.ExportFile{}, fmt.Errorf("payments sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return entities.ExportFile{}, err
	}
	return entities.ExportFile{
		FileName:    FileName(report.Provider, now),
		ContentType: ContentTypeXLSX,
		Content:     buf.Bytes(),
	}, nil
}

// FileName is "<company-slug>-report-<YYYY-MM-DD>.xlsx".
func FileName(p entities.Provider, now time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, strings.TrimSpace(p.CompanyName))
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = fmt.Sprintf("provider-%d", p.ID)
	}
	return fmt.Sprintf("%s-report-%s.xlsx", slug, reporting.FormatDay(now))
}

func writeSummary(f *excelize.File, r entities.ProviderReport, now time.Time, bold int) error {
	rows := [][]any{
		{"Provider", r.Provider.CompanyName},
		{"Tax ID", r.Provider.TaxID},
		{"Phone", r.Provider.Phone},
		{"Email", r.Provider.Email},
		{"Total debt", reporting.TotalRemaining(r.Debts, &r.Provider).InexactFloat64()},
		{"Total paid", r.TotalPaid.InexactFloat64()},
		{"Payments", r.PaymentCount},
		{"Average payment", r.AveragePayment.InexactFloat64()},
		{"Generated", reporting.FormatDay(now)},
	}
	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "B", 22)
}

func writeDebts(f *excelize.File, debts []entities.Debt, now time.Time, bold int) error {
	if err := writeHeader(f, sheetDebts, debtHeader, bold); err != nil {
		return err
	}
	for i, d := range debts {
		row := []any{
			d.ID,
			d.DebtNumber,
			d.OrderID,
			string(d.Status),
			d.InitialAmount.InexactFloat64(),
			d.RemainingAmount.InexactFloat64(),
			optionalDay(d.DueDate),
			string(reporting.DebtDueStatus(d, now)),
			reporting.DaysUntilDue(d, now),
		}
		if err := setRow(f, sheetDebts, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePayments(f *excelize.File, payments []entities.Payment, bold int) error {
	if err := writeHeader(f, sheetPayments, paymentHeader, bold); err != nil {
		return err
	}
	for i, p := range payments {
		row := []any{
			p.ID,
			p.DebtID,
			optionalDay(p.PaymentDate),
			string(p.PaymentMethod),
			p.Amount.InexactFloat64(),
			optionalDecimal(p.AmountInBolivares),
			optionalDecimal(p.ExchangeRate),
			p.ConfirmationNumber,
			p.SenderName,
			yesNo(p.Verified),
			yesNo(p.Shared),
			yesNo(p.Deleted),
			p.DeleteReason,
		}
		if err := setRow(f, sheetPayments, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []any, bold int) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func optionalDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return reporting.FormatDay(*t)
}

func optionalDecimal(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
