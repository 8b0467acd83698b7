// Package xlsxexport renders stored credit reports as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"creditsea/internal/domain"
)

const sheetName = "Credit Reports"

// columns defines the header row (14 columns).
var columns = []string{
	"Name",
	"PAN",
	"Mobile Phone",
	"Credit Score",
	"Total Accounts",
	"Active Accounts",
	"Closed Accounts",
	"Current Balance",
	"Secured Amount",
	"Unsecured Amount",
	"Enquiries (Last 7 Days)",
	"Report Date",
	"Source File",
	"Processed At",
}

// BuildWorkbook renders one row per report under a header row.
func BuildWorkbook(reports []domain.CreditReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for r := range reports {
		row := reportToRow(&reports[r])
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", r+2, err)
			}
		}
	}

	return f, nil
}

// reportToRow converts a single report to a 14-element row, matching
// the columns slice positionally.
func reportToRow(report *domain.CreditReport) []any {
	return []any{
		report.Name,
		report.MaskedPAN(),
		report.MobilePhone,
		report.CreditScore,
		report.TotalAccounts,
		report.ActiveAccounts,
		report.ClosedAccounts,
		report.CurrentBalanceAmount,
		report.SecuredAccountsAmount,
		report.UnsecuredAccountsAmount,
		report.LastSevenDaysCreditEnquiries,
		report.ReportDate.Format("2006-01-02"),
		report.OriginalFileName,
		report.ProcessedAt.Format(time.RFC3339),
	}
}

// BuildFilename returns the attachment name for Content-Disposition.
// Format: credit_reports_{YYYY-MM-DD}.xlsx
func BuildFilename() string {
	return "credit_reports_" + time.Now().Format("2006-01-02") + ".xlsx"
}
