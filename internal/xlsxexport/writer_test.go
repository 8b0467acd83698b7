package xlsxexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditsea/internal/domain"
)

func TestBuildWorkbook(t *testing.T) {
	reports := []domain.CreditReport{
		{
			Name:        "Jane Doe",
			PAN:         "FGHIJ5678K",
			MobilePhone: "9876543210",
			CreditScore: 810,
			ReportSummary: domain.ReportSummary{
				TotalAccounts:        3,
				CurrentBalanceAmount: 45000,
			},
			ReportDate:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			OriginalFileName: "jane.xml",
			ProcessedAt:      time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
		},
		{
			Name: "Rahul Sharma",
			PAN:  "ABCDE1234F",
		},
	}

	f, err := BuildWorkbook(reports)
	require.NoError(t, err)

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", header)

	name, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	pan, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "FGHIJ****K", pan)

	reportDate, err := f.GetCellValue(sheetName, "L2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", reportDate)

	secondName, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", secondName)
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook(nil)
	require.NoError(t, err)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(columns))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename()
	assert.Regexp(t, `^credit_reports_\d{4}-\d{2}-\d{2}\.xlsx$`, name)
}
